package service

import (
	"context"
	"fmt"

	"gearshare-backend/internal/metrics"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingRequested(ctx context.Context, ownerEmail, bookerName, itemName string) error {
	subject := fmt.Sprintf("New booking request: %s", itemName)
	body := fmt.Sprintf("%s wants to book your %s.\n\nApprove or reject the request in the app.", bookerName, itemName)
	return s.send(ownerEmail, subject, body, "booking_requested")
}

func (s *emailService) SendBookingDecided(ctx context.Context, bookerEmail, itemName string, approved bool) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	subject := fmt.Sprintf("Your booking for %s was %s", itemName, decision)
	body := fmt.Sprintf("The owner has %s your booking request for %s.", decision, itemName)
	return s.send(bookerEmail, subject, body, "booking_decided")
}

func (s *emailService) SendPendingDecisionReminder(ctx context.Context, ownerEmail string, pending int) error {
	subject := "Booking requests awaiting your decision"
	body := fmt.Sprintf("You have %d booking request(s) waiting for approval or rejection.", pending)
	return s.send(ownerEmail, subject, body, "pending_reminder")
}

func (s *emailService) send(to, subject, body, kind string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		metrics.EmailsSentTotal.WithLabelValues(kind, "error").Inc()
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		metrics.EmailsSentTotal.WithLabelValues(kind, "error").Inc()
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	metrics.EmailsSentTotal.WithLabelValues(kind, "ok").Inc()
	return nil
}
