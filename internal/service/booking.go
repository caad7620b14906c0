package service

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	logger.Debug("+ CreateBooking", "booker_id", bookerID, "item_id", itemID)

	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !end.After(start) {
		return nil, domain.NewValidation("End booking date %s can`t be earlier than start date %s", end, start)
	}
	if !item.Available {
		return nil, domain.NewValidation("Item %d not available", item.ID)
	}
	if item.OwnerID == bookerID {
		return nil, domain.NewAccessDenied(bookerID, "User %d is owner of item %d", bookerID, item.ID)
	}

	// TODO: reject ranges overlapping an existing approved booking of the
	// same item; currently two renters can hold the same dates.
	booking := &domain.Booking{
		ItemID:   itemID,
		Item:     item,
		BookerID: bookerID,
		Booker:   booker,
		OwnerID:  item.OwnerID,
		Start:    start,
		End:      end,
		Status:   domain.BookingStatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	if item.Owner != nil {
		if err := s.emailSvc.SendBookingRequested(ctx, item.Owner.Email, booker.Name, item.Name); err != nil {
			logger.Warn("Failed to send booking request notification", "booking_id", booking.ID, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error) {
	logger.Debug("+ DecideBooking", "user_id", userID, "booking_id", bookingID, "approved", approved)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanBeDecidedBy(userID) {
		return nil, domain.NewAccessDenied(userID, "User %d does not have access to target booking", userID)
	}
	if booking.IsDecided() {
		return nil, domain.NewValidation("Booking %d is already decided", booking.ID)
	}

	status := domain.BookingStatusRejected
	if approved {
		status = domain.BookingStatusApproved
	}
	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost the race against a concurrent decision.
		return nil, domain.NewValidation("Booking %d is already decided", booking.ID)
	}
	booking.Status = status

	metrics.BookingDecisionsTotal.WithLabelValues(string(status)).Inc()
	if booking.Booker != nil && booking.Item != nil {
		if err := s.emailSvc.SendBookingDecided(ctx, booking.Booker.Email, booking.Item.Name, approved); err != nil {
			logger.Warn("Failed to send booking decision notification", "booking_id", booking.ID, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanBeViewedBy(userID) {
		return nil, domain.NewAccessDenied(userID, "User %d does not have access to target booking", userID)
	}
	return booking, nil
}

func (s *bookingService) ListForBooker(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByBooker(ctx, userID)
	if err != nil {
		return nil, err
	}
	return paginate(domain.FilterBookingsByState(bookings, state, s.now()), offset, limit), nil
}

func (s *bookingService) ListForOwner(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return paginate(domain.FilterBookingsByState(bookings, state, s.now()), offset, limit), nil
}
