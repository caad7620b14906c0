package service

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*domain.Item, error)
	UpdateItem(ctx context.Context, userID, itemID int64, patch ItemPatch) (*domain.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error)
	ListOwnItems(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemDetails, error)
	SearchItems(ctx context.Context, userID int64, text string, offset, limit int) ([]domain.Item, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error)
	DecideBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	ListForBooker(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error)
	ListForOwner(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error)
}

type ItemRequestService interface {
	CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error)
}

type EmailService interface {
	SendBookingRequested(ctx context.Context, ownerEmail, bookerName, itemName string) error
	SendBookingDecided(ctx context.Context, bookerEmail, itemName string, approved bool) error
	SendPendingDecisionReminder(ctx context.Context, ownerEmail string, pending int) error
}

// UserPatch carries the fields of a partial user update; nil means keep.
type UserPatch struct {
	Name  *string
	Email *string
}

// ItemPatch carries the fields of a partial item update; nil means keep.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
	RequestID   *int64
}

func paginate[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
