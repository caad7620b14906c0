package repository

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Item, error)
	Search(ctx context.Context, text string, offset, limit int) ([]domain.Item, error)
	ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateStatus transitions the booking out of WAITING. The update is
	// conditional on the current status still being WAITING so that
	// concurrent decisions cannot overwrite a terminal status; it reports
	// whether a row was changed.
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error)
	ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	// FindLastForItem returns the approved booking of the item with the
	// latest end among those started before now, or nil if none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	// FindNextForItem returns the approved booking of the item with the
	// earliest end among those starting after now, or nil if none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	// CountCompleted counts approved bookings of the item by the user that
	// ended before now.
	CountCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	ListFromOtherUsers(ctx context.Context, requesterID int64, offset, limit int) ([]domain.ItemRequest, error)
}
