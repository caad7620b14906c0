package service

import (
	"context"
	"strings"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	requestRepo repository.ItemRequestRepository
	now         func() time.Time
}

func NewItemService(
	itemRepo repository.ItemRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	requestRepo repository.ItemRequestRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		now:         time.Now,
	}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*domain.Item, error) {
	logger.Debug("+ CreateItem", "owner_id", ownerID, "name", name)

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if requestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *requestID); err != nil {
			return nil, err
		}
	}

	item := &domain.Item{
		OwnerID:     ownerID,
		Owner:       owner,
		Name:        name,
		Description: description,
		Available:   available,
		RequestID:   requestID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	metrics.ItemsCreatedTotal.Inc()
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, userID, itemID int64, patch ItemPatch) (*domain.Item, error) {
	logger.Debug("+ UpdateItem", "user_id", userID, "item_id", itemID)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.CanBeModifiedBy(userID) {
		return nil, domain.NewAccessDenied(userID, "User %d does not have access to target item", userID)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *patch.RequestID); err != nil {
			return nil, err
		}
		item.RequestID = patch.RequestID
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &domain.ItemDetails{Item: *item}
	if item.OwnerID == userID {
		if err := s.attachBookings(ctx, details); err != nil {
			return nil, err
		}
	}
	if err := s.attachComments(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *itemService) ListOwnItems(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByOwner(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ItemDetails, 0, len(items))
	for i := range items {
		d := domain.ItemDetails{Item: items[i]}
		if err := s.attachBookings(ctx, &d); err != nil {
			return nil, err
		}
		if err := s.attachComments(ctx, &d); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *itemService) SearchItems(ctx context.Context, userID int64, text string, offset, limit int) ([]domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text, offset, limit)
}

func (s *itemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	logger.Debug("+ AddComment", "user_id", userID, "item_id", itemID)

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	completed, err := s.bookingRepo.CountCompleted(ctx, userID, itemID, s.now())
	if err != nil {
		return nil, err
	}
	if completed == 0 {
		return nil, domain.NewValidation("User %d does not have completed bookings of item %d", userID, item.ID)
	}

	comment := &domain.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: author.Name,
		Created:    s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *itemService) attachBookings(ctx context.Context, d *domain.ItemDetails) error {
	now := s.now()
	last, err := s.bookingRepo.FindLastForItem(ctx, d.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookingRepo.FindNextForItem(ctx, d.ID, now)
	if err != nil {
		return err
	}
	d.LastBooking = last
	d.NextBooking = next
	return nil
}

func (s *itemService) attachComments(ctx context.Context, d *domain.ItemDetails) error {
	comments, err := s.commentRepo.ListByItem(ctx, d.ID)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	d.Comments = comments
	return nil
}
