package service

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository"
)

type itemRequestService struct {
	requestRepo repository.ItemRequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewItemRequestService(
	requestRepo repository.ItemRequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) ItemRequestService {
	return &itemRequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *itemRequestService) CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error) {
	logger.Debug("+ CreateRequest", "user_id", userID)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	request := &domain.ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     s.now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *itemRequestService) ListOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *itemRequestService) ListOtherRequests(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListFromOtherUsers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *itemRequestService) GetRequest(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	request.Items = items
	return request, nil
}

func (s *itemRequestService) attachItems(ctx context.Context, requests []domain.ItemRequest) error {
	for i := range requests {
		items, err := s.itemRepo.ListByRequest(ctx, requests[i].ID)
		if err != nil {
			return err
		}
		requests[i].Items = items
	}
	return nil
}
