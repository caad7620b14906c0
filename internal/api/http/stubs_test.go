package http

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

// Function-field stubs keep each test focused on one route.

type stubUserService struct {
	createFn func(ctx context.Context, name, email string) (*domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
	updateFn func(ctx context.Context, id int64, patch service.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	return s.createFn(ctx, name, email)
}
func (s *stubUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}
func (s *stubUserService) UpdateUser(ctx context.Context, id int64, patch service.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubItemService struct {
	createFn     func(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*domain.Item, error)
	updateFn     func(ctx context.Context, userID, itemID int64, patch service.ItemPatch) (*domain.Item, error)
	getFn        func(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error)
	listOwnFn    func(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemDetails, error)
	searchFn     func(ctx context.Context, userID int64, text string, offset, limit int) ([]domain.Item, error)
	addCommentFn func(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error)
}

func (s *stubItemService) CreateItem(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*domain.Item, error) {
	return s.createFn(ctx, ownerID, name, description, available, requestID)
}
func (s *stubItemService) UpdateItem(ctx context.Context, userID, itemID int64, patch service.ItemPatch) (*domain.Item, error) {
	return s.updateFn(ctx, userID, itemID, patch)
}
func (s *stubItemService) GetItem(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error) {
	return s.getFn(ctx, userID, itemID)
}
func (s *stubItemService) ListOwnItems(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemDetails, error) {
	return s.listOwnFn(ctx, userID, offset, limit)
}
func (s *stubItemService) SearchItems(ctx context.Context, userID int64, text string, offset, limit int) ([]domain.Item, error) {
	return s.searchFn(ctx, userID, text, offset, limit)
}
func (s *stubItemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	return s.addCommentFn(ctx, userID, itemID, text)
}

type stubBookingService struct {
	createFn        func(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error)
	decideFn        func(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error)
	getFn           func(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	listForBookerFn func(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error)
	listForOwnerFn  func(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	return s.createFn(ctx, bookerID, itemID, start, end)
}
func (s *stubBookingService) DecideBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error) {
	return s.decideFn(ctx, userID, bookingID, approved)
}
func (s *stubBookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	return s.getFn(ctx, userID, bookingID)
}
func (s *stubBookingService) ListForBooker(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error) {
	return s.listForBookerFn(ctx, userID, state, offset, limit)
}
func (s *stubBookingService) ListForOwner(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error) {
	return s.listForOwnerFn(ctx, userID, state, offset, limit)
}

type stubRequestService struct {
	createFn     func(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error)
	listOwnFn    func(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	listOthersFn func(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemRequest, error)
	getFn        func(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error)
}

func (s *stubRequestService) CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error) {
	return s.createFn(ctx, userID, description)
}
func (s *stubRequestService) ListOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	return s.listOwnFn(ctx, userID)
}
func (s *stubRequestService) ListOtherRequests(ctx context.Context, userID int64, offset, limit int) ([]domain.ItemRequest, error) {
	return s.listOthersFn(ctx, userID, offset, limit)
}
func (s *stubRequestService) GetRequest(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error) {
	return s.getFn(ctx, userID, requestID)
}
