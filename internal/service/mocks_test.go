package service

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) Search(ctx context.Context, text string, offset, limit int) ([]domain.Item, error) {
	args := m.Called(ctx, text, offset, limit)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) CountCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (int, error) {
	args := m.Called(ctx, bookerID, itemID, now)
	return args.Int(0), args.Error(1)
}

// MockCommentRepo
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *MockCommentRepo) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// MockItemRequestRepo
type MockItemRequestRepo struct {
	mock.Mock
}

func (m *MockItemRequestRepo) Create(ctx context.Context, request *domain.ItemRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}
func (m *MockItemRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) ListFromOtherUsers(ctx context.Context, requesterID int64, offset, limit int) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID, offset, limit)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequested(ctx context.Context, ownerEmail, bookerName, itemName string) error {
	args := m.Called(ctx, ownerEmail, bookerName, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingDecided(ctx context.Context, bookerEmail, itemName string, approved bool) error {
	args := m.Called(ctx, bookerEmail, itemName, approved)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingDecisionReminder(ctx context.Context, ownerEmail string, pending int) error {
	args := m.Called(ctx, ownerEmail, pending)
	return args.Error(0)
}
