package postgres

import (
	"database/sql"

	"gearshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ItemRepository
	repository.BookingRepository
	repository.CommentRepository
	repository.ItemRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		ItemRepository:        NewItemRepository(db),
		BookingRepository:     NewBookingRepository(db),
		CommentRepository:     NewCommentRepository(db),
		ItemRequestRepository: NewItemRequestRepository(db),
	}
}
