package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `b.id, b.item_id, b.booker_id, i.owner_id, b.start_ts, b.end_ts, b.status,
	       i.id, i.owner_id, i.name, i.description, i.available, i.request_id,
	       u.id, u.name, u.email`

const bookingJoins = ` FROM bookings b
	  JOIN items i ON i.id = b.item_id
	  JOIN users u ON u.id = b.booker_id`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, start_ts, end_ts, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.ItemID, b.BookerID, b.Start, b.End, b.Status).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("Booking", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	// Conditional on WAITING so a concurrent decision cannot overwrite a
	// terminal status.
	query := `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, status, id, domain.BookingStatusWaiting)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.booker_id = $1 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, bookerID)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE i.owner_id = $1 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, ownerID)
}

func (r *bookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
	          WHERE b.item_id = $1 AND b.status = $2 AND b.start_ts < $3
	          ORDER BY b.end_ts DESC LIMIT 1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, itemID, domain.BookingStatusApproved, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
	          WHERE b.item_id = $1 AND b.status = $2 AND b.start_ts > $3
	          ORDER BY b.end_ts LIMIT 1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, itemID, domain.BookingStatusApproved, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) CountCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (int, error) {
	query := `SELECT count(*) FROM bookings
	          WHERE booker_id = $1 AND item_id = $2 AND status = $3 AND end_ts < $4`
	var count int
	err := r.db.QueryRowContext(ctx, query, bookerID, itemID, domain.BookingStatusApproved, now).Scan(&count)
	return count, err
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{Item: &domain.Item{}, Booker: &domain.User{}}
	err := row.Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.OwnerID, &b.Start, &b.End, &b.Status,
		&b.Item.ID, &b.Item.OwnerID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email)
	if err != nil {
		return nil, err
	}
	return b, nil
}
