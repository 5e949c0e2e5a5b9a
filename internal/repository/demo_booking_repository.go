package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoBookingRepository handles demo booking persistence.
type DemoBookingRepository struct {
	pool *pgxpool.Pool
}

// NewDemoBookingRepository creates a new DemoBookingRepository.
func NewDemoBookingRepository(pool *pgxpool.Pool) *DemoBookingRepository {
	return &DemoBookingRepository{pool: pool}
}

// Create inserts a booking. Re-delivering the same booking id is a no-op.
func (r *DemoBookingRepository) Create(ctx context.Context, b *model.DemoBooking) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO demo_bookings (id, student_name, parent_email, student_grade, preferred_subject,
			preferred_date, preferred_time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		b.ID, b.StudentName, b.ParentEmail, b.StudentGrade, b.PreferredSubject,
		b.PreferredDate, b.PreferredTime, b.CreatedAt,
	)
	return err
}

// ListPaginated returns bookings newest first, optionally only those on date.
func (r *DemoBookingRepository) ListPaginated(ctx context.Context, date *time.Time, limit, offset int) ([]model.DemoBooking, int, error) {
	countQuery := `SELECT COUNT(*) FROM demo_bookings`
	var countArgs []any
	if date != nil {
		countQuery += ` WHERE preferred_date = $1`
		countArgs = append(countArgs, *date)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, student_name, parent_email, student_grade, preferred_subject,
		preferred_date, preferred_time, created_at FROM demo_bookings`
	var args []any
	argIdx := 1

	if date != nil {
		query += ` WHERE preferred_date = $1`
		args = append(args, *date)
		argIdx++
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := []model.DemoBooking{}
	for rows.Next() {
		var b model.DemoBooking
		if err := rows.Scan(&b.ID, &b.StudentName, &b.ParentEmail, &b.StudentGrade, &b.PreferredSubject,
			&b.PreferredDate, &b.PreferredTime, &b.CreatedAt); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}
