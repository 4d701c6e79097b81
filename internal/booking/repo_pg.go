package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Repository backed by PostgreSQL.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const apptCols = `id, client_name, client_email, client_phone, stylist, service,
	scheduled_at, duration_minutes, notes, status, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.ClientName, &a.ClientEmail, &a.ClientPhone,
		&a.Stylist, &a.Service, &a.ScheduledAt, &a.DurationMinutes,
		&a.Notes, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanAppointments(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	var out []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments
			(client_name, client_email, client_phone, stylist, service,
			 scheduled_at, duration_minutes, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		a.ClientName, a.ClientEmail, a.ClientPhone, a.Stylist, a.Service,
		a.ScheduledAt, a.DurationMinutes, a.Notes, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *repoPG) ListByDate(ctx context.Context, day time.Time, limit, offset int) ([]*Appointment, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE scheduled_at::date = $1::date`,
		day).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+`
		FROM appointments
		WHERE scheduled_at::date = $1::date
		ORDER BY scheduled_at ASC
		LIMIT $2 OFFSET $3`,
		day, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	appts, err := scanAppointments(rows)
	return appts, total, err
}

func (r *repoPG) ListAll(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+`
		FROM appointments
		ORDER BY scheduled_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	appts, err := scanAppointments(rows)
	return appts, total, err
}

func (r *repoPG) UpdateStatus(ctx context.Context, id int64, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListPendingByDate(ctx context.Context, day time.Time) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+`
		FROM appointments
		WHERE scheduled_at::date = $1::date AND status = $2
		ORDER BY scheduled_at ASC`,
		day, StatusPending)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

func (r *repoPG) ListByStylistFrom(ctx context.Context, stylist string, from time.Time) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+`
		FROM appointments
		WHERE stylist = $1
		  AND scheduled_at >= $2
		  AND status IN ('pending', 'confirmed', 'finished')
		ORDER BY scheduled_at DESC`,
		stylist, from)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}
