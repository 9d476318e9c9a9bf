package referral

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referral id does not resolve.
var ErrNotFound = errors.New("referral not found")

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const referralCols = `id, appointment_id, patient_name, patient_phone, patient_age, gender,
	doctor_name, message, submitted_at, read`

func (r *repoPG) scanReferral(row pgx.Row) (*SurgeryReferral, error) {
	var sr SurgeryReferral
	err := row.Scan(&sr.ID, &sr.AppointmentID, &sr.PatientName, &sr.PatientPhone,
		&sr.PatientAge, &sr.Gender, &sr.DoctorName, &sr.Message, &sr.SubmittedAt, &sr.Read)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &sr, err
}

func (r *repoPG) Create(ctx context.Context, sr *SurgeryReferral) error {
	sr.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO surgery_referrals (id, appointment_id, patient_name, patient_phone,
			patient_age, gender, doctor_name, message, submitted_at, read)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		sr.ID, sr.AppointmentID, sr.PatientName, sr.PatientPhone,
		sr.PatientAge, sr.Gender, sr.DoctorName, sr.Message, sr.SubmittedAt, sr.Read)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*SurgeryReferral, error) {
	return r.scanReferral(r.pool.QueryRow(ctx, `SELECT `+referralCols+` FROM surgery_referrals WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*SurgeryReferral, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM surgery_referrals`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+referralCols+` FROM surgery_referrals
		ORDER BY submitted_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*SurgeryReferral
	for rows.Next() {
		sr, err := r.scanReferral(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, sr)
	}
	return items, total, nil
}

func (r *repoPG) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE surgery_referrals SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM surgery_referrals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM surgery_referrals WHERE read = FALSE`).Scan(&count)
	return count, err
}
