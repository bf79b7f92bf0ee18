package sqlstore

import (
	"context"
	"strings"

	"medguardian/internal/domain/intake"
)

type IntakeRepo struct {
	db *DB
}

func NewIntakeRepo(db *DB) *IntakeRepo {
	return &IntakeRepo{db: db}
}

func (r *IntakeRepo) Create(ctx context.Context, rec intake.Record) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO intake_records (
			id, owner_user_id, medication_id,
			taken_at, date_key,
			photo_ref, status
		) VALUES (?,?,?,?,?,?,?)
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.MedicationID,
		rec.Timestamp.UTC(),
		rec.DateKey,
		rec.PhotoRef,
		string(rec.Status),
	)
	return err
}

func (r *IntakeRepo) ListByOwner(ctx context.Context, ownerUserID string, filter intake.ListFilter) ([]intake.Record, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, owner_user_id, medication_id,
			taken_at, date_key,
			photo_ref, status
		FROM intake_records
		WHERE owner_user_id = ?
	`)
	args := []any{ownerUserID}

	if filter.From != nil {
		sb.WriteString(" AND taken_at >= ?")
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		sb.WriteString(" AND taken_at <= ?")
		args = append(args, filter.To.UTC())
	}
	if filter.DateFrom != "" {
		sb.WriteString(" AND date_key >= ?")
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		sb.WriteString(" AND date_key <= ?")
		args = append(args, filter.DateTo)
	}

	sb.WriteString(" ORDER BY taken_at DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := r.db.query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]intake.Record, 0)
	for rows.Next() {
		var rec intake.Record
		var status string
		if err := rows.Scan(
			&rec.ID,
			&rec.OwnerUserID,
			&rec.MedicationID,
			&rec.Timestamp,
			&rec.DateKey,
			&rec.PhotoRef,
			&status,
		); err != nil {
			return nil, err
		}
		rec.Timestamp = rec.Timestamp.UTC()
		rec.Status = intake.Status(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}
