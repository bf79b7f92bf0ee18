package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medguardian/internal/domain/medications"
	"medguardian/internal/platform/apperr"
)

type MedicationRepo struct {
	db *DB
}

func NewMedicationRepo(db *DB) *MedicationRepo {
	return &MedicationRepo{db: db}
}

const medicationColumns = `
	id, owner_user_id,
	name, frequency, dosage, reminder_time,
	created_at, updated_at
`

func (r *MedicationRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO medications (`+medicationColumns+`)
		VALUES (?,?,?,?,?,?,?,?)
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		m.Frequency,
		m.Dosage,
		m.ReminderTime,
		m.CreatedAt.UTC(),
		m.UpdatedAt.UTC(),
	)
	return err
}

func (r *MedicationRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.exec(ctx, `
		UPDATE medications
		SET
			name = ?,
			frequency = ?,
			dosage = ?,
			reminder_time = ?,
			updated_at = ?
		WHERE id = ?
	`,
		m.Name,
		m.Frequency,
		m.Dosage,
		m.ReminderTime,
		m.UpdatedAt.UTC(),
		m.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *MedicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.exec(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *MedicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, apperr.ErrNotFound
	}

	row := r.db.queryRow(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE id = ?
	`, id)

	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, apperr.ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	rows, err := r.db.query(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE owner_user_id = ?
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (medications.Medication, error) {
	var m medications.Medication
	if err := s.Scan(
		&m.ID,
		&m.OwnerUserID,
		&m.Name,
		&m.Frequency,
		&m.Dosage,
		&m.ReminderTime,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}
