package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medguardian/internal/domain/family"
	"medguardian/internal/platform/apperr"
)

type FamilyRepo struct {
	db *DB
}

func NewFamilyRepo(db *DB) *FamilyRepo {
	return &FamilyRepo{db: db}
}

const contactColumns = `
	id, owner_user_id,
	name, relationship, phone, email,
	created_at, updated_at
`

func (r *FamilyRepo) Create(ctx context.Context, c family.Contact) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO family_contacts (`+contactColumns+`)
		VALUES (?,?,?,?,?,?,?,?)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Relationship,
		c.Phone,
		c.Email,
		c.CreatedAt.UTC(),
		c.UpdatedAt.UTC(),
	)
	return err
}

func (r *FamilyRepo) Update(ctx context.Context, c family.Contact) error {
	res, err := r.db.exec(ctx, `
		UPDATE family_contacts
		SET
			name = ?,
			relationship = ?,
			phone = ?,
			email = ?,
			updated_at = ?
		WHERE id = ?
	`,
		c.Name,
		c.Relationship,
		c.Phone,
		c.Email,
		c.UpdatedAt.UTC(),
		c.ID,
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

func (r *FamilyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.exec(ctx, `DELETE FROM family_contacts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *FamilyRepo) GetByID(ctx context.Context, id string) (family.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return family.Contact{}, apperr.ErrNotFound
	}

	row := r.db.queryRow(ctx, `
		SELECT `+contactColumns+`
		FROM family_contacts
		WHERE id = ?
	`, id)

	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return family.Contact{}, apperr.ErrNotFound
		}
		return family.Contact{}, err
	}
	return c, nil
}

func (r *FamilyRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]family.Contact, error) {
	rows, err := r.db.query(ctx, `
		SELECT `+contactColumns+`
		FROM family_contacts
		WHERE owner_user_id = ?
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]family.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanContact(s scanner) (family.Contact, error) {
	var c family.Contact
	if err := s.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Relationship,
		&c.Phone,
		&c.Email,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return family.Contact{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
