package sqlstore

import (
	"context"

	"medguardian/internal/domain/notifications"
)

type NotificationRepo struct {
	db *DB
}

func NewNotificationRepo(db *DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n notifications.Notification) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO notifications (
			id, owner_user_id, family_contact_id,
			medication_name, status, message,
			sent_at
		) VALUES (?,?,?,?,?,?,?)
	`,
		n.ID,
		n.OwnerUserID,
		n.FamilyContactID,
		n.MedicationName,
		string(n.Status),
		n.Message,
		n.Timestamp.UTC(),
	)
	return err
}

func (r *NotificationRepo) ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]notifications.Notification, error) {
	q := `
		SELECT
			id, owner_user_id, family_contact_id,
			medication_name, status, message,
			sent_at
		FROM notifications
		WHERE owner_user_id = ?
		ORDER BY sent_at DESC
	`
	args := []any{ownerUserID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		var n notifications.Notification
		var status string
		if err := rows.Scan(
			&n.ID,
			&n.OwnerUserID,
			&n.FamilyContactID,
			&n.MedicationName,
			&status,
			&n.Message,
			&n.Timestamp,
		); err != nil {
			return nil, err
		}
		n.Status = notifications.Status(status)
		n.Timestamp = n.Timestamp.UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}
