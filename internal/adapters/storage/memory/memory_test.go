package memory

import (
	"context"
	"testing"
	"time"

	"medguardian/internal/domain/intake"
	"medguardian/internal/domain/medications"
	"medguardian/internal/domain/notifications"
	"medguardian/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestMedicationRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicationRepo()

	m := medications.Medication{ID: "m1", OwnerUserID: "u1", Name: "Aspirin", Frequency: "daily", CreatedAt: base}
	require.NoError(t, repo.Create(ctx, m))
	assert.Error(t, repo.Create(ctx, m))
	assert.Error(t, repo.Create(ctx, medications.Medication{OwnerUserID: "u1"}))

	require.NoError(t, repo.Create(ctx, medications.Medication{ID: "m0", OwnerUserID: "u1", CreatedAt: base.Add(-time.Hour)}))

	list, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m0", list[0].ID)

	assert.ErrorIs(t, repo.Update(ctx, medications.Medication{ID: "nope"}), apperr.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "m1"))

	_, err = repo.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "m1"), apperr.ErrNotFound)
}

func TestIntakeRepo_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewIntakeRepo()

	for i, day := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		require.NoError(t, repo.Create(ctx, intake.Record{
			ID:          day,
			OwnerUserID: "u1",
			Timestamp:   base.AddDate(0, 0, i),
			DateKey:     day,
		}))
	}
	require.NoError(t, repo.Create(ctx, intake.Record{ID: "x", OwnerUserID: "u2", Timestamp: base, DateKey: "2026-03-01"}))

	all, err := repo.ListByOwner(ctx, "u1", intake.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-03-03", all[0].ID)

	from := base.AddDate(0, 0, 1)
	got, err := repo.ListByOwner(ctx, "u1", intake.ListFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ListByOwner(ctx, "u1", intake.ListFilter{DateTo: "2026-03-01"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-03-01", got[0].ID)

	got, err = repo.ListByOwner(ctx, "u1", intake.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNotificationRepo_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepo()

	require.NoError(t, repo.Create(ctx, notifications.Notification{ID: "n1", OwnerUserID: "u1", Timestamp: base}))
	require.NoError(t, repo.Create(ctx, notifications.Notification{ID: "n2", OwnerUserID: "u1", Timestamp: base.Add(time.Second)}))
	require.NoError(t, repo.Create(ctx, notifications.Notification{ID: "n3", OwnerUserID: "u2", Timestamp: base}))
	assert.Error(t, repo.Create(ctx, notifications.Notification{ID: "n1", OwnerUserID: "u1"}))

	got, err := repo.ListByOwner(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n2", got[0].ID)

	got, err = repo.ListByOwner(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
