package family

import (
	"context"
	"testing"

	"medguardian/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Contact
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Contact{}}
}

func (r *testRepo) Create(ctx context.Context, c Contact) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Contact) error {
	if _, ok := r.byID[c.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Contact, error) {
	c, ok := r.byID[id]
	if !ok {
		return Contact{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Contact, error) {
	out := make([]Contact, 0)
	for _, c := range r.byID {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestContact_Validate(t *testing.T) {
	ok := Contact{ID: "c1", OwnerUserID: "u", Name: "Ana", Relationship: "daughter", Phone: "+51 999"}
	require.NoError(t, ok.Validate())

	withEmail := ok
	withEmail.Email = "ana@example.com"
	require.NoError(t, withEmail.Validate())

	broken := []func(c *Contact){
		func(c *Contact) { c.ID = "" },
		func(c *Contact) { c.OwnerUserID = " " },
		func(c *Contact) { c.Name = "" },
		func(c *Contact) { c.Relationship = "" },
		func(c *Contact) { c.Phone = "" },
		func(c *Contact) { c.Email = "not-an-email" },
	}
	for i, mutate := range broken {
		c := ok
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), apperr.ErrInvalidInput, "case %d", i)
	}
}

func TestService_CreateListUpdateDelete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, "owner-1", CreateInput{Name: " Ana ", Relationship: "daughter", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)

	_, err = svc.Create(ctx, "owner-1", CreateInput{Name: "NoPhone", Relationship: "son"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	items, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	email := "ana@example.com"
	updated, err := svc.Update(ctx, "owner-1", c.ID, UpdateInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "555", updated.Phone)

	_, err = svc.Update(ctx, "other", c.ID, UpdateInput{Email: &email})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, "owner-1", "missing"), apperr.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "owner-1", c.ID))
	assert.Empty(t, repo.byID)
}
