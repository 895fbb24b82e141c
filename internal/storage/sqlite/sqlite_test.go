package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/registration-form/internal/config"
	"github.com/aanand-mishra/registration-form/internal/storage"
	"github.com/aanand-mishra/registration-form/internal/types"
)

var _ storage.Storage = (*SQLite)(nil)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{StoragePath: filepath.Join(t.TempDir(), "registrations.db")}
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestGetRegistrationsEmpty(t *testing.T) {
	s := newTestStore(t)

	regs, err := s.GetRegistrations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, regs)
	assert.Empty(t, regs)
}

func TestCreateThenList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fixed := time.Date(2026, 10, 16, 9, 30, 0, 123, time.UTC)
	s.now = func() time.Time { return fixed }
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	require.NoError(t, s.CreateRegistration(ctx, types.Registration{Name: "Ada", Email: "ada@example.com"}))
	require.NoError(t, s.CreateRegistration(ctx, types.Registration{Name: "Grace", Email: "grace@example.com"}))

	regs, err := s.GetRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Registration{
		{ID: "id-1", Name: "Ada", Email: "ada@example.com", CreatedAt: fixed},
		{ID: "id-2", Name: "Grace", Email: "grace@example.com", CreatedAt: fixed},
	}, regs)
}

func TestCreateAssignsMetadata(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Caller-supplied metadata is ignored; the store owns it.
	require.NoError(t, s.CreateRegistration(ctx, types.Registration{ID: "mine", Name: "Ada", Email: "a@b.c"}))

	regs, err := s.GetRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.NotEqual(t, "mine", regs[0].ID)
	assert.Len(t, regs[0].ID, 36)
	assert.False(t, regs[0].CreatedAt.IsZero())
}

func TestReopenKeepsData(t *testing.T) {
	cfg := &config.Config{StoragePath: filepath.Join(t.TempDir(), "registrations.db")}
	ctx := context.Background()

	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.CreateRegistration(ctx, types.Registration{Name: "Ada", Email: "a@b.c"}))
	require.NoError(t, s.Close())

	s, err = New(cfg)
	require.NoError(t, err)
	defer s.Close()

	regs, err := s.GetRegistrations(ctx)
	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestStorageErrorsPropagate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Close())

	err := s.CreateRegistration(ctx, types.Registration{Name: "Ada", Email: "a@b.c"})
	assert.ErrorContains(t, err, "CreateRegistration")

	_, err = s.GetRegistrations(ctx)
	assert.ErrorContains(t, err, "GetRegistrations")
}

func TestDuplicateIDIsAnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.newID = func() string { return "same" }

	require.NoError(t, s.CreateRegistration(ctx, types.Registration{Name: "Ada", Email: "a@b.c"}))
	assert.Error(t, s.CreateRegistration(ctx, types.Registration{Name: "Ada", Email: "a@b.c"}))
}
