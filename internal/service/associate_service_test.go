package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercer/shiftdoc/internal/repository"
)

func TestAssociateService_AddAndList(t *testing.T) {
	_, associates, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewAssociateService(associates)

	a, err := svc.Add(ctx, "Alice Smith", "100")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice Smith", list[0].Name)
}

func TestAssociateService_Add_RequiresBothFields(t *testing.T) {
	_, associates, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewAssociateService(associates)

	_, err := svc.Add(ctx, "", "100")
	assert.ErrorIs(t, err, ErrBlankAssociate)

	_, err = svc.Add(ctx, "Alice", "  ")
	assert.ErrorIs(t, err, ErrBlankAssociate)
}

func TestAssociateService_Remove(t *testing.T) {
	_, associates, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewAssociateService(associates)

	a, err := svc.Add(ctx, "Alice", "100")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, a.ID))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = svc.Remove(ctx, "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssociateService_ImportSchedule_MergesRoster(t *testing.T) {
	_, associates, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewAssociateService(associates)

	existing, err := svc.Add(ctx, "Alice Existing", "100")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("Name,Employee ID\nAlice Imported,100\nBob Jones,200\n"), 0644))

	added, err := svc.ImportSchedule(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, added, "duplicate employee id is skipped")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, existing.Name, list[0].Name, "existing record wins")
	assert.Equal(t, "Bob Jones", list[1].Name)
}
