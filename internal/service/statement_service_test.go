package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/statement"
	"github.com/lmercer/shiftdoc/internal/testutil"
)

func TestStatementService_Daily(t *testing.T) {
	incidents, associates, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewStatementService(incidents, associates, settings, &statement.Renderer{})

	alice := addAssociate(t, associates, "Alice Smith")
	now := duringShift

	today := testutil.NewIncident(alice.ID, domain.ViolationOSHA, domain.ActionCoached, now.Add(-time.Hour))
	lastWeek := testutil.NewIncident(alice.ID, domain.ViolationOSHA, domain.ActionCoached, now.AddDate(0, 0, -7))
	require.NoError(t, incidents.ReplaceAll(ctx, []domain.Incident{today, lastWeek}))

	st, err := svc.Daily(ctx, alice.ID, now)
	require.NoError(t, err)
	assert.Equal(t, "Daily_Statement_Alice_Smith_2026-03-10.txt", st.Filename)
	assert.Contains(t, st.Text, "Alice Smith")
	assert.Contains(t, st.Text, "Incident 1")
	assert.NotContains(t, st.Text, "Incident 2", "older incidents stay out of the daily scope")
}

func TestStatementService_Daily_NoIncidentsToday(t *testing.T) {
	incidents, associates, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewStatementService(incidents, associates, settings, &statement.Renderer{})

	alice := addAssociate(t, associates, "Alice")
	_, err := svc.Daily(ctx, alice.ID, duringShift)
	assert.Error(t, err)
}

func TestStatementService_Lifetime(t *testing.T) {
	incidents, associates, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewStatementService(incidents, associates, settings, &statement.Renderer{})

	alice := addAssociate(t, associates, "Alice Smith")
	bob := addAssociate(t, associates, "Bob")
	now := duringShift

	mine := testutil.NewIncident(alice.ID, domain.ViolationHostility, domain.ActionWarn, now.AddDate(0, 0, -7))
	theirs := testutil.NewIncident(bob.ID, domain.ViolationOSHA, domain.ActionCoached, now)
	require.NoError(t, incidents.ReplaceAll(ctx, []domain.Incident{mine, theirs}))

	st, err := svc.Lifetime(ctx, alice.ID, now)
	require.NoError(t, err)
	assert.Equal(t, "Lifetime_Statement_Alice_Smith.txt", st.Filename)
	assert.Contains(t, st.Text, "Incident 1")
	assert.NotContains(t, st.Text, "Incident 2", "other associates' incidents are excluded")
}

func TestStatementService_Export(t *testing.T) {
	incidents, associates, settings := setupRepos(t)
	svc := NewStatementService(incidents, associates, settings, &statement.Renderer{})

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, svc.Export(path, &Statement{Text: "statement body"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "statement body", string(data))
}
