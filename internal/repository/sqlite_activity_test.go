package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(docID, path, text string, action domain.ActivityAction, at time.Time) *domain.ActivityEntry {
	return &domain.ActivityEntry{
		ID:         uuid.New().String(),
		DocumentID: docID,
		ItemPath:   path,
		ItemText:   text,
		Action:     action,
		CreatedAt:  at,
	}
}

func TestActivityRepo_CreateAndListRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	docs := repository.NewSQLiteDocumentRepo(db)
	acts := repository.NewSQLiteActivityRepo(db)
	ctx := context.Background()

	rec := testutil.NewTestRecord("act")
	require.NoError(t, docs.Create(ctx, rec))

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, acts.Create(ctx, newEntry(rec.ID, "1.1", "first", domain.ActionCheck, base)))
	require.NoError(t, acts.Create(ctx, newEntry(rec.ID, "1.2", "second", domain.ActionCheck, base.Add(time.Second))))
	require.NoError(t, acts.Create(ctx, newEntry(rec.ID, "1.1", "first", domain.ActionUncheck, base.Add(2*time.Second))))

	entries, err := acts.ListRecent(ctx, rec.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Most recent first.
	assert.Equal(t, domain.ActionUncheck, entries[0].Action)
	assert.Equal(t, "1.1", entries[0].ItemPath)
	assert.Equal(t, "1.2", entries[1].ItemPath)
}

func TestActivityRepo_ListRecent_Limit(t *testing.T) {
	db := testutil.NewTestDB(t)
	docs := repository.NewSQLiteDocumentRepo(db)
	acts := repository.NewSQLiteActivityRepo(db)
	ctx := context.Background()

	rec := testutil.NewTestRecord("lim")
	require.NoError(t, docs.Create(ctx, rec))

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		e := newEntry(rec.ID, "1.1", "item", domain.ActionCheck, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, acts.Create(ctx, e))
	}

	entries, err := acts.ListRecent(ctx, rec.ID, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestActivityRepo_RejectsUnknownAction(t *testing.T) {
	db := testutil.NewTestDB(t)
	docs := repository.NewSQLiteDocumentRepo(db)
	acts := repository.NewSQLiteActivityRepo(db)
	ctx := context.Background()

	rec := testutil.NewTestRecord("bad")
	require.NoError(t, docs.Create(ctx, rec))

	e := newEntry(rec.ID, "1.1", "item", domain.ActivityAction("toggle"), time.Now())
	assert.Error(t, acts.Create(ctx, e))
}

func TestActivityRepo_ScopedToDocument(t *testing.T) {
	db := testutil.NewTestDB(t)
	docs := repository.NewSQLiteDocumentRepo(db)
	acts := repository.NewSQLiteActivityRepo(db)
	ctx := context.Background()

	one := testutil.NewTestRecord("one")
	two := testutil.NewTestRecord("two")
	require.NoError(t, docs.Create(ctx, one))
	require.NoError(t, docs.Create(ctx, two))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, acts.Create(ctx, newEntry(one.ID, "1.1", "a", domain.ActionCheck, now)))
	require.NoError(t, acts.Create(ctx, newEntry(two.ID, "1.1", "b", domain.ActionCheck, now)))

	entries, err := acts.ListRecent(ctx, one.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ItemText)
}
