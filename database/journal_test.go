package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peersupport/database"
	"peersupport/models"
)

func openJournalDB(t *testing.T) *database.JournalDB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewJournalDB(db)
}

func entry(id string, userID int64, createdAt int64, pinned bool) models.Journal {
	return models.Journal{
		ID:        id,
		UserID:    userID,
		Humor:     "calm",
		Title:     "title " + id,
		Content:   "content " + id,
		IsPinned:  pinned,
		Color:     "#fff9c4",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestJournalInsertAndList(t *testing.T) {
	journals := openJournalDB(t)

	require.NoError(t, journals.InsertJournal(entry("a", 1, 100, false)))
	require.NoError(t, journals.InsertJournal(entry("b", 1, 200, false)))
	require.NoError(t, journals.InsertJournal(entry("c", 2, 300, false)))

	list, err := journals.ListJournals(1)
	require.NoError(t, err)
	require.Len(t, list, 2, "entries are scoped per user")
	assert.Equal(t, "b", list[0].ID, "newest first")
	assert.Equal(t, "a", list[1].ID)
}

func TestJournalPinnedFirstOrdering(t *testing.T) {
	journals := openJournalDB(t)

	require.NoError(t, journals.InsertJournal(entry("old-pinned", 1, 100, true)))
	require.NoError(t, journals.InsertJournal(entry("newest", 1, 300, false)))
	require.NoError(t, journals.InsertJournal(entry("middle", 1, 200, false)))

	list, err := journals.ListJournals(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "old-pinned", list[0].ID, "pinned entries lead regardless of age")
	assert.Equal(t, "newest", list[1].ID)
	assert.Equal(t, "middle", list[2].ID)
}

func TestTogglePin(t *testing.T) {
	journals := openJournalDB(t)
	require.NoError(t, journals.InsertJournal(entry("a", 1, 100, false)))

	pinned, err := journals.TogglePin("a")
	require.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = journals.TogglePin("a")
	require.NoError(t, err)
	assert.False(t, pinned)

	_, err = journals.TogglePin("missing")
	assert.Error(t, err)
}

func TestUpdateJournal(t *testing.T) {
	journals := openJournalDB(t)
	require.NoError(t, journals.InsertJournal(entry("a", 1, 100, false)))

	updated := entry("a", 1, 100, false)
	updated.Title = "renamed"
	updated.Content = "rewritten"
	updated.UpdatedAt = 500
	require.NoError(t, journals.UpdateJournal(updated))

	list, err := journals.ListJournals(1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "renamed", list[0].Title)
	assert.Equal(t, "rewritten", list[0].Content)
	assert.Equal(t, int64(500), list[0].UpdatedAt)
}

func TestDeleteJournal(t *testing.T) {
	journals := openJournalDB(t)
	require.NoError(t, journals.InsertJournal(entry("a", 1, 100, false)))
	require.NoError(t, journals.InsertJournal(entry("b", 1, 200, false)))

	require.NoError(t, journals.DeleteJournal("a"))

	list, err := journals.ListJournals(1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}
