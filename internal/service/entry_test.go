package service

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xolan/devjournal/internal/config"
	"github.com/xolan/devjournal/internal/entry"
)

func titles(entries []entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestEntryService_Add(t *testing.T) {
	svc := newTestServices(t)

	res, err := svc.Entry.Add("TODO", "Study pytest", "Python,testing")
	require.NoError(t, err)

	assert.Equal(t, "1", res.Entry.ID)
	assert.Equal(t, "TODO", res.Entry.Title)
	assert.Equal(t, "Study pytest", res.Entry.Content)
	assert.Equal(t, []string{"Python", "testing"}, res.Entry.Tags)
	assert.True(t, res.Entry.Timestamp.Equal(fixedNow))
	assert.Empty(t, res.Truncations)

	list := svc.Entry.List(nil)
	require.Len(t, list.Entries, 1)
	stored := list.Entries[0]
	assert.Equal(t, res.Entry.ID, stored.ID)
	assert.Equal(t, res.Entry.Tags, stored.Tags)
	assert.True(t, stored.Timestamp.Equal(fixedNow))
}

func TestEntryService_Add_DuplicateTitle(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Entry.Add("TODO", "first", "")
	require.NoError(t, err)

	_, err = svc.Entry.Add("todo", "second", "x")
	assert.ErrorIs(t, err, entry.ErrDuplicateTitle)

	list := svc.Entry.List(nil)
	require.Len(t, list.Entries, 1)
	assert.Equal(t, "first", list.Entries[0].Content)
}

func TestEntryService_Add_InvalidInput(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Entry.Add("  ", "content", "")
	assert.ErrorIs(t, err, entry.ErrInvalidInput)

	_, err = svc.Entry.Add("title", "", "")
	assert.ErrorIs(t, err, entry.ErrInvalidInput)

	assert.Equal(t, 0, svc.Entry.List(nil).Total)
}

func TestEntryService_Add_Truncates(t *testing.T) {
	svc := newTestServices(t)

	long := "A title that is much longer than thirty characters"
	res, err := svc.Entry.Add(long, "short", "")
	require.NoError(t, err)

	assert.Equal(t, long[:entry.TitleLength], res.Entry.Title)
	require.Len(t, res.Truncations, 1)
	assert.Equal(t, "title", res.Truncations[0].Field)
}

func TestEntryService_Add_RejectPolicy(t *testing.T) {
	svc := newTestServices(t, func(c *config.Config) { c.LengthPolicy = config.LengthReject })

	_, err := svc.Entry.Add("A title that is much longer than thirty characters", "short", "")
	assert.ErrorIs(t, err, entry.ErrTitleTooLong)
	assert.Equal(t, 0, svc.Entry.List(nil).Total)
}

func TestEntryService_Add_InsertPosition(t *testing.T) {
	tests := []struct {
		position string
		want     []string
	}{
		{config.InsertAppend, []string{"first", "second"}},
		{config.InsertPrepend, []string{"second", "first"}},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			svc := newTestServices(t, func(c *config.Config) { c.InsertPosition = tt.position })
			_, err := svc.Entry.Add("first", "a", "")
			require.NoError(t, err)
			_, err = svc.Entry.Add("second", "b", "")
			require.NoError(t, err)

			// Storage order, not display order
			stored := svc.Search.store.Load()
			assert.Equal(t, tt.want, titles(stored))
		})
	}
}

func TestEntryService_Add_PaddedIDs(t *testing.T) {
	svc := newTestServices(t, func(c *config.Config) { c.IDWidth = 5 })

	res, err := svc.Entry.Add("first", "a", "")
	require.NoError(t, err)
	assert.Equal(t, "00001", res.Entry.ID)

	res, err = svc.Entry.Add("second", "b", "")
	require.NoError(t, err)
	assert.Equal(t, "00002", res.Entry.ID)
}

func TestEntryService_IDsNotReused(t *testing.T) {
	svc := newTestServices(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Entry.Add(title, "c", "")
		require.NoError(t, err)
	}
	_, err := svc.Entry.Delete("2")
	require.NoError(t, err)

	res, err := svc.Entry.Add("four", "c", "")
	require.NoError(t, err)
	assert.Equal(t, "4", res.Entry.ID)
}

func TestEntryService_Edit(t *testing.T) {
	svc := newTestServices(t)
	added, err := svc.Entry.Add("TODO", "Study pytest", "Python")
	require.NoError(t, err)

	var seen entry.Entry
	updated, err := svc.Entry.Edit("1", func(e entry.Entry) (string, error) {
		seen = e
		return "  Study Go instead ", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "TODO", seen.Title)
	assert.Equal(t, "Study Go instead", updated.Content)
	assert.Equal(t, added.Entry.Title, updated.Title)
	assert.Equal(t, added.Entry.Tags, updated.Tags)
	assert.True(t, added.Entry.Timestamp.Equal(updated.Timestamp))

	got, err := svc.Entry.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Study Go instead", got.Content)
}

func TestEntryService_Edit_NotFoundSkipsPrompt(t *testing.T) {
	svc := newTestServices(t)

	called := false
	_, err := svc.Entry.Edit("42", func(entry.Entry) (string, error) {
		called = true
		return "x", nil
	})
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.False(t, called, "content prompt must not run for a missing entry")
}

func TestEntryService_Edit_Errors(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Entry.Add("TODO", "Study pytest", "")
	require.NoError(t, err)

	_, err = svc.Entry.Edit(" ", func(entry.Entry) (string, error) { return "x", nil })
	assert.ErrorIs(t, err, entry.ErrInvalidInput)

	_, err = svc.Entry.Edit("1", func(entry.Entry) (string, error) { return "   ", nil })
	assert.ErrorIs(t, err, entry.ErrInvalidInput)

	errPrompt := errors.New("stdin closed")
	_, err = svc.Entry.Edit("1", func(entry.Entry) (string, error) { return "", errPrompt })
	assert.ErrorIs(t, err, errPrompt)

	got, err := svc.Entry.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Study pytest", got.Content)
}

func TestEntryService_Delete(t *testing.T) {
	svc := newTestServices(t)
	for _, title := range []string{"one", "two"} {
		_, err := svc.Entry.Add(title, "c", "")
		require.NoError(t, err)
	}

	removed, err := svc.Entry.Delete("1")
	require.NoError(t, err)
	assert.Equal(t, "one", removed.Title)

	list := svc.Entry.List(nil)
	assert.Equal(t, []string{"two"}, titles(list.Entries))
}

func TestEntryService_Delete_NotFound(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Entry.Add("one", "c", "")
	require.NoError(t, err)

	before, err := os.ReadFile(svc.Storage.Path())
	require.NoError(t, err)

	_, err = svc.Entry.Delete("9")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	after, err := os.ReadFile(svc.Storage.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestEntryService_Delete_MatchesPaddedID(t *testing.T) {
	svc := newTestServices(t, func(c *config.Config) { c.IDWidth = 5 })
	_, err := svc.Entry.Add("one", "c", "")
	require.NoError(t, err)

	removed, err := svc.Entry.Delete("1")
	require.NoError(t, err)
	assert.Equal(t, "00001", removed.ID)
}

func TestEntryService_List(t *testing.T) {
	svc := newTestServices(t)

	empty := svc.Entry.List(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.Entries)

	_, err := svc.Entry.Add("one", "c", "go,testing")
	require.NoError(t, err)
	_, err = svc.Entry.Add("two", "c", "python")
	require.NoError(t, err)
	_, err = svc.Entry.Add("three", "c", "")
	require.NoError(t, err)

	all := svc.Entry.List(nil)
	assert.Equal(t, 3, all.Total)
	assert.False(t, all.Filtered)
	assert.Equal(t, []string{"three", "two", "one"}, titles(all.Entries))

	filtered := svc.Entry.List([]string{"PYTHON", "Go"})
	assert.True(t, filtered.Filtered)
	assert.Equal(t, 3, filtered.Total)
	assert.Equal(t, []string{"two", "one"}, titles(filtered.Entries))

	none := svc.Entry.List([]string{"rust"})
	assert.Equal(t, 3, none.Total)
	assert.Empty(t, none.Entries)
}

func TestSortByIDDesc(t *testing.T) {
	entries := []entry.Entry{{ID: "2"}, {ID: "x"}, {ID: "10"}, {ID: "00003"}, {ID: "1"}}
	got := SortByIDDesc(entries)

	ids := make([]string, len(got))
	for i, e := range got {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"10", "00003", "2", "1", "x"}, ids)
	assert.Equal(t, "2", entries[0].ID, "input must not be reordered")
}

func TestEntryService_Get_NotFound(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Entry.Get("1")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
