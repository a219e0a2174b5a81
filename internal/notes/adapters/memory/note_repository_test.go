package memory_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
)

func TestNewNoteRepository(t *testing.T) {
	repo := memory.NewNoteRepository()

	assert.Implements(t, (*repositories.NoteRepository)(nil), repo)

	notes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestCreateFirstNote(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	before := time.Now().UTC().Truncate(entities.TimestampPrecision)
	note, err := repo.Create(ctx, "Test", "Sample note")
	require.NoError(t, err)

	assert.Equal(t, int64(1), note.ID)
	assert.Equal(t, "Test", note.Title)
	assert.Equal(t, "Sample note", note.Content)
	assert.False(t, note.CreatedAt.Before(before))
	assert.False(t, note.CreatedAt.After(time.Now()))

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note, notes[0])
}

func TestCreateIncrementsIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	first, err := repo.Create(ctx, "Note 1", "Content 1")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "Note 2", "Content 2")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, []*entities.Note{first, second}, notes)
}

func TestListReturnsNotesInCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	const n = 50
	created := make([]*entities.Note, 0, n)
	for i := 0; i < n; i++ {
		note, err := repo.Create(ctx, fmt.Sprintf("title-%d", i), fmt.Sprintf("content-%d", i))
		require.NoError(t, err)
		created = append(created, note)
	}

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, n)

	for i, note := range notes {
		assert.Equal(t, int64(i+1), note.ID)
		assert.Equal(t, created[i], note)
		if i > 0 {
			assert.Less(t, notes[i-1].ID, note.ID)
			assert.False(t, note.CreatedAt.Before(notes[i-1].CreatedAt))
		}
	}
}

func TestCreateAcceptsEmptyStrings(t *testing.T) {
	repo := memory.NewNoteRepository()

	note, err := repo.Create(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), note.ID)
	assert.Empty(t, note.Title)
	assert.Empty(t, note.Content)
}

func TestCreatedAtNeverGoesBackwards(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC)
	times := []time.Time{base, base.Add(-time.Hour), base.Add(time.Second)}

	var i int
	repo := memory.NewNoteRepository(memory.WithClock(func() time.Time {
		t := times[i]
		i++
		return t
	}))

	a, err := repo.Create(ctx, "a", "")
	require.NoError(t, err)
	b, err := repo.Create(ctx, "b", "")
	require.NoError(t, err)
	c, err := repo.Create(ctx, "c", "")
	require.NoError(t, err)

	assert.Equal(t, base, a.CreatedAt)
	assert.Equal(t, base, b.CreatedAt)
	assert.Equal(t, base.Add(time.Second), c.CreatedAt)
}

func TestReturnedNotesAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	created, err := repo.Create(ctx, "original", "content")
	require.NoError(t, err)
	created.Title = "mutated by caller"

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	listed[0].Content = "mutated again"
	listed[0] = &entities.Note{ID: 99}

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "original", fresh[0].Title)
	assert.Equal(t, "content", fresh[0].Content)
	assert.Equal(t, int64(1), fresh[0].ID)
}

func TestIndependentStores(t *testing.T) {
	ctx := context.Background()
	first := memory.NewNoteRepository()
	second := memory.NewNoteRepository()

	_, err := first.Create(ctx, "a", "b")
	require.NoError(t, err)

	note, err := second.Create(ctx, "c", "d")
	require.NoError(t, err)

	assert.Equal(t, int64(1), note.ID)

	firstNotes, err := first.List(ctx)
	require.NoError(t, err)
	secondNotes, err := second.List(ctx)
	require.NoError(t, err)
	assert.Len(t, firstNotes, 1)
	require.Len(t, secondNotes, 1)
	assert.Equal(t, "c", secondNotes[0].Title)
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := repo.Create(ctx, fmt.Sprintf("w%d", w), fmt.Sprintf("%d", i))
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, workers*perWorker)

	ids := make([]int64, 0, len(notes))
	for i, note := range notes {
		assert.Equal(t, int64(i+1), note.ID)
		ids = append(ids, note.ID)
	}
	assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }))
}
