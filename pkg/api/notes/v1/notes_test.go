package v1_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/domain/entities"
	apiv1 "gonotes/pkg/api/notes/v1"
)

func TestFormatTimestampMatchesISOString(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 678901234, time.UTC)
	assert.Equal(t, "2025-01-02T03:04:05.678Z", apiv1.FormatTimestamp(ts))

	whole := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 2*60*60))
	assert.Equal(t, "2025-01-02T01:04:05.000Z", apiv1.FormatTimestamp(whole))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := apiv1.ParseTimestamp("2025-01-02T03:04:05.678Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC), ts)

	_, err = apiv1.ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestNoteJSONShape(t *testing.T) {
	note := entities.NewNote(1, "Test", "Sample note", time.Date(2025, 1, 2, 3, 4, 5, 6000000, time.UTC))

	raw, err := json.Marshal(apiv1.FromEntity(note))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":1,"title":"Test","content":"Sample note","createdAt":"2025-01-02T03:04:05.006Z"}`,
		string(raw))
}

func TestToEntity(t *testing.T) {
	original := entities.NewNote(3, "a", "b", time.Date(2025, 6, 7, 8, 9, 10, 11000000, time.UTC))

	back, err := apiv1.FromEntity(original).ToEntity()
	require.NoError(t, err)
	assert.Equal(t, original, back)

	_, err = apiv1.Note{ID: 1, CreatedAt: "bad"}.ToEntity()
	assert.Error(t, err)
}

func TestFromEntitiesNeverNil(t *testing.T) {
	out := apiv1.FromEntities(nil)
	require.NotNil(t, out)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
