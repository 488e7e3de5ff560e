package note

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateNotePresence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want UpdateNote
	}{
		{name: "empty", body: `{}`, want: UpdateNote{}},
		{name: "null means unchanged", body: `{"title":null,"isPinned":null}`, want: UpdateNote{}},
		{name: "pin only", body: `{"isPinned":true}`, want: UpdateNote{IsPinned: Some(true)}},
		{name: "unpin", body: `{"isPinned":false}`, want: UpdateNote{IsPinned: Some(false)}},
		{name: "blank title", body: `{"title":""}`, want: UpdateNote{Title: Some("")}},
		{name: "all", body: `{"title":"t","content":"c","isPinned":true}`, want: UpdateNote{Title: Some("t"), Content: Some("c"), IsPinned: Some(true)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got UpdateNote
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateNoteWrongType(t *testing.T) {
	var got UpdateNote
	assert.Error(t, json.Unmarshal([]byte(`{"isPinned":"yes"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"title":5}`), &got))
}

func TestNoteUpdateEventPayload(t *testing.T) {
	var got NoteUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"content":"new"}`), &got))
	assert.Equal(t, uint64(3), got.Id)
	assert.Equal(t, Some("new"), got.Content)
	assert.False(t, got.Title.Set)
}

func TestToChanges(t *testing.T) {
	c := toChanges(UpdateNote{IsPinned: Some(false)})
	assert.Nil(t, c.Title)
	assert.Nil(t, c.Content)
	require.NotNil(t, c.IsPinned)
	assert.False(t, *c.IsPinned)
}

func TestFromRow(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	n := fromRow(note.Note{Id: 7, Title: "t", Content: "c", IsPinned: true, CreatedAt: ts, UpdatedAt: ts.Add(time.Minute)})

	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"t","content":"c","isPinned":true,"created_at":"2024-01-02T03:04:05Z","updated_at":"2024-01-02T03:05:05Z"}`, string(b))
}
