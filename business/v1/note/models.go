package note

import (
	"encoding/json"
	"github.com/ribgsilva/notes-service/persistence/v1/note"
	"time"
)

// ErrNotFound is returned when the requested note does not exist
var ErrNotFound = note.ErrNotFound

// NotFoundMessage is the text clients get for ErrNotFound
const NotFoundMessage = note.NotFoundMessage

type Note struct {
	Id        uint64    `json:"id" example:"1"`
	Title     string    `json:"title" example:"Groceries"`
	Content   string    `json:"content" example:"Milk, eggs"`
	IsPinned  bool      `json:"isPinned" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Field is an optional value of a patch. Set is false when the key is absent or null.
type Field[T any] struct {
	Set   bool
	Value T
}

// Some returns a set Field holding v
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Field[T]{}
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Set = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f Field[T]) ptr() *T {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// UpdateNote is a partial update, only the set fields are written
type UpdateNote struct {
	Title    Field[string] `json:"title" swaggertype:"string"`
	Content  Field[string] `json:"content" swaggertype:"string"`
	IsPinned Field[bool]   `json:"isPinned" swaggertype:"boolean"`
}

// NoteUpdate is the payload of an update event
type NoteUpdate struct {
	Id uint64 `json:"id"`
	UpdateNote
}

// NoteDelete is the payload of a delete event
type NoteDelete struct {
	Id uint64 `json:"id"`
}

func fromRow(n note.Note) Note {
	return Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toChanges(u UpdateNote) note.Changes {
	return note.Changes{
		Title:    u.Title.ptr(),
		Content:  u.Content.ptr(),
		IsPinned: u.IsPinned.ptr(),
	}
}
