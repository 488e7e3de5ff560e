package note

import (
	"errors"
	"time"
)

// NotFoundMessage is the text of ErrNotFound, also sent to api clients
const NotFoundMessage = "Note not found"

// ErrNotFound is returned when no row matches the requested id
var ErrNotFound = errors.New(NotFoundMessage)

const columns = "id, title, content, is_pinned, created_at, updated_at"

// Note is a row of the notes table
type Note struct {
	Id        uint64
	Title     string
	Content   string
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewNote struct {
	Title   string
	Content string
}

// Changes holds the columns an update writes, nil ones are left untouched
type Changes struct {
	Title    *string
	Content  *string
	IsPinned *bool
}
