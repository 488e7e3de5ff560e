package note

import (
	"context"
	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

func Create(ctx context.Context, newN NewNote) (Note, error) {
	created, err := note.Insert(ctx, note.NewNote{Title: newN.Title, Content: newN.Content})
	if err != nil {
		return Note{}, err
	}
	return fromRow(created), nil
}

func List(ctx context.Context) ([]Note, error) {
	rows, err := note.List(ctx)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(rows))
	for _, r := range rows {
		notes = append(notes, fromRow(r))
	}
	return notes, nil
}

func Find(ctx context.Context, id uint64) (Note, error) {
	found, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	return fromRow(found), nil
}

func Update(ctx context.Context, id uint64, u UpdateNote) (Note, error) {
	updated, err := note.Update(ctx, id, toChanges(u))
	if err != nil {
		return Note{}, err
	}
	return fromRow(updated), nil
}

func Delete(ctx context.Context, id uint64) (Note, error) {
	deleted, err := note.Delete(ctx, id)
	if err != nil {
		return Note{}, err
	}
	return fromRow(deleted), nil
}
