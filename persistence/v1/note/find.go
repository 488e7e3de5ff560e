package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-service/platform/database"
	"github.com/ribgsilva/notes-service/sys"
)

// Find returns the note with the given id or ErrNotFound
func Find(ctx context.Context, id uint64) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := opContext(ctx)
	defer dbCancel()

	var found Note
	err := database.WithConn(dbCtx, db, func(conn *sql.Conn) error {
		var err error
		found, err = findWith(dbCtx, conn, id)
		return err
	})
	if err != nil {
		return Note{}, err
	}
	return found, nil
}

// List returns every note ordered by id
func List(ctx context.Context) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := opContext(ctx)
	defer dbCancel()

	notes := make([]Note, 0)
	err := database.WithConn(dbCtx, db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(dbCtx, "SELECT "+columns+" FROM notes ORDER BY id")
		if err != nil {
			return fmt.Errorf("failed to query list stmt: %w", err)
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			n, err := scan(rows)
			if err != nil {
				return fmt.Errorf("error parsing db data: %w", err)
			}
			notes = append(notes, n)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate list rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}
