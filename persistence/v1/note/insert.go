package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-service/platform/database"
	"github.com/ribgsilva/notes-service/sys"
)

// Insert stores a new unpinned note and returns it as read back from the database
func Insert(ctx context.Context, newN NewNote) (Note, error) {
	db := sys.R.Database

	n := now()

	dbCtx, dbCancel := opContext(ctx)
	defer dbCancel()

	var created Note
	err := database.WithConn(dbCtx, db, func(conn *sql.Conn) error {
		stmt, err := conn.PrepareContext(dbCtx, "INSERT INTO notes (title, content, is_pinned, created_at, updated_at) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare insert stmt: %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		res, err := stmt.ExecContext(dbCtx, newN.Title, newN.Content, false, n, n)
		if err != nil {
			return fmt.Errorf("failed to exec insert stmt: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted id: %w", err)
		}

		created, err = findWith(dbCtx, conn, uint64(id))
		return err
	})
	if err != nil {
		return Note{}, err
	}
	return created, nil
}
