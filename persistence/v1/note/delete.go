package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-service/platform/database"
	"github.com/ribgsilva/notes-service/sys"
)

// Delete removes the note and returns it as it was right before, or ErrNotFound
func Delete(ctx context.Context, id uint64) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := opContext(ctx)
	defer dbCancel()

	var deleted Note
	err := database.WithConn(dbCtx, db, func(conn *sql.Conn) error {
		var err error
		deleted, err = findWith(dbCtx, conn, id)
		if err != nil {
			return err
		}

		return deleteWith(dbCtx, conn, id)
	})
	if err != nil {
		return Note{}, err
	}
	return deleted, nil
}

// deleteWith removes the row, returning ErrNotFound when it was already gone
func deleteWith(ctx context.Context, conn *sql.Conn, id uint64) error {
	stmt, err := conn.PrepareContext(ctx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	res, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
