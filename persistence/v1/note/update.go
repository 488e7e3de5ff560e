package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-service/platform/database"
	"github.com/ribgsilva/notes-service/sys"
	"strings"
)

// Update writes the non nil columns of c plus a fresh updated_at, returning ErrNotFound if the id does not exist
func Update(ctx context.Context, id uint64, c Changes) (Note, error) {
	db := sys.R.Database

	set, args := assignments(c)
	args = append(args, now(), id)
	query := "UPDATE notes SET " + strings.Join(append(set, "updated_at = ?"), ", ") + " WHERE id = ?"

	dbCtx, dbCancel := opContext(ctx)
	defer dbCancel()

	var updated Note
	err := database.WithConn(dbCtx, db, func(conn *sql.Conn) error {
		if _, err := findWith(dbCtx, conn, id); err != nil {
			return err
		}

		stmt, err := conn.PrepareContext(dbCtx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare update stmt: %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		if _, err := stmt.ExecContext(dbCtx, args...); err != nil {
			return fmt.Errorf("failed to exec update stmt: %w", err)
		}

		updated, err = findWith(dbCtx, conn, id)
		return err
	})
	if err != nil {
		return Note{}, err
	}
	return updated, nil
}

func assignments(c Changes) ([]string, []any) {
	var set []string
	var args []any
	if c.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *c.Title)
	}
	if c.Content != nil {
		set = append(set, "content = ?")
		args = append(args, *c.Content)
	}
	if c.IsPinned != nil {
		set = append(set, "is_pinned = ?")
		args = append(args, *c.IsPinned)
	}
	return set, args
}
