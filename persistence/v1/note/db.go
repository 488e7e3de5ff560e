package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes-service/sys"
	"time"
)

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Note, error) {
	var n Note
	if err := s.Scan(&n.Id, &n.Title, &n.Content, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return Note{}, err
	}
	return n, nil
}

// now is the timestamp written on inserts and updates, truncated to what the stores can keep
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if t := sys.Configs.Database.OperationTimeout; t > 0 {
		return context.WithTimeout(ctx, t)
	}
	return context.WithCancel(ctx)
}

func findWith(ctx context.Context, conn *sql.Conn, id uint64) (Note, error) {
	stmt, err := conn.PrepareContext(ctx, "SELECT "+columns+" FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	n, err := scan(stmt.QueryRowContext(ctx, id))
	switch {
	case err == sql.ErrNoRows:
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return n, nil
	}
}
