package note

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ribgsilva/notes-service/platform/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestDeleteWithMissingRow(t *testing.T) {
	db, err := database.Open("sqlite3", "file:TestDeleteWithMissingRow?mode=memory&cache=shared", 2*time.Second)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)

	_, err = db.Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT, content TEXT, is_pinned BOOLEAN, created_at DATETIME, updated_at DATETIME)")
	require.NoError(t, err)
	n := now()
	res, err := db.Exec("INSERT INTO notes (title, content, is_pinned, created_at, updated_at) VALUES (?, ?, ?, ?, ?)", "t", "c", false, n, n)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	ctx := context.Background()
	err = database.WithConn(ctx, db, func(conn *sql.Conn) error {
		// the row is found by one delete and removed by another before this one runs
		if err := deleteWith(ctx, conn, uint64(id)); err != nil {
			return err
		}
		return deleteWith(ctx, conn, uint64(id))
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
