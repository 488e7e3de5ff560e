package schema

import "fmt"

const dropSchema = `DROP TABLE notes`

var schemas = map[string]string{
	"mysql": `CREATE TABLE notes (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL
	) ENGINE=InnoDB`,
	"sqlite3": `CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
}

func ddl(driver string) (string, error) {
	s, ok := schemas[driver]
	if !ok {
		return "", fmt.Errorf("no schema for driver %q", driver)
	}
	return s, nil
}
