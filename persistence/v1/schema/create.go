package schema

import (
	"context"
	"errors"
	"github.com/ribgsilva/notes-service/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	schema, err := ddl(sys.Configs.Database.Driver)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	_, err = db.ExecContext(ctx, schema)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
