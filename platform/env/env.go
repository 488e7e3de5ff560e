package env

import (
	"errors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"io/fs"
	"os"
)

// Load reads the given dotenv files (".env" when none is given) into the process environment.
// Variables already set are not overridden and missing files are ignored.
func Load(log *zap.SugaredLogger, files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn("error loading env file ", f, ": ", err)
		}
	}
}

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Debug("env var ", env, " not set, using default")
	return def
}

// Must return the value of an env var, exiting the process if it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatal("required env var ", env, " is not set")
	}
	return v
}
