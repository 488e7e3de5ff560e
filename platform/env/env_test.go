package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_VALUE", "set")
	assert.Equal(t, "set", OrDefault(log, "NOTES_TEST_VALUE", "def"))
	assert.Equal(t, "def", OrDefault(log, "NOTES_TEST_MISSING", "def"))
}

func TestTypedDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_DURATION", "3s")
	t.Setenv("NOTES_TEST_BOOL", "t")
	t.Setenv("NOTES_TEST_INT", "42")

	assert.Equal(t, 3*time.Second, DurationDefault(log, "NOTES_TEST_DURATION", "1s"))
	assert.Equal(t, time.Second, DurationDefault(log, "NOTES_TEST_DURATION_MISSING", "1s"))
	assert.True(t, BoolDefault(log, "NOTES_TEST_BOOL", "f"))
	assert.False(t, BoolDefault(log, "NOTES_TEST_BOOL_MISSING", "f"))
	assert.Equal(t, 42, IntDefault(log, "NOTES_TEST_INT", "1"))
	assert.Equal(t, 1, IntDefault(log, "NOTES_TEST_INT_MISSING", "1"))
}

func TestInvalidValuesFallToZero(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_BAD", "not-a-number")
	assert.Zero(t, DurationDefault(log, "NOTES_TEST_BAD", "1s"))
	assert.False(t, BoolDefault(log, "NOTES_TEST_BAD", "t"))
	assert.Zero(t, IntDefault(log, "NOTES_TEST_BAD", "1"))
}

func TestLoad(t *testing.T) {
	log := zap.NewNop().Sugar()

	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("NOTES_TEST_DOTENV=from-file\nNOTES_TEST_KEEP=from-file\n"), 0o600))

	t.Setenv("NOTES_TEST_KEEP", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("NOTES_TEST_DOTENV") })

	Load(log, file, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "from-file", os.Getenv("NOTES_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("NOTES_TEST_KEEP"))
}
