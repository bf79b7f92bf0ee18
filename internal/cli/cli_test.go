package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STORAGE_DRIVER", "DB_DSN", "SQLITE_PATH", "PORT", "JWT_SECRET", "JWT_ISSUER", "DISPATCH_CONCURRENCY"} {
		t.Setenv(k, "")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "medguardian dev")
}

func TestMigrateAndStats_SQLite(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "data", "medguardian.db")

	out, err := run(t, "migrate", "--storage", "sqlite", "--sqlite-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "applied 00001")

	out, err = run(t, "migrate", "--storage", "sqlite", "--sqlite-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no pending migrations")

	out, err = run(t, "stats", "--storage", "sqlite", "--sqlite-path", path, "--owner", "user-1", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "expected:  0")
	assert.Contains(t, out, "adherence: 0%")
}

func TestMigrate_RejectsMemory(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "migrate", "--storage", "memory")
	assert.Error(t, err)
}

func TestToken_RequiresSecret(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "token", "--storage", "memory", "--user", "u1")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "k")
	out, err := run(t, "token", "--storage", "memory", "--user", "u1")
	require.NoError(t, err)
	assert.Len(t, bytes.Split(bytes.TrimSpace([]byte(out)), []byte(".")), 3)
}
