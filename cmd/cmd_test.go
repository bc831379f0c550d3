package cmd

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfgFile = ""
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// sqliteDB creates a database file holding the named tables.
func sqliteDB(t *testing.T, tables map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for name, key := range tables {
		_, err := db.Exec(fmt.Sprintf(`CREATE TABLE %q (%q TEXT PRIMARY KEY, "Item" TEXT NOT NULL)`, name, key))
		require.NoError(t, err)
	}
	return path
}

func countRows(t *testing.T, path, table string) int {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table)).Scan(&n))
	return n
}

func TestDefaultCommandSeeds(t *testing.T) {
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "memory")

	out, err := runCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, successMessage)
	assert.Contains(t, out, "1 orders, 24 shoes")
}

func TestSeedStrict(t *testing.T) {
	out, err := runCommand(t, "seed", "--strict", "--provider", "memory")
	require.NoError(t, err)
	assert.Contains(t, out, successMessage)
}

func TestSQLiteSeedAndVerify(t *testing.T) {
	path := sqliteDB(t, map[string]string{"OrderTable": "OrderId", "ShoeTable": "ShoeId"})
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "sqlite")
	t.Setenv("DATABASE_URL", "sqlite://"+path)

	for i := 0; i < 2; i++ {
		out, err := runCommand(t, "seed")
		require.NoError(t, err)
		assert.Contains(t, out, successMessage)
	}
	assert.Equal(t, 1, countRows(t, path, "OrderTable"))
	assert.Equal(t, 24, countRows(t, path, "ShoeTable"))

	out, err := runCommand(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "1 orders and 24 shoes verified")
}

func TestMissingShoeTable(t *testing.T) {
	path := sqliteDB(t, map[string]string{"OrderTable": "OrderId"})
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "sqlite")
	t.Setenv("DATABASE_URL", "sqlite://"+path)

	out, err := runCommand(t, "seed")
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrTableNotFound)
	assert.NotContains(t, out, successMessage)
	assert.Equal(t, 1, countRows(t, path, "OrderTable"))
}

func TestUnreachableSQLite(t *testing.T) {
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "missing", "shop.db"))

	out, err := runCommand(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrConnection)
	assert.NotContains(t, out, successMessage)
}

func TestUnreachableDynamoDB(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "dynamodb")
	t.Setenv("SHOESEED_DATABASE_REGION", "us-east-1")
	t.Setenv("SHOESEED_DATABASE_ENDPOINT", "http://"+addr)
	t.Setenv("SHOESEED_DATABASE_MAX_ATTEMPTS", "1")

	out, err := runCommand(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrConnection)
	assert.NotContains(t, out, successMessage)
}

func TestFailureTip(t *testing.T) {
	path := sqliteDB(t, map[string]string{"OrderTable": "OrderId"})
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "sqlite")
	t.Setenv("DATABASE_URL", "sqlite://"+path)

	_, err := runCommand(t, "seed")
	require.Error(t, err)
	assert.Contains(t, failureTip(err), "create both tables")

	assert.Contains(t, failureTip(fmt.Errorf("seed: %w", database.ErrConnection)), "DATABASE_URL")
	assert.Empty(t, failureTip(fmt.Errorf("unsupported database provider: oracle")))
	assert.Empty(t, failureTip(nil))
}

func TestSQLProviderNeedsURL(t *testing.T) {
	t.Setenv("SHOESEED_DATABASE_PROVIDER", "postgresql")
	t.Setenv("DATABASE_URL", "")

	_, err := runCommand(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestUnknownProvider(t *testing.T) {
	_, err := runCommand(t, "seed", "--provider", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider")
}

func TestExportToStdout(t *testing.T) {
	out, err := runCommand(t, "export", "--out", "-")
	require.NoError(t, err)

	var shoes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shoes))
	require.Len(t, shoes, 24)
	assert.Equal(t, "139.99", shoes[0]["Price"])
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	out, err := runCommand(t, "export", "--format", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestCatalogCommands(t *testing.T) {
	out, err := runCommand(t, "catalog", "show", "923e0c42-c180-4fc0-9796-bcd4902ffdfe")
	require.NoError(t, err)
	assert.Contains(t, out, "New Balance RC3")
	assert.Contains(t, out, "£109.99")

	_, err = runCommand(t, "catalog", "show", "nope")
	assert.Error(t, err)

	out, err = runCommand(t, "catalog", "list", "--brand", "Nike")
	require.NoError(t, err)
	assert.Contains(t, out, "Pegasus FlyEase By You")
	assert.NotContains(t, out, "RC3")

	out, err = runCommand(t, "catalog", "brands")
	require.NoError(t, err)
	assert.Contains(t, out, "New Balance\n")

	out, err = runCommand(t, "catalog", "top", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "PRICE")

	_, err = runCommand(t, "catalog", "top", "-n", "0")
	assert.Error(t, err)
}
