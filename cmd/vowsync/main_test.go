package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCLI runs commands against one temporary database and config file.
type testCLI struct {
	t      *testing.T
	dbPath string
	config string
	stdin  string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("display:\n  timezone: UTC\nlogging:\n  level: warn\n"), 0o600))

	return &testCLI{
		t:      t,
		dbPath: filepath.Join(dir, "vowsync.db"),
		config: config,
	}
}

func (c *testCLI) run(args ...string) (string, error) {
	c.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(c.stdin))
	cmd.SetArgs(append([]string{"--db", c.dbPath, "--config", c.config}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func (c *testCLI) mustRun(args ...string) string {
	c.t.Helper()

	out, err := c.run(args...)
	require.NoError(c.t, err, "vowsync %s", strings.Join(args, " "))
	return out
}

// store opens the database directly for assertions.
func (c *testCLI) store() *storage.SQLiteStorage {
	c.t.Helper()

	s, err := storage.NewSQLiteStorage(c.dbPath)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { _ = s.Close() })
	return s
}

func (c *testCLI) wedding() model.Wedding {
	c.t.Helper()

	weddings, err := c.store().ListWeddings(context.Background())
	require.NoError(c.t, err)
	require.NotEmpty(c.t, weddings)
	return weddings[0]
}

func containsInOrder(s string, parts ...string) bool {
	for _, p := range parts {
		i := strings.Index(s, p)
		if i < 0 {
			return false
		}
		s = s[i+len(p):]
	}
	return true
}

func TestVersion(t *testing.T) {
	out := newTestCLI(t).mustRun("version")
	assert.Equal(t, "vowsync dev\n", out)
}

func TestInvalidLogFormat(t *testing.T) {
	_, err := newTestCLI(t).run("--log-format", "xml", "version")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestMissingConfigFile(t *testing.T) {
	c := newTestCLI(t)
	c.config = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := c.run("version")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.Contains(t, common.UserMessage(err), "nope.yaml")
}

func TestWeddingCommands(t *testing.T) {
	c := newTestCLI(t)

	out := c.mustRun("wedding", "create", "Sam & Alex", "--date", "2030-06-01", "--budget", "30000", "--currency", "eur")
	assert.Contains(t, out, "Created Sam & Alex")

	w := c.wedding()
	assert.Equal(t, "EUR", w.Currency)
	assert.InDelta(t, 30000, w.Budget, 0.001)

	out = c.mustRun("wedding", "list")
	assert.Contains(t, out, "Sam & Alex")
	assert.Contains(t, out, "2030-06-01")
	assert.Contains(t, out, "€30,000.00")

	c.mustRun("vendors", "add", "Harbor View Catering")
	c.mustRun("payments", "add", "Harbor View Catering", "500", "--due", "2020-01-01", "--description", "Deposit")

	out = c.mustRun("wedding", "show")
	assert.Contains(t, out, "days to go")
	assert.Contains(t, out, "Guests: 0")
	assert.True(t, containsInOrder(out, "Needs attention:", "Overdue", "Deposit", "€500.00"))
}

func TestWeddingSelection(t *testing.T) {
	c := newTestCLI(t)

	_, err := c.run("events", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoWedding)
	assert.Contains(t, common.UserMessage(err), "wedding create")

	c.mustRun("wedding", "create", "First")
	c.mustRun("wedding", "create", "Second")

	_, err = c.run("events", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAmbiguousWedding)

	weddings, err := c.store().ListWeddings(context.Background())
	require.NoError(t, err)
	require.Len(t, weddings, 2)

	out := c.mustRun("--wedding", weddings[1].ID, "events", "add", "Brunch")
	assert.Contains(t, out, "Added event Brunch")

	_, err = c.run("--wedding", "missing", "events", "list")
	require.Error(t, err)
	assert.Contains(t, common.UserMessage(err), "wedding missing not found")
}

func TestEventsCommands(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("wedding", "create", "Sam & Alex")

	c.mustRun("events", "add", "Rehearsal Dinner", "--date", "2030-05-31")
	c.mustRun("events", "add", "Ceremony", "--venue", "Old Chapel")
	c.mustRun("events", "add", "Reception")

	out := c.mustRun("events", "list")
	assert.True(t, containsInOrder(out, "Rehearsal Dinner", "Ceremony", "Old Chapel", "Reception"))

	_, err := c.run("events", "add", "Bad", "--date", "31/05/2030")
	assert.Error(t, err)
}

func TestMigrateCommand(t *testing.T) {
	c := newTestCLI(t)

	out := c.mustRun("migrate", "--status")
	assert.Contains(t, out, "Schema version: 0")
	assert.Contains(t, out, "Run 'vowsync migrate'")

	out = c.mustRun("migrate")
	assert.Contains(t, out, "schema version")

	out = c.mustRun("migrate", "--status")
	assert.NotContains(t, out, "Run 'vowsync migrate'")
}

func TestMatchID(t *testing.T) {
	ids := []string{"a1b2c3d4-0000", "a1ffffff-0000", "b0000000-0000"}
	id := func(s string) string { return s }

	got, err := matchID(ids, id, "b0000000-0000")
	require.NoError(t, err)
	assert.Equal(t, "b0000000-0000", got)

	got, err = matchID(ids, id, "a1b2")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4-0000", got)

	_, err = matchID(ids, id, "a1")
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	_, err = matchID(ids, id, "zz")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", shortID("3f2a9c1e-7d4b-4c1a-9e2f-1b2c3d4e5f60"))
	assert.Equal(t, "plain", shortID("plain"))
}
