package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/projectbook/internal/config"
	"github.com/mmynk/projectbook/internal/storage/jsonfile"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "projectbook", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"exec", "repl", "export", "prefs"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	prefs := cmd.PersistentFlags().Lookup("prefs")
	require.NotNil(t, prefs)
	assert.Equal(t, "preferences.yaml", prefs.DefValue)

	for _, name := range []string{"data", "backend"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}
}

// run executes the root command with a fresh preferences path under dir.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--prefs", filepath.Join(dir, "preferences.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExec(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "book.json")

	out, err := run(t, dir, "", "--data", data, "exec", "add", "volunteer", "n/Alice", "Tan", "e/alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "New person added: Alice Tan")
	assert.Contains(t, out, "1. Alice Tan (Volunteer); Email: alice@example.com")

	out, err = run(t, dir, "", "--data", data, "exec", "project add project/Website Revamp")
	require.NoError(t, err)
	assert.Contains(t, out, "New project added: Website Revamp")

	out, err = run(t, dir, "", "--data", data, "exec", "project assign 1 project/Website Revamp")
	require.NoError(t, err)
	assert.Contains(t, out, "Assigned Alice Tan to Website Revamp")

	out, err = run(t, dir, "", "--data", data, "exec", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "   Projects: Website Revamp")

	out, err = run(t, dir, "", "--data", data, "exec", "project list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Website Revamp (1 member)")
}

func TestExecExitCodes(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "book.json")

	_, err := run(t, dir, "", "--data", data, "exec", "delete 3")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "person index")

	_, err = run(t, dir, "", "--data", data, "exec", "frobnicate")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	require.NoError(t, os.WriteFile(data, []byte("{not json"), 0o644))
	_, err = run(t, dir, "", "--data", data, "exec", "list")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, dir, "", "--data", data, "--backend", "csv", "exec", "list")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExecHelp(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "", "--data", filepath.Join(dir, "book.json"), "exec", "help")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing help.")
	assert.Contains(t, out, "project assign INDEX|NAME project/PROJECT")
}

func TestRepl(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "book.json")
	input := strings.Join([]string{
		"add member n/Bob Lee e/bob@example.com c/Events",
		"",
		"edit 5 n/Nobody",
		"remark 1 r/call back",
		"exit",
		"add volunteer n/Never e/never@example.com",
	}, "\n")

	out, err := run(t, dir, input, "--data", data, "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "New person added: Bob Lee")
	assert.Contains(t, out, "Added remark to Bob Lee: call back")
	assert.Contains(t, out, "   1. [ ] call back")
	assert.NotContains(t, out, "Never")

	snap, err := jsonfile.New(data).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Persons, 1)
	assert.Equal(t, "Bob Lee", snap.Persons[0].Name)
}

func TestReplEndOfInput(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "list\n", "--data", filepath.Join(dir, "book.json"), "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Listed all persons")
}

func TestExportSQLiteToJSON(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "book.db")

	_, err := run(t, dir, "", "--backend", "sqlite", "--data", db, "exec", "add orgmember n/Carol Ng e/carol@example.com o/Acme")
	require.NoError(t, err)

	out, err := run(t, dir, "", "--backend", "sqlite", "--data", db, "export")
	require.NoError(t, err)
	snap, err := jsonfile.Decode([]byte(out))
	require.NoError(t, err)
	require.Len(t, snap.Persons, 1)
	assert.Equal(t, "orgmember", snap.Persons[0].Role)

	target := filepath.Join(dir, "export.json")
	_, err = run(t, dir, "", "--backend", "sqlite", "--data", db, "export", "-o", target)
	require.NoError(t, err)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))
}

func TestPrefs(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "preferences.yaml")

	out, err := run(t, dir, "", "--data", "elsewhere.db", "--backend", "sqlite", "prefs", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Preferences saved")

	prefs, err := config.Load(prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.db", prefs.DataFile)
	assert.Equal(t, config.BackendSQLite, prefs.Backend)

	out, err = run(t, dir, "", "prefs")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: sqlite")
}

func TestResolvePrefsOrder(t *testing.T) {
	env := map[string]string{
		config.EnvDataFile: "env.json",
		config.EnvLogLevel: "debug",
	}
	opts := &RootOptions{PrefsPath: filepath.Join(t.TempDir(), "missing.yaml")}

	prefs, err := resolvePrefs(opts, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "env.json", prefs.DataFile)
	assert.Equal(t, "debug", prefs.LogLevel)

	opts.DataFile = "flag.json"
	prefs, err = resolvePrefs(opts, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "flag.json", prefs.DataFile)
}
