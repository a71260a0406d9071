package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// setupConfigDir returns an empty config directory and clears HERODEX_*
// overrides for the test.
func setupConfigDir(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"HERODEX_CONFIG_DIR", "HERODEX_BACKEND", "HERODEX_LATENCY", "HERODEX_PAGE_SIZE", "HERODEX_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "herodex")
}

// run executes the CLI with a short latency against dir.
func run(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	root := NewRootCmd()
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config-dir", dir, "--latency", "1ms"}, args...))
	err := root.Execute()
	return result{stdout: out.String(), stderr: errb.String(), err: err}
}

func TestVersion(t *testing.T) {
	dir := setupConfigDir(t)
	r := run(t, dir, "", "version")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "herodex v"+Version)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "version does not touch the config dir")
}

func TestInit(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "init")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Wrote ")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, configFile{Backend: "memory", Latency: "1s", PageSize: 5, LogLevel: "info"}, cfg)

	r = run(t, dir, "", "init")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "already present")
}

func TestFirstRunWritesConfig(t *testing.T) {
	dir := setupConfigDir(t)
	require.NoError(t, run(t, dir, "", "list").err)

	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "SUPERMAN")
	assert.NotContains(t, r.stdout, "FLASH")
	assert.Contains(t, r.stdout, "Page 1 of 2, 9 hero(es)")

	r = run(t, dir, "", "list", "--page", "2")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "FLASH")
	assert.Contains(t, r.stdout, "CAPITAN AMERICA")

	r = run(t, dir, "", "list", "--page", "0")
	assert.ErrorIs(t, r.err, errInvalidPage)
}

func TestListJSON(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "--json", "list", "--page", "2")
	require.NoError(t, r.err)

	var out pageOutput
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &out))
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 2, out.Pages)
	assert.Equal(t, 9, out.Total)
	require.Len(t, out.Heroes, 4)
	assert.Equal(t, 6, out.Heroes[0].ID)
}

func TestListPageSizeFromConfig(t *testing.T) {
	dir := setupConfigDir(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("page_size: 3\n"), 0o644))

	r := run(t, dir, "", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Page 1 of 3, 9 hero(es)")

	t.Setenv("HERODEX_PAGE_SIZE", "9")
	r = run(t, dir, "", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Page 1 of 1, 9 hero(es)")
}

func TestSearch(t *testing.T) {
	dir := setupConfigDir(t)

	tests := []struct {
		name      string
		args      []string
		wantNames []string
	}{
		{name: "substring", args: []string{"man"}, wantNames: []string{"SUPERMAN", "BATMAN", "WONDER WOMAN", "SPIDERMAN", "IRON MAN", "AQUAMAN"}},
		{name: "case and spaces", args: []string{"  FlAsH  "}, wantNames: []string{"FLASH"}},
		{name: "store search keeps inner spaces", args: []string{"spider man"}, wantNames: []string{}},
		{name: "compact", args: []string{"--compact", "spider man"}, wantNames: []string{"SPIDERMAN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, dir, "", append([]string{"--json", "search"}, tt.args...)...)
			require.NoError(t, r.err)

			var out searchOutput
			require.NoError(t, json.Unmarshal([]byte(r.stdout), &out))
			names := []string{}
			for _, h := range out.Heroes {
				names = append(names, h.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestSearchSuggestion(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "search", "supermna")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "No heroes found.")
	assert.Contains(t, r.stdout, "Did you mean SUPERMAN?")
}

func TestGet(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "get", "1")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Name:        SUPERMAN")

	r = run(t, dir, "", "--json", "get", "6")
	require.NoError(t, r.err)
	var h types.Hero
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &h))
	assert.Equal(t, "FLASH", h.Name)

	r = run(t, dir, "", "get", "99")
	assert.ErrorIs(t, r.err, types.ErrNotFound)
	assert.Equal(t, exitUserError, exitCode(r.err))

	r = run(t, dir, "", "get", "abc")
	assert.ErrorIs(t, r.err, types.ErrInvalidID)
}

func TestAdd(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "--json", "add", "--name", "she hulk", "--power", "Fuerza", "--description", "Abogada")
	require.NoError(t, r.err)
	var h types.Hero
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &h))
	assert.Equal(t, types.Hero{ID: 10, Name: "SHE HULK", Power: "Fuerza", Description: "Abogada"}, h)

	r = run(t, dir, "", "add", "--name", "x", "--description", "y")
	assert.ErrorIs(t, r.err, types.ErrInvalidData)
	assert.ErrorContains(t, r.err, "El poder es requerido")
}

func TestUpdate(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "update", "1", "--name", "super man")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Name:        SUPER MAN")
	assert.Contains(t, r.stdout, "Power:       Superfuerza", "fields without a flag are kept")
	assert.Contains(t, r.stderr, "Updating hero 1 (loading: true)")
	assert.Contains(t, r.stderr, "Updated hero 1 (loading: false)")

	r = run(t, dir, "", "update", "99", "--name", "ghost")
	assert.ErrorIs(t, r.err, types.ErrNotFound)

	r = run(t, dir, "", "update", "1", "--name", "  ")
	assert.ErrorIs(t, r.err, types.ErrInvalidData)
}

func TestDelete(t *testing.T) {
	dir := setupConfigDir(t)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantOut string
	}{
		{name: "with --yes", args: []string{"delete", "2", "--yes"}, wantOut: "Deleted hero 2: BATMAN (8 remaining)"},
		{name: "confirmed on stdin", stdin: "s\n", args: []string{"delete", "2"}, wantOut: "Deleted hero 2: BATMAN"},
		{name: "declined on stdin", stdin: "n\n", args: []string{"delete", "2"}, wantOut: "Cancelled."},
		{name: "no answer", args: []string{"delete", "2"}, wantOut: "Cancelled."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, dir, tt.stdin, tt.args...)
			require.NoError(t, r.err)
			assert.Contains(t, r.stdout, tt.wantOut)
		})
	}

	r := run(t, dir, "", "delete", "2")
	assert.Contains(t, r.stderr, "¿Está seguro de que desea eliminar a BATMAN?")

	r = run(t, dir, "", "--json", "delete", "3", "-y")
	require.NoError(t, r.err)
	var out deleteOutput
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &out))
	assert.Equal(t, deleteOutput{Deleted: 3, Status: "success"}, out)
}

func TestSQLiteBackend(t *testing.T) {
	dir := setupConfigDir(t)

	r := run(t, dir, "", "--backend", "sqlite", "search", "man")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "AQUAMAN")

	r = run(t, dir, "", "--backend", "sqlite", "delete", "1", "--yes")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "(8 remaining)")
}

func TestInvalidConfig(t *testing.T) {
	dir := setupConfigDir(t)
	t.Setenv("HERODEX_BACKEND", "postgres")

	r := run(t, dir, "", "list")
	assert.ErrorIs(t, r.err, errConfig)
	assert.ErrorIs(t, r.err, types.ErrBackendUnknown)
	assert.Equal(t, exitSysError, exitCode(r.err))
}

func TestConfigPrecedence(t *testing.T) {
	dir := setupConfigDir(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	file := "backend: sqlite\nlatency: 250ms\npage_size: 3\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0o644))

	t.Setenv("HERODEX_PAGE_SIZE", "7")
	t.Setenv("HERODEX_LATENCY", "2s")

	root := NewRootCmd()
	require.NoError(t, root.PersistentFlags().Set("latency", "5ms"))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	require.NoError(t, bindFlags(v, root))
	cfg, err := decodeConfig(v)
	require.NoError(t, err)

	assert.Equal(t, types.Config{
		Backend:  "sqlite",             // file, flag not set
		Latency:  5 * time.Millisecond, // flag beats env and file
		PageSize: 7,                    // env beats file
		LogLevel: "debug",              // file beats default
	}, cfg)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(types.ErrNotFound))
	assert.Equal(t, exitSysError, exitCode(types.ErrOperationFailed))
	assert.Equal(t, exitSysError, exitCode(errors.Join(errConfig, errors.New("bad"))))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
