package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvConfigDir, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	work := t.TempDir()
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	return home
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
}

func TestNew_ExplicitPath(t *testing.T) {
	isolate(t)

	p, err := New("my.toml")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(p.ConfigFile()))
	assert.Equal(t, "my.toml", filepath.Base(p.ConfigFile()))
	assert.False(t, p.UsedDefault())
}

func TestNew_EnvironmentPath(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, "/etc/emailnotify/alerts.yaml")

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "/etc/emailnotify/alerts.yaml", p.ConfigFile())
}

func TestNew_FlagBeatsEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, "/etc/emailnotify/alerts.yaml")

	p, err := New("/tmp/flag.toml")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/flag.toml", p.ConfigFile())
}

func TestNew_XDGSearch(t *testing.T) {
	home := isolate(t)
	yamlPath := filepath.Join(home, "config", "emailnotify", "config.yaml")
	touch(t, yamlPath)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, yamlPath, p.ConfigFile())
	assert.False(t, p.UsedDefault())
}

func TestNew_ConfigDirOverride(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	touch(t, filepath.Join(dir, "config.json"))

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.json"), p.ConfigFile())
}

func TestNew_LegacyFileInWorkingDirectory(t *testing.T) {
	isolate(t)
	touch(t, LegacyConfigFile)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, LegacyConfigFile, filepath.Base(p.ConfigFile()))
	assert.True(t, filepath.IsAbs(p.ConfigFile()))
}

func TestNew_DefaultWhenNothingExists(t *testing.T) {
	home := isolate(t)

	p, err := New("")
	require.NoError(t, err)

	assert.True(t, p.UsedDefault())
	assert.Equal(t, filepath.Join(home, "config", "emailnotify", "config.toml"), p.ConfigFile())
}

func TestTemplateDir(t *testing.T) {
	p := &Paths{configFile: "/etc/emailnotify/config.toml"}

	assert.Equal(t, "/etc/emailnotify", p.TemplateDir(""))
	assert.Equal(t, "/etc/emailnotify/templates", p.TemplateDir("templates"))
	assert.Equal(t, "/srv/templates", p.TemplateDir("/srv/templates/"))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "mail"), expandHome("~/mail"))
	assert.Equal(t, "relative/~", expandHome("relative/~"))
}
