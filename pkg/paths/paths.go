// Package paths resolves where emailnotify reads its configuration and
// template files from. Everything is decided once at startup and passed
// down explicitly.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/emailnotify/pkg/errors"
)

// Environment variable names
const (
	// EnvConfig names the configuration file directly
	EnvConfig = "EMAILNOTIFY_CONFIG"

	// EnvConfigDir overrides the XDG config directory for emailnotify
	EnvConfigDir = "EMAILNOTIFY_CONFIG_DIR"
)

const (
	// AppDirName is the directory name under XDG base directories
	AppDirName = "emailnotify"

	// LegacyConfigFile is the file name the original tool read from the
	// working directory
	LegacyConfigFile = "config.dat"
)

// ConfigFileNames are tried in order inside the config directory.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml", "config.json"}

// Paths holds the resolved configuration file and its directory.
type Paths struct {
	configFile  string
	usedDefault bool
}

// New resolves the configuration file. Priority:
//  1. explicit path (the --config flag)
//  2. EMAILNOTIFY_CONFIG
//  3. the first existing ConfigFileNames entry in EMAILNOTIFY_CONFIG_DIR
//     or $XDG_CONFIG_HOME/emailnotify
//  4. config.dat in the working directory
//
// When nothing exists the XDG config.toml path is returned with
// UsedDefault set, so callers can report where the file was expected.
func New(explicit string) (*Paths, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}
	if explicit != "" {
		abs, err := absolute(explicit)
		if err != nil {
			return nil, err
		}
		return &Paths{configFile: abs}, nil
	}

	dir := ConfigDir()
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return &Paths{configFile: candidate}, nil
		}
	}

	if fileExists(LegacyConfigFile) {
		abs, err := absolute(LegacyConfigFile)
		if err != nil {
			return nil, err
		}
		return &Paths{configFile: abs}, nil
	}

	return &Paths{configFile: filepath.Join(dir, ConfigFileNames[0]), usedDefault: true}, nil
}

// ConfigDir is EMAILNOTIFY_CONFIG_DIR or $XDG_CONFIG_HOME/emailnotify.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile is the resolved configuration file path.
func (p *Paths) ConfigFile() string { return p.configFile }

// ConfigFileDir is the directory containing the configuration file.
func (p *Paths) ConfigFileDir() string { return filepath.Dir(p.configFile) }

// UsedDefault reports that no configuration file was found and the path
// is only where one is expected.
func (p *Paths) UsedDefault() bool { return p.usedDefault }

// TemplateDir resolves the base directory for template body files.
// Relative values are taken from the configuration file's directory.
func (p *Paths) TemplateDir(configured string) string {
	if configured == "" {
		return p.ConfigFileDir()
	}
	configured = expandHome(configured)
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(p.ConfigFileDir(), configured)
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
