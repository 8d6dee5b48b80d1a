package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. Nested keys are separated by
// a double underscore: EMAILNOTIFY_TRANSPORT__SMTP__PASSWORD.
const EnvPrefix = "EMAILNOTIFY_"

// EnvConfigPath names the config file; it is not a config key.
const EnvConfigPath = EnvPrefix + "CONFIG"

// Load reads the configuration at path. Layers, later wins: built-in
// defaults, the file, a .env file next to it, EMAILNOTIFY_ variables.
// A missing file, a parse failure or a missing required section is fatal.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config file %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}

	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			logger.Warn().Err(err).Str("path", dotenv).Msg("Failed to read .env file")
		} else {
			logger.Debug().Str("path", dotenv).Msg("Loaded .env file")
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	cfg, err := fromKoanf(k)
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	logger.Info().
		Str("path", path).
		Int("templates", len(cfg.Templates)).
		Int("items", len(cfg.Items)).
		Int("users", len(cfg.Users)).
		Int("malformed", len(cfg.Malformed)).
		Msg("Configuration loaded")

	return cfg, nil
}

// envKey maps EMAILNOTIFY_TRANSPORT__SMTP__HOST to transport.smtp.host.
// Returning "" tells koanf to skip the variable.
func envKey(s string) string {
	if s == EnvConfigPath {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// parserFor picks a koanf parser by file extension. ".dat" is JSON, the
// format of the original config.dat files.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json", ".dat":
		return json.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// fromKoanf checks required sections and decodes every section.
func fromKoanf(k *koanf.Koanf) (*Config, error) {
	var missing []string
	for _, section := range RequiredSections {
		if !k.Exists(section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "missing required sections: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	cfg := &Config{}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	unmarshalConf.DecoderConfig.Result = &cfg.Transport
	if err := k.UnmarshalWithConf(SectionTransport, &cfg.Transport, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid transport section")
	}
	unmarshalConf.DecoderConfig.Result = &cfg.Options
	if err := k.UnmarshalWithConf(SectionOptions, &cfg.Options, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid options section")
	}

	var err error
	if cfg.Templates, err = decodeTemplates(k.Get(SectionTemplates), &cfg.Malformed); err != nil {
		return nil, err
	}
	if cfg.Items, err = decodeItems(k.Get(SectionItems), &cfg.Malformed); err != nil {
		return nil, err
	}
	if cfg.Users, err = decodeUsers(k.Get(SectionUsers), &cfg.Malformed); err != nil {
		return nil, err
	}

	return cfg, nil
}
