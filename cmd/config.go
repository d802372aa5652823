package cmd

import (
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix marks the environment variables read into Config. Nested keys
// are separated by a double underscore: STATION_LOG__LEVEL=debug.
const EnvPrefix = "STATION_"

type Config struct {
	DataDir          string  `koanf:"dataDir" validate:"required"`
	ShelfCapacity    int     `koanf:"shelfCapacity" validate:"gt=0"`
	WarningThreshold float64 `koanf:"warningThreshold" validate:"gt=0,lte=1"`
	UserIDStart      int     `koanf:"userIDStart" validate:"gte=1"`
	PackageIDStart   int     `koanf:"packageIDStart" validate:"gte=1"`

	Log    LogConfig    `koanf:"log"`
	Jobs   JobsConfig   `koanf:"jobs"`
	Labels LabelsConfig `koanf:"labels"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// JobsConfig schedules the background jobs. An empty schedule turns the
// job off.
type JobsConfig struct {
	Enabled           bool   `koanf:"enabled"`
	MembershipRefresh string `koanf:"membershipRefresh"`
	Autosave          string `koanf:"autosave"`
}

// LabelsConfig controls the QR pickup labels written next to the data.
type LabelsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Size    int    `koanf:"size" validate:"gte=64,lte=2048"`
	Level   string `koanf:"level" validate:"oneof=L M Q H"`
}

var defaults = map[string]any{
	"dataDir":                "data",
	"shelfCapacity":          50,
	"warningThreshold":       0.8,
	"userIDStart":            1000,
	"packageIDStart":         1,
	"log.level":              "warn",
	"log.pretty":             false,
	"jobs.enabled":           true,
	"jobs.membershipRefresh": "@daily",
	"jobs.autosave":          "@every 5m",
	"labels.enabled":         false,
	"labels.size":            256,
	"labels.level":           "M",
}

// LoadConfig reads, in increasing precedence: the defaults, the YAML file at
// configPath, the dotenv file at envPath and the STATION_ environment. Both
// files are optional; an empty path skips them.
func LoadConfig(configPath, envPath string) (Config, error) {
	k := koanf.New(".")
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return Config{}, errors.Wrapf(err, "set default %s", key)
		}
	}

	if configPath != "" && exists(configPath) {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", configPath)
		}
	}

	if envPath != "" && exists(envPath) {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, errors.Wrapf(err, "read env file %s", envPath)
		}
	}

	known := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKey(strings.TrimPrefix(key, EnvPrefix), known), value
		},
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, "load env variables")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// envKey maps DATA_DIR to dataDir and LOG__LEVEL to log.level by matching
// each segment against the keys already known, ignoring case and
// underscores. Unknown segments are kept lower case.
func envKey(raw string, known map[string]any) string {
	segments := strings.Split(raw, "__")
	out := make([]string, 0, len(segments))
	current := known

	for _, segment := range segments {
		needle := normalizeToken(segment)
		if needle == "" {
			continue
		}

		matched := ""
		var next map[string]any
		for key, value := range current {
			if normalizeToken(key) == needle {
				matched = key
				next, _ = value.(map[string]any)
				break
			}
		}
		if matched == "" {
			matched = needle
		}

		out = append(out, matched)
		current = next
	}

	return strings.Join(out, ".")
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
