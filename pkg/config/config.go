package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/storagebrowser/storage/pkg/filetype"
)

type Config struct {
	ExcludePatterns []string      `koanf:"exclude_patterns"`
	PageSize        int           `koanf:"page_size" validate:"min=1,max=1000"`
	PreviewTypes    []string      `koanf:"preview_types" validate:"dive,oneof=image video audio text"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"min=0"`
	RootDirectory   string        `koanf:"root_directory" validate:"required"`
	ServerHost      string        `koanf:"server_host"`
	ServerPort      int           `koanf:"server_port" validate:"min=0,max=65535"`
}

const (
	environmentENV    = "ENVIRONMENT"
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "/config/storage.yaml"
)

var validate = validator.New()

var listKeys = map[string]struct{}{
	"exclude_patterns": {},
	"preview_types":    {},
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// New builds the config from defaults, then the YAML config file (if there is
// one), then environment variables. Later sources win.
func New() (*Config, error) {
	cfg := defaults()

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = defaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	// Environment variables use the upper-cased key, e.g. SERVER_PORT. List
	// keys take comma-separated values.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(key)
		if _, ok := listKeys[key]; ok {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.WithStack(err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests without touching the
// environment.
func NewForTest() *Config {
	cfg := defaults()
	loadTestConfig(cfg)
	cfg.applyDefaults()
	return cfg
}

func defaults() *Config {
	return &Config{
		PageSize:       50,
		RequestTimeout: 30 * time.Second,
		RootDirectory:  "/",
		ServerHost:     "0.0.0.0",
		ServerPort:     3689,
	}
}

// applyDefaults fills in list values after unmarshalling, since list values
// from a source replace the default instead of merging into it.
func (cfg *Config) applyDefaults() {
	if cfg.PreviewTypes == nil {
		cfg.PreviewTypes = append([]string(nil), filetype.DefaultCategoryNames...)
	}
}

// Validate checks every field and reports all problems at once.
func (cfg *Config) Validate() error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}
		for _, fe := range errs {
			problems = append(problems, formatProblem(fe))
		}
	}

	if cfg.RootDirectory != "" {
		if !filepath.IsAbs(cfg.RootDirectory) {
			problems = append(problems, "root_directory must be an absolute path")
		} else if info, err := os.Stat(cfg.RootDirectory); err != nil || !info.IsDir() {
			problems = append(problems, "root_directory must be an existing directory")
		}
	}

	for _, pattern := range cfg.ExcludePatterns {
		if !doublestar.ValidatePattern(pattern) {
			problems = append(problems, "exclude_patterns contains an invalid pattern: "+pattern)
		}
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func formatProblem(fe validator.FieldError) string {
	key := toSnakeCase(fe.StructField())
	if fe.Param() == "" {
		return key + " failed " + fe.Tag() + " (" + strings.ToUpper(key) + ")"
	}
	return key + " failed " + fe.Tag() + "=" + fe.Param() + " (" + strings.ToUpper(key) + ")"
}

func toSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
