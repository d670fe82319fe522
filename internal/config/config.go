// Package config provides layered configuration loading for the hkid tool.
// It merges Defaults -> INI file -> Environment Variables -> CLI overrides, with validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/hkid/internal/domain"
)

// Config holds the merged runtime configuration for the hkid tool.
// Order of precedence (lowest → highest): Defaults → INI file → Environment → CLI overrides.
type Config struct {
	Prefix    string     `koanf:"prefix" validate:"omitempty,hkid_prefix"` // default prefix for generate, e.g. "WX"
	MustExist bool       `koanf:"must_exist"`                              // require catalogued prefixes
	Lenient   bool       `koanf:"lenient"`                                 // accept an unbracketed check character
	Output    string     `koanf:"output" validate:"oneof=text json"`
	LogLevel  slog.Level `koanf:"log_level"`
	LogFormat string     `koanf:"log_format" validate:"oneof=text json"`
}

// DefaultAppConfig holds the lowest-precedence values.
var DefaultAppConfig = Config{
	MustExist: true,
	Output:    "text",
	LogLevel:  slog.LevelWarn,
	LogFormat: "text",
}

const (
	// EnvPrefix is stripped from environment variables, HKID_MUST_EXIST => must_exist.
	EnvPrefix = "HKID_"
	// EnvConfigFile names the INI file used when no explicit file is given.
	EnvConfigFile = "HKID_CONFIG"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

type options struct {
	file      string
	overrides map[string]any
}

// Option adjusts a single Load call.
type Option func(*options)

// WithFile loads the INI file at path between defaults and environment.
// An empty path falls back to $HKID_CONFIG.
func WithFile(path string) Option {
	return func(o *options) {
		if path != "" {
			o.file = path
		}
	}
}

// WithOverrides applies values above every other source, keyed like the
// koanf tags (e.g. "must_exist").
func WithOverrides(m map[string]any) Option {
	return func(o *options) { o.overrides = m }
}

// Loader hooks are package variables so tests can inject failures.
var (
	defaultLoader = func(k *koanf.Koanf) error {
		return k.Load(structs.Provider(DefaultAppConfig, "koanf"), nil)
	}
	fileLoader = func(k *koanf.Koanf, path string) error {
		return k.Load(INIProvider(path), nil)
	}
	envLoader = func(k *koanf.Koanf) error {
		return k.Load(env.Provider(".", env.Opt{Prefix: EnvPrefix, TransformFunc: envKey}), nil)
	}
	registerValidators = func(v *validator.Validate) error {
		v.RegisterTagNameFunc(koanfTagName)
		v.RegisterStructValidation(validateCatalogued, Config{})
		return v.RegisterValidation("hkid_prefix", validPrefix)
	}
)

// Load builds the Config from all sources and validates it.
func Load(opts ...Option) (*Config, error) {
	o := options{file: os.Getenv(EnvConfigFile)}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if o.file != "" {
		if err := fileLoader(k, o.file); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", o.file, err)
		}
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if len(o.overrides) > 0 {
		if err := k.Load(mapProvider(o.overrides), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				StringToLogLevel(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Prefix = strings.ToUpper(strings.TrimSpace(cfg.Prefix))
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidators(v); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	if err := v.Struct(cfg); err != nil {
		return nil, describe(err)
	}
	return &cfg, nil
}

// Grammar returns the parsing grammar selected by Lenient.
func (c *Config) Grammar() domain.Grammar {
	if c.Lenient {
		return domain.Lenient
	}
	return domain.Strict
}

func envKey(k, v string) (string, any) {
	return strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), v
}

func koanfTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validPrefix accepts one or two letters in either case.
func validPrefix(fl validator.FieldLevel) bool {
	_, err := domain.ParsePrefix(fl.Field().String())
	return err == nil
}

// validateCatalogued rejects a default prefix outside the catalog when
// must_exist is set, since every generate call would fail.
func validateCatalogued(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if !c.MustExist || c.Prefix == "" {
		return
	}
	p, err := domain.ParsePrefix(c.Prefix)
	if err != nil || p.Known() {
		return
	}
	sl.ReportError(c.Prefix, "prefix", "Prefix", "catalogued", "")
}

// describe turns validator errors into one readable message per field.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "hkid_prefix":
			msgs = append(msgs, fmt.Errorf("%s must be 1 or 2 letters", fe.Field()))
		case "catalogued":
			msgs = append(msgs, fmt.Errorf("%s %v is not catalogued while must_exist is set", fe.Field(), fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Errorf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Errorf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(msgs...))
}
