// Package config loads and validates the server configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Usage  UsageConfig  `mapstructure:"usage"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`

	// RateLimitEvery makes every Nth translate request fail with a 429
	// so clients can exercise their retry paths. Zero disables it.
	RateLimitEvery int `mapstructure:"rate_limit_every" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type UsageConfig struct {
	FreeCharacterLimit int64 `mapstructure:"free_character_limit" validate:"gt=0"`
	ProCharacterLimit  int64 `mapstructure:"pro_character_limit" validate:"gt=0"`
	ProCountMultiplier int64 `mapstructure:"pro_count_multiplier" validate:"gt=0"`
}

type SeedConfig struct {
	TranslationsFile string `mapstructure:"translations_file" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/deeplmock")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.rate_limit_every", 0)
	v.SetDefault("usage.free_character_limit", 500_000)
	v.SetDefault("usage.pro_character_limit", 1_000_000_000_000)
	v.SetDefault("usage.pro_count_multiplier", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (loader *ConfigLoader) validate(cfg *Config) error {
	err := loader.validator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(loader.translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}
