// Package config loads runtime settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/openpurse/go-openpurse/internal/common"
)

type (
	Config struct {
		App        App        `mapstructure:"app"`
		Postgres   Postgres   `mapstructure:"postgres"`
		SchemaDir  string     `mapstructure:"schema_dir" validate:"required"`
		Anonymizer Anonymizer `mapstructure:"anonymizer"`
	}

	App struct {
		Name     string `mapstructure:"name" validate:"required"`
		Env      string `mapstructure:"env" validate:"oneof=local dev uat prod"`
		LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	}

	Postgres struct {
		Write Database `mapstructure:"write"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		Host    string `mapstructure:"db_host"`
		Port    string `mapstructure:"db_port"`
		User    string `mapstructure:"db_user"`
		Pass    string `mapstructure:"db_pass"`
		Name    string `mapstructure:"db_name"`
		SSLMode string `mapstructure:"ssl_mode"`
	}

	Anonymizer struct {
		Salt string `mapstructure:"salt"`
	}
)

// DSN renders the lib/pq connection string. An unset host yields "",
// signalling that persistence is not configured.
func (d Database) DSN() string {
	if d.Host == "" {
		return ""
	}
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Pass, d.Name, sslMode)
}

var validate = validator.New()

// Load reads settings from an optional config file, overlaying OPENPURSE_*
// environment variables, and validates the result. An empty path loads
// defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OPENPURSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "openpurse")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("schema_dir", "schemas")
	v.SetDefault("anonymizer.salt", "openpurse-default-salt")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %v", common.ErrConfigInvalid, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", common.ErrConfigInvalid, err)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	errs := multierror.Append(nil, common.ErrConfigInvalid)
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, fmt.Errorf("field %s failed %q", valErr.Namespace(), valErr.Tag()))
		}
	} else {
		errs = multierror.Append(errs, err)
	}

	return errs.ErrorOrNil()
}
