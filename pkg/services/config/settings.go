package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "SALES_ATLAS"

type ServerSettings struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// Settings is the runtime configuration shared by the CLI and web binaries
type Settings struct {
	RevenueFormula string         `mapstructure:"revenue_formula" validate:"required"`
	BonusFormula   string         `mapstructure:"bonus_formula" validate:"required"`
	LogLevel       string         `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	Output         string         `mapstructure:"output" validate:"oneof=table json"`
	ProfilesPath   string         `mapstructure:"profiles_path"`
	Server         ServerSettings `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("revenue_formula", "simple")
	v.SetDefault("bonus_formula", "profit_tiered")
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "table")
	v.SetDefault("profiles_path", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
}

// LoadSettings reads settings from an optional config file and SALES_ATLAS_* env vars.
// Env vars win over the file, e.g. SALES_ATLAS_SERVER_PORT=9000.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	err := validator.New().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("invalid settings: %w", err)
}
