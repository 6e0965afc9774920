package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DEAL_ATLAS_LOG_LEVEL.
const EnvPrefix = "DEAL_ATLAS"

const (
	KeyLogLevel    = "log_level"
	KeySummary     = "summary"
	KeyCategories  = "categories"
	KeyDiscountMin = "discount.min"
	KeyDiscountMax = "discount.max"
)

// Settings configure deal generation across commands.
type Settings struct {
	LogLevel   string                    `mapstructure:"log_level"`
	Summary    bool                      `mapstructure:"summary"`
	Categories []domain.CategoryKeywords `mapstructure:"categories"`
	Discount   DiscountRange             `mapstructure:"discount"`
}

// DiscountRange bounds the random discount, in percent.
type DiscountRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// LoadSettings reads the optional config file at path, then applies environment
// overrides and finally any flags in flagNames that were set on the command line.
// flagNames maps setting keys to flag names.
func LoadSettings(path string, flags *pflag.FlagSet, flagNames map[string]string) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySummary, false)
	v.SetDefault(KeyDiscountMin, 10.0)
	v.SetDefault(KeyDiscountMax, 40.0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagNames {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}
