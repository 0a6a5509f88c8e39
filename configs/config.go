package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
	File   string `mapstructure:"file"`
}

type SetsConfig struct {
	Strict bool `mapstructure:"strict"`
}

type HistoryConfig struct {
	Size int `mapstructure:"size"`
}

type RenderConfig struct {
	Color bool `mapstructure:"color"`
}

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Sets    SetsConfig    `mapstructure:"sets"`
	History HistoryConfig `mapstructure:"history"`
	Render  RenderConfig  `mapstructure:"render"`
}

var Cfg Config

func setDefaults() {
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.pretty", false)
	viper.SetDefault("log.file", "")
	viper.SetDefault("sets.strict", false)
	viper.SetDefault("history.size", 100)
	viper.SetDefault("render.color", true)
}

// LoadConfig reads cfgFile, or ./configs/config.yml when it is empty.
// A missing default config file is not an error.
func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "error reading config file %s", cfgFile)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return errors.Wrap(err, "error reading config file")
			}
		}
	}

	// sets e.g. INTSET_SETS_STRICT to sets.strict
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.SetEnvPrefix("intset")
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&Cfg); err != nil {
		return errors.Wrap(err, "error unmarshalling config")
	}

	return nil
}
