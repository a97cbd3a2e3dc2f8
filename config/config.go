package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Log     Log     `json:"log" yaml:"log" mapstructure:"log"`
	Guess   Guess   `json:"guess" yaml:"guess" mapstructure:"guess"`
	Library Library `json:"library" yaml:"library" mapstructure:"library"`
	Scan    Scan    `json:"scan" yaml:"scan" mapstructure:"scan"`
	Index   Index   `json:"index" yaml:"index" mapstructure:"index"`
}

type Log struct {
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

type Guess struct {
	FileType string   `json:"fileType" yaml:"fileType" mapstructure:"fileType" validate:"omitempty,oneof=autodetect movie episode moviesubtitle episodesubtitle"`
	Facts    []string `json:"facts" yaml:"facts" mapstructure:"facts"`
}

type Library struct {
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

type Scan struct {
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency" validate:"gte=0"`
}

// Index configuration is assumed to be for sqlite database only currently
type Index struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

var validate = validator.New()

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks for values the rest of the application would reject at runtime.
func (c Config) Validate() error {
	return validate.Struct(c)
}
