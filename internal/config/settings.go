// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings — параметры приложения, не влияющие на баланс игры.
// Загружаются из settings.json; файл опционален.
type Settings struct {
	Seed        int64   `json:"seed" mapstructure:"seed"`
	LogLevel    string  `json:"logLevel" mapstructure:"logLevel"`
	WindowScale float64 `json:"windowScale" mapstructure:"windowScale"`
	PprofAddr   string  `json:"pprofAddr" mapstructure:"pprofAddr"`
}

// LoadSettings читает settings.json из configDir поверх значений по умолчанию.
// Отсутствие файла не является ошибкой.
func LoadSettings(configDir string) (*Settings, error) {
	viper.SetDefault("seed", 0)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("windowScale", 1.0)
	viper.SetDefault("pprofAddr", "localhost:6060")

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	s := &Settings{}
	if err := viper.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error unmarshalling settings: %w", err)
	}
	return s, nil
}
