package bootstrap

import (
	"github.com/spf13/viper"
)

// Config holds the presentation-layer settings. The record core never
// reads these; they are caller policy only.
type Config struct {
	ReviewMode       bool `mapstructure:"REVIEW_MODE"`
	ShowWinHint      bool `mapstructure:"SHOW_WIN_HINT"`
	LockStone        bool `mapstructure:"LOCK_STONE"`
	ConfirmOverwrite bool `mapstructure:"CONFIRM_OVERWRITE"`
}

// Default returns the configuration used when no env file is present.
func Default() *Config {
	return &Config{
		ShowWinHint:      true,
		ConfirmOverwrite: true,
	}
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := Default()

	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
