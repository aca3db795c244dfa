package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/nadza/Yahtzee/internal/domain"
)

// EnvOverrides are the YAHTZEE_* variables. Unset variables stay nil.
type EnvOverrides struct {
	SavesDir          *string `env:"YAHTZEE_SAVES_DIR"`
	HighScoresFile    *string `env:"YAHTZEE_HIGHSCORES_FILE"`
	ArchiveDB         *string `env:"YAHTZEE_ARCHIVE_DB"`
	LegacyBonus       *bool   `env:"YAHTZEE_LEGACY_BONUS"`
	MaxSaveSlots      *int    `env:"YAHTZEE_MAX_SAVE_SLOTS"`
	BotName           *string `env:"YAHTZEE_BOT_NAME"`
	HighScoresBackend *string `env:"YAHTZEE_HIGHSCORES_BACKEND"`
	RedisAddr         *string `env:"YAHTZEE_REDIS_ADDR"`
	RedisKey          *string `env:"YAHTZEE_REDIS_KEY"`
	RollDelayMS       *int    `env:"YAHTZEE_ROLL_DELAY_MS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays YAHTZEE_* variables on cfg.
func ApplyEnv(cfg domain.Config) (domain.Config, error) {
	var o EnvOverrides
	if err := ParseEnv(&o); err != nil {
		return cfg, &domain.OpError{Op: "config.env", Kind: domain.KindInvalidConfig, Err: err}
	}

	setString(&cfg.Paths.SavesDir, o.SavesDir)
	setString(&cfg.Paths.HighScoresFile, o.HighScoresFile)
	setString(&cfg.Paths.ArchiveDB, o.ArchiveDB)
	if o.LegacyBonus != nil {
		cfg.Rules.LegacyBonus = *o.LegacyBonus
	}
	if o.MaxSaveSlots != nil {
		cfg.Rules.MaxSaveSlots = *o.MaxSaveSlots
	}
	setString(&cfg.Bot.Name, o.BotName)
	setString(&cfg.HighScores.Backend, o.HighScoresBackend)
	setString(&cfg.HighScores.RedisAddr, o.RedisAddr)
	setString(&cfg.HighScores.RedisKey, o.RedisKey)
	if o.RollDelayMS != nil {
		cfg.UI.RollDelayMS = *o.RollDelayMS
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
