package config

import (
	"fmt"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
)

// MapConfig applies the parsed file on top of base.
func MapConfig(base domain.Config, y YAMLConfig) domain.Config {
	cfg := base
	src := y.Yahtzee

	if v := strings.TrimSpace(src.Paths.SavesDir); v != "" {
		cfg.Paths.SavesDir = v
	}
	if v := strings.TrimSpace(src.Paths.HighScoresFile); v != "" {
		cfg.Paths.HighScoresFile = v
	}
	if v := strings.TrimSpace(src.Paths.ArchiveDB); v != "" {
		cfg.Paths.ArchiveDB = v
	}
	if src.Rules.LegacyBonus != nil {
		cfg.Rules.LegacyBonus = *src.Rules.LegacyBonus
	}
	if src.Rules.MaxSaveSlots != nil {
		cfg.Rules.MaxSaveSlots = *src.Rules.MaxSaveSlots
	}
	if v := strings.TrimSpace(src.Bot.Name); v != "" {
		cfg.Bot.Name = v
	}
	if v := strings.TrimSpace(src.HighScores.Backend); v != "" {
		cfg.HighScores.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.HighScores.RedisAddr); v != "" {
		cfg.HighScores.RedisAddr = v
	}
	if v := strings.TrimSpace(src.HighScores.RedisKey); v != "" {
		cfg.HighScores.RedisKey = v
	}
	if src.UI.RollDelayMS != nil {
		cfg.UI.RollDelayMS = *src.UI.RollDelayMS
	}
	return cfg
}

// Validate rejects values no component can work with.
func Validate(path string, cfg domain.Config) error {
	if strings.TrimSpace(cfg.Paths.SavesDir) == "" {
		return invalidField(path, "paths.saves_dir", "must not be empty")
	}
	if strings.TrimSpace(cfg.Paths.HighScoresFile) == "" {
		return invalidField(path, "paths.highscores_file", "must not be empty")
	}
	if cfg.Rules.MaxSaveSlots < 1 {
		return invalidField(path, "rules.max_save_slots", fmt.Sprintf("must be at least 1, got %d", cfg.Rules.MaxSaveSlots))
	}
	if strings.TrimSpace(cfg.Bot.Name) == "" {
		return invalidField(path, "bot.name", "must not be empty")
	}
	switch cfg.HighScores.Backend {
	case domain.HighScoresFile:
	case domain.HighScoresRedis:
		if strings.TrimSpace(cfg.HighScores.RedisAddr) == "" {
			return invalidField(path, "highscores.redis_addr", "required for the redis backend")
		}
	default:
		return invalidField(path, "highscores.backend", fmt.Sprintf("unknown backend %q (want file or redis)", cfg.HighScores.Backend))
	}
	if cfg.UI.RollDelayMS < 0 {
		return invalidField(path, "ui.roll_delay_ms", "must not be negative")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
