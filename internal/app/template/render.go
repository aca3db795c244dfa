package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
)

// Render replaces {{KEY}} placeholders in a workspace template. Every
// placeholder must have a value in vars.
func Render(name, input string, vars map[string]string) (string, error) {
	const op = "template.render"
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(input))
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: name,
				Err: fmt.Errorf("unclosed placeholder: %w", domain.ErrInvalidConfig)}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: name,
				Err: fmt.Errorf("empty placeholder: %w", domain.ErrInvalidConfig)}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: name,
				Err: fmt.Errorf("no value for %q (known: %s): %w", key, knownKeys(vars), domain.ErrInvalidConfig)}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// ConfigVars exposes cfg under the placeholder names used by the workspace
// templates.
func ConfigVars(cfg domain.Config) map[string]string {
	return map[string]string{
		"SAVES_DIR":          cfg.Paths.SavesDir,
		"HIGHSCORES_FILE":    cfg.Paths.HighScoresFile,
		"ARCHIVE_DB":         cfg.Paths.ArchiveDB,
		"LEGACY_BONUS":       fmt.Sprintf("%t", cfg.Rules.LegacyBonus),
		"MAX_SAVE_SLOTS":     fmt.Sprintf("%d", cfg.Rules.MaxSaveSlots),
		"BOT_NAME":           cfg.Bot.Name,
		"HIGHSCORES_BACKEND": cfg.HighScores.Backend,
		"REDIS_ADDR":         cfg.HighScores.RedisAddr,
		"REDIS_KEY":          cfg.HighScores.RedisKey,
		"ROLL_DELAY_MS":      fmt.Sprintf("%d", cfg.UI.RollDelayMS),
	}
}

func knownKeys(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
