package domain

// Config represents the Yahtzee configuration loaded from yahtzee.yaml.
type Config struct {
	Paths      PathsConfig
	Rules      RulesConfig
	Bot        BotConfig
	HighScores HighScoresConfig
	UI         UIConfig
}

type PathsConfig struct {
	SavesDir       string
	HighScoresFile string
	ArchiveDB      string
}

type RulesConfig struct {
	LegacyBonus  bool
	MaxSaveSlots int
}

type BotConfig struct {
	Name string
}

// HighScoresConfig selects the leaderboard backend ("file" or "redis").
type HighScoresConfig struct {
	Backend   string
	RedisAddr string
	RedisKey  string
}

type UIConfig struct {
	RollDelayMS int
}

const (
	HighScoresFile  = "file"
	HighScoresRedis = "redis"
)

// DefaultConfig provides sane defaults if yahtzee.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			SavesDir:       "savedGames",
			HighScoresFile: "highscores/scores.txt",
			ArchiveDB:      ".yahtzee/archive.db",
		},
		Rules: RulesConfig{
			LegacyBonus:  false,
			MaxSaveSlots: 3,
		},
		Bot: BotConfig{Name: "Computer"},
		HighScores: HighScoresConfig{
			Backend:  HighScoresFile,
			RedisKey: "yahtzee:highscores",
		},
		UI: UIConfig{RollDelayMS: 400},
	}
}

// GameRules maps the config onto scoring rules.
func (c Config) GameRules() Rules {
	r := DefaultRules()
	r.LegacyBonus = c.Rules.LegacyBonus
	return r
}

// WorkspaceSpec describes where a workspace is initialized.
type WorkspaceSpec struct {
	Root   string
	Config Config
}

// InitReport lists what a workspace init wrote, relative to Root.
type InitReport struct {
	Root    string
	Created []string
	Skipped []string
}
