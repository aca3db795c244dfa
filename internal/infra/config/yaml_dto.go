package config

// YAMLConfig mirrors yahtzee.yaml. Pointer fields distinguish "absent" from
// an explicit zero so defaults only fill what the file leaves out.
type YAMLConfig struct {
	Yahtzee struct {
		Paths      YAMLPaths      `yaml:"paths"`
		Rules      YAMLRules      `yaml:"rules"`
		Bot        YAMLBot        `yaml:"bot"`
		HighScores YAMLHighScores `yaml:"highscores"`
		UI         YAMLUI         `yaml:"ui"`
	} `yaml:"yahtzee"`
}

type YAMLPaths struct {
	SavesDir       string `yaml:"saves_dir"`
	HighScoresFile string `yaml:"highscores_file"`
	ArchiveDB      string `yaml:"archive_db"`
}

type YAMLRules struct {
	LegacyBonus  *bool `yaml:"legacy_bonus"`
	MaxSaveSlots *int  `yaml:"max_save_slots"`
}

type YAMLBot struct {
	Name string `yaml:"name"`
}

type YAMLHighScores struct {
	Backend   string `yaml:"backend"`
	RedisAddr string `yaml:"redis_addr"`
	RedisKey  string `yaml:"redis_key"`
}

type YAMLUI struct {
	RollDelayMS *int `yaml:"roll_delay_ms"`
}
