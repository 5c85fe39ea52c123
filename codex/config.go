package codex

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cardcodex/codex/codex/database"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig               `toml:"log"`
	Bot    BotConfig               `toml:"bot"`
	Mongo  database.MongoConfig    `toml:"mongo"`
	DB     database.PostgresConfig `toml:"db"`
	Spaces SpacesConfig            `toml:"spaces"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	// Admins may run the operator commands such as /reload.
	Admins []snowflake.ID `toml:"admins"`
	// BetaLock limits unofficial content to the donor allow-list.
	BetaLock bool `toml:"beta_lock"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	CardRoot string `toml:"cardroot"`
}
