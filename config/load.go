package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. PEDANTLE_CORPUS_FORMAT.
const EnvPrefix = "PEDANTLE"

// Load reads settings from the optional file at path, a .env file in the working
// directory and PEDANTLE_* environment variables, in increasing priority.
// Defaults are applied and the result is validated.
func Load(path string) (*Settings, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env file")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)
	v.SetDefault("threshold", DefaultThreshold)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Debug().Str("path", v.ConfigFileUsed()).Msg("loaded config file")
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	s.ApplyDefaults()
	if problems := s.Validate(); len(problems) > 0 {
		return nil, errors.NewValidationError("config", strings.Join(problems, "; "))
	}
	return &s, nil
}

// bindKeys registers every key so that environment variables are seen by
// Unmarshal even when no config file mentions them.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"threshold", "mask_char",
		"corpus.format", "corpus.corpus_path", "corpus.titles_path", "corpus.links_path",
		"corpus.sqlite_path", "corpus.snapshot_path",
		"analyzer.dictionary_path",
		"similarity.mode", "similarity.vectors_path",
		"log.level", "log.pretty",
		"server.port", "server.game_ttl", "server.max_body_bytes",
	} {
		_ = v.BindEnv(key)
	}
}
