package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	path = "infra/config"
	// DirEnv overrides the config dir , mostly for tests and deployments.
	DirEnv = "PRICE_SERVE_CONFIG_DIR"
)

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {

	dir := os.Getenv(DirEnv)
	if dir == "" {
		dir = path
	}

	b, err := ioutil.ReadFile(fmt.Sprintf("%s/%s.json", dir, key))
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		panic(fmt.Sprintf("could not unmarshal the config for %s: %s", key, err.Error()))
	}

	log.Info().Str("config", key).Msg("loaded default config")

	return b
}
