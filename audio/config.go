package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
)

// Config controls the cue player
type Config struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// LoadConfig applies RAIL_AUDIO_ENABLED, RAIL_MASTER_VOLUME (0-100) and
// RAIL_SAMPLE_RATE over the defaults; malformed values are ignored
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RAIL_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("RAIL_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(n)/100, 0, 1)
		}
	}
	if v := os.Getenv("RAIL_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}
	return cfg
}
