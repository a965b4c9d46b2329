package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/san-kum/atomscene/internal/bounds"
)

const envPrefix = "ATOMSCENE_"

var envPadding = map[string]string{
	bounds.PadTop:    envPrefix + "PAD_TOP",
	bounds.PadBottom: envPrefix + "PAD_BOTTOM",
	bounds.PadLeft:   envPrefix + "PAD_LEFT",
	bounds.PadRight:  envPrefix + "PAD_RIGHT",
}

// Env looks values up in the process environment first and then in an
// optional dotenv file.
type Env struct {
	file map[string]string
}

// LoadEnv reads path with godotenv. A missing file is not an error when
// optional is set.
func LoadEnv(path string, optional bool) (*Env, error) {
	env := &Env{file: map[string]string{}}
	if path == "" {
		return env, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return env, nil
		}
		return nil, err
	}
	env.file = values
	return env, nil
}

func (e *Env) Get(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if e == nil {
		return ""
	}
	return e.file[key]
}

// Apply overlays environment values on cfg. Padding sides that are absent
// from the environment keep their configured value; malformed ones fall back
// to the built-in default.
func (e *Env) Apply(cfg *Config) {
	configured := cfg.Padding.Normalize()
	pad := bounds.PaddingFrom(func(name string) string {
		return e.Get(envPadding[name])
	})
	if e.Get(envPadding[bounds.PadTop]) == "" {
		pad.Top = configured.Top
	}
	if e.Get(envPadding[bounds.PadBottom]) == "" {
		pad.Bottom = configured.Bottom
	}
	if e.Get(envPadding[bounds.PadLeft]) == "" {
		pad.Left = configured.Left
	}
	if e.Get(envPadding[bounds.PadRight]) == "" {
		pad.Right = configured.Right
	}
	cfg.Padding = pad

	if tz := strings.TrimSpace(e.Get(envPrefix + "TZ")); tz != "" {
		cfg.Timezone = tz
		cfg.TzAbbrevs = nil
		cfg.TzFallback = ""
	}
	if th := strings.TrimSpace(e.Get(envPrefix + "THEME")); th != "" {
		cfg.Theme = th
	}
}
