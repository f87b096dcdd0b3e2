package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "chessapp.yaml"

type Config struct {
	LogLevel string `yaml:"log_level"`   // debug/info/warn/error
	Console  bool   `yaml:"console_log"` // console encoder to stdout instead of file JSON
	Seed     int64  `yaml:"seed"`        // opponent RNG seed, 0 = time-seeded
	Glyphs   string `yaml:"glyphs"`      // unicode/ascii
	WindowW  int    `yaml:"window_w"`
	WindowH  int    `yaml:"window_h"`
}

func Default() *Config {
	def := defaultConfig()
	return &def
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Console:  false,
		Seed:     0,
		Glyphs:   "unicode",
		WindowW:  640,
		WindowH:  720,
	}
}

// Load reads the yaml config, falling back to defaults when the file does
// not exist and correcting out-of-range values.
func Load(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	return &c, nil
}

func (c *Config) Save(file string) error {
	if file == "" {
		file = DefaultFile
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(file, raw, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		c.LogLevel = def.LogLevel
	}
	if c.Glyphs != "unicode" && c.Glyphs != "ascii" {
		c.Glyphs = def.Glyphs
	}
	if c.WindowW < 320 || c.WindowH < 320 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
	}
}
