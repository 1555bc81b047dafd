package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultImageSize = 24
	DefaultClasses   = 48
	DefaultTrainSize = 0.8
	DefaultSeed      = 42
)

type Config struct {
	Dir       string   `yaml:"dir"`
	Files     []string `yaml:"files"`
	ImageSize int      `yaml:"image_size"`
	Classes   int      `yaml:"classes"`
	TrainSize float64  `yaml:"train_size"`
	Seed      int64    `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Files:     FileNames(DefaultImageSize),
		ImageSize: DefaultImageSize,
		Classes:   DefaultClasses,
		TrainSize: DefaultTrainSize,
		Seed:      DefaultSeed,
	}
}

// LoadConfig は既定値を入れた Config に YAML を上書きする。
// 明示的な 0 はそのまま残り、Validate で弾かれる。
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	cfg.Files = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if len(cfg.Files) == 0 {
		cfg.Files = FileNames(cfg.ImageSize)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ImageSize <= 0 {
		return fmt.Errorf("%w: image_size must be positive: %d", ErrInvalidConfig, c.ImageSize)
	}
	if c.Classes <= 0 {
		return fmt.Errorf("%w: classes must be positive: %d", ErrInvalidConfig, c.Classes)
	}
	if c.TrainSize <= 0 || c.TrainSize >= 1 {
		return fmt.Errorf("%w: train_size must be in (0, 1): %v", ErrInvalidConfig, c.TrainSize)
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("%w: no files", ErrInvalidConfig)
	}
	return nil
}
