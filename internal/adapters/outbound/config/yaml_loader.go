package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// FileName is the per-skill rule configuration file, read from the skill
// directory next to SKILL.md.
const FileName = ".skillcheck.yaml"

// YAMLLoader implements domain.ConfigLoader for .skillcheck.yaml files.
type YAMLLoader struct{}

func New() *YAMLLoader {
	return &YAMLLoader{}
}

// Load reads the rule configuration for a skill. A missing file yields the
// defaults; a present but invalid one is an error the caller may degrade.
func (l *YAMLLoader) Load(skillPath string) (domain.RuleConfig, error) {
	data, err := os.ReadFile(filepath.Join(skillPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRuleConfig(), nil
		}
		return domain.RuleConfig{}, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var cfg domain.RuleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RuleConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.RuleConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	if cfg.MaxDocumentLines == 0 {
		cfg.MaxDocumentLines = domain.DefaultMaxDocumentLines
	}

	return cfg, nil
}
