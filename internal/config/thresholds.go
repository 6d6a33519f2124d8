package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"DRIVER_MONITOR/go-backend/internal/pipeline"
)

// LoadThresholds reads the pipeline tuning file (weights, cooldowns, the
// global/per-severity cooldown policy). A missing file is not an error:
// deployments without one run on the built-in defaults.
func LoadThresholds(path string) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No thresholds file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading thresholds file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing thresholds file %s: %w", path, err)
	}

	if err := validateThresholds(cfg); err != nil {
		return cfg, err
	}

	log.Printf("Loaded thresholds from %s (cooldown policy: %s)", path, cfg.Alerts.CooldownPolicy)
	return cfg, nil
}

func validateThresholds(cfg pipeline.Config) error {
	switch cfg.Alerts.CooldownPolicy {
	case pipeline.CooldownGlobal, pipeline.CooldownPerSeverity:
	default:
		return fmt.Errorf("unknown cooldown_policy %q", cfg.Alerts.CooldownPolicy)
	}

	sum := cfg.Scorer.EyeWeight + cfg.Scorer.MouthWeight + cfg.Scorer.ClosureWeight + cfg.Scorer.AffectWeight
	if sum <= 0 {
		return fmt.Errorf("scorer weights sum to %v, must be positive", sum)
	}
	if cfg.ClosureThreshold <= 0 {
		return fmt.Errorf("closure_threshold must be positive, got %v", cfg.ClosureThreshold)
	}
	if cfg.RetentionMs <= 0 {
		return fmt.Errorf("retention_ms must be positive, got %d", cfg.RetentionMs)
	}
	return nil
}
