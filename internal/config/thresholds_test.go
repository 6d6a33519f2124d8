package config

import (
	"os"
	"path/filepath"
	"testing"

	"DRIVER_MONITOR/go-backend/internal/pipeline"
)

func TestLoadThresholdsMissingFile(t *testing.T) {
	cfg, err := LoadThresholds(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Scorer != pipeline.DefaultScorerConfig() {
		t.Errorf("expected default scorer config, got %+v", cfg.Scorer)
	}
	if cfg.Alerts.CooldownPolicy != pipeline.CooldownGlobal {
		t.Errorf("default cooldown policy = %s, want global", cfg.Alerts.CooldownPolicy)
	}
}

func TestLoadThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	content := `
scorer:
  eye_weight: 0.5
  mouth_weight: 0.2
  closure_weight: 0.2
  affect_weight: 0.1
  eye_open_threshold: 0.22
  drowsy_confidence_gate: 0.7
  stressed_confidence_gate: 0.6
alerts:
  cooldown_policy: per-severity
  critical_cooldown_ms: 8000
  high_cooldown_ms: 8000
  medium_cooldown_ms: 3000
  low_cooldown_ms: 5000
retention_ms: 4000
closure_threshold: 0.25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("LoadThresholds failed: %v", err)
	}
	if cfg.Scorer.EyeWeight != 0.5 {
		t.Errorf("EyeWeight = %v, want 0.5", cfg.Scorer.EyeWeight)
	}
	if cfg.Alerts.CooldownPolicy != pipeline.CooldownPerSeverity {
		t.Errorf("CooldownPolicy = %s, want per-severity", cfg.Alerts.CooldownPolicy)
	}
	if cfg.Alerts.CriticalCooldownMs != 8000 {
		t.Errorf("CriticalCooldownMs = %d, want 8000", cfg.Alerts.CriticalCooldownMs)
	}
	if cfg.RetentionMs != 4000 {
		t.Errorf("RetentionMs = %d, want 4000", cfg.RetentionMs)
	}
	if cfg.ClosureThreshold != 0.25 {
		t.Errorf("ClosureThreshold = %v, want 0.25", cfg.ClosureThreshold)
	}
}

func TestLoadThresholdsRejectsBadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	if err := os.WriteFile(path, []byte("alerts:\n  cooldown_policy: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadThresholds(path); err == nil {
		t.Error("expected error for unknown cooldown policy")
	}
}
