package pipeline

import (
	"fmt"
	"time"

	"DRIVER_MONITOR/go-backend/internal/models"
)

// Cooldown policies. Global is the default: one emitted alert suppresses
// every severity until it expires, even a critical one. Per-severity keeps
// an independent cooldown per level.
const (
	CooldownGlobal      = "global"
	CooldownPerSeverity = "per-severity"
)

type AlertConfig struct {
	CooldownPolicy     string `yaml:"cooldown_policy"`
	CriticalCooldownMs int    `yaml:"critical_cooldown_ms"`
	HighCooldownMs     int    `yaml:"high_cooldown_ms"`
	MediumCooldownMs   int    `yaml:"medium_cooldown_ms"`
	LowCooldownMs      int    `yaml:"low_cooldown_ms"`
}

func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		CooldownPolicy:     CooldownGlobal,
		CriticalCooldownMs: 10000,
		HighCooldownMs:     10000,
		MediumCooldownMs:   3000,
		LowCooldownMs:      5000,
	}
}

func (c AlertConfig) cooldownFor(severity models.Severity) time.Duration {
	switch severity {
	case models.SeverityCritical:
		return time.Duration(c.CriticalCooldownMs) * time.Millisecond
	case models.SeverityHigh:
		return time.Duration(c.HighCooldownMs) * time.Millisecond
	case models.SeverityMedium:
		return time.Duration(c.MediumCooldownMs) * time.Millisecond
	default:
		return time.Duration(c.LowCooldownMs) * time.Millisecond
	}
}

var alertMessages = map[models.Severity]string{
	models.SeverityCritical: "Wake up! Prolonged eye closure detected",
	models.SeverityHigh:     "Severe drowsiness detected, pull over when safe",
	models.SeverityMedium:   "Drowsiness rising, consider taking a break",
	models.SeverityLow:      "Early signs of fatigue detected",
}

// AlertEvaluator turns a score/metric tuple into at most one alert per
// cooldown window. States are Idle and Cooldown; expiry is checked lazily at
// the start of each call, never by a background timer.
type AlertEvaluator struct {
	cfg AlertConfig

	// global policy
	cooldownUntil time.Time

	// per-severity policy
	severityUntil map[models.Severity]time.Time
}

func NewAlertEvaluator(cfg AlertConfig) *AlertEvaluator {
	if cfg.CooldownPolicy == "" {
		cfg.CooldownPolicy = CooldownGlobal
	}
	return &AlertEvaluator{
		cfg:           cfg,
		severityUntil: make(map[models.Severity]time.Time),
	}
}

// classify walks the threshold ladder in strict priority order; the first
// match wins even when lower rungs also match.
func classify(score, eyeOpenness, mouthOpenness, closureFraction float64) (models.Severity, bool) {
	switch {
	case eyeOpenness < 0.15 && closureFraction > 0.8:
		return models.SeverityCritical, true
	case score > 75 || (eyeOpenness < 0.2 && mouthOpenness > 1.0):
		return models.SeverityHigh, true
	case score > 50 || closureFraction > 0.5:
		return models.SeverityMedium, true
	case score > 30:
		return models.SeverityLow, true
	default:
		return "", false
	}
}

// Evaluate returns an alert for this cycle, or nil while no ladder rung
// matches or a cooldown is still running.
func (e *AlertEvaluator) Evaluate(score, eyeOpenness, mouthOpenness, closureFraction float64, now time.Time) *models.AlertEvent {
	// Global cooldown suppresses everything up front, no ladder checks at all.
	if e.cfg.CooldownPolicy != CooldownPerSeverity && now.Before(e.cooldownUntil) {
		return nil
	}

	severity, ok := classify(score, eyeOpenness, mouthOpenness, closureFraction)
	if !ok {
		return nil
	}

	if e.cfg.CooldownPolicy == CooldownPerSeverity {
		if now.Before(e.severityUntil[severity]) {
			return nil
		}
		e.severityUntil[severity] = now.Add(e.cfg.cooldownFor(severity))
	} else {
		e.cooldownUntil = now.Add(e.cfg.cooldownFor(severity))
	}

	return &models.AlertEvent{
		ID:        fmt.Sprintf("alert-%d", now.UnixNano()),
		Message:   alertMessages[severity],
		Severity:  severity,
		EmittedAt: now,
	}
}

// InCooldown reports whether the evaluator would suppress any alert at now.
// Only meaningful under the global policy.
func (e *AlertEvaluator) InCooldown(now time.Time) bool {
	return now.Before(e.cooldownUntil)
}

// Reset returns the evaluator to Idle.
func (e *AlertEvaluator) Reset() {
	e.cooldownUntil = time.Time{}
	e.severityUntil = make(map[models.Severity]time.Time)
}
