package pipeline

import (
	"testing"
	"time"

	"DRIVER_MONITOR/go-backend/internal/models"
)

func TestAlertCriticalThenCooldown(t *testing.T) {
	e := NewAlertEvaluator(DefaultAlertConfig())
	start := time.Now()

	// Nearly closed eyes with a high closure fraction: critical.
	alert := e.Evaluate(60, 0.10, 0.2, 0.85, start)
	if alert == nil {
		t.Fatal("expected critical alert, got nil")
	}
	if alert.Severity != models.SeverityCritical {
		t.Errorf("severity = %s, want critical", alert.Severity)
	}

	// 2s later even a score of 95 stays silent: the 10s cooldown is global.
	if got := e.Evaluate(95, 0.1, 0.2, 0.85, start.Add(2*time.Second)); got != nil {
		t.Errorf("expected suppression during cooldown, got %+v", got)
	}

	// Just past expiry a medium condition fires with its own 3s cooldown.
	alert = e.Evaluate(55, 0.25, 0.2, 0.2, start.Add(10001*time.Millisecond))
	if alert == nil {
		t.Fatal("expected medium alert after cooldown expiry, got nil")
	}
	if alert.Severity != models.SeverityMedium {
		t.Errorf("severity = %s, want medium", alert.Severity)
	}

	if got := e.Evaluate(55, 0.25, 0.2, 0.2, start.Add(12*time.Second)); got != nil {
		t.Errorf("expected suppression during medium cooldown, got %+v", got)
	}
	if got := e.Evaluate(55, 0.25, 0.2, 0.2, start.Add(13002*time.Millisecond)); got == nil {
		t.Error("expected alert after medium cooldown expiry, got nil")
	}
}

func TestAlertPriorityOrdering(t *testing.T) {
	e := NewAlertEvaluator(DefaultAlertConfig())

	// Inputs satisfy the critical, high, medium and low rungs at once;
	// the highest severity must win.
	alert := e.Evaluate(90, 0.10, 1.5, 0.9, time.Now())
	if alert == nil {
		t.Fatal("expected an alert, got nil")
	}
	if alert.Severity != models.SeverityCritical {
		t.Errorf("severity = %s, want critical", alert.Severity)
	}
}

func TestAlertLadder(t *testing.T) {
	cases := []struct {
		name                       string
		score, eye, mouth, closure float64
		want                       models.Severity
		wantAlert                  bool
	}{
		{"critical by closure", 40, 0.10, 0.2, 0.85, models.SeverityCritical, true},
		{"high by score", 80, 0.3, 0.2, 0.1, models.SeverityHigh, true},
		{"high by yawn", 40, 0.18, 1.2, 0.1, models.SeverityHigh, true},
		{"medium by score", 55, 0.3, 0.2, 0.1, models.SeverityMedium, true},
		{"medium by closure", 20, 0.3, 0.2, 0.55, models.SeverityMedium, true},
		{"low by score", 35, 0.3, 0.2, 0.1, models.SeverityLow, true},
		{"quiet", 20, 0.3, 0.2, 0.1, "", false},
	}
	for _, c := range cases {
		e := NewAlertEvaluator(DefaultAlertConfig())
		alert := e.Evaluate(c.score, c.eye, c.mouth, c.closure, time.Now())
		if c.wantAlert && alert == nil {
			t.Errorf("%s: expected %s alert, got nil", c.name, c.want)
			continue
		}
		if !c.wantAlert {
			if alert != nil {
				t.Errorf("%s: expected no alert, got %s", c.name, alert.Severity)
			}
			continue
		}
		if alert.Severity != c.want {
			t.Errorf("%s: severity = %s, want %s", c.name, alert.Severity, c.want)
		}
		if alert.Message == "" || alert.ID == "" {
			t.Errorf("%s: alert missing message or id: %+v", c.name, alert)
		}
	}
}

func TestAlertCooldownMonotonicity(t *testing.T) {
	e := NewAlertEvaluator(DefaultAlertConfig())
	start := time.Now()

	first := e.Evaluate(90, 0.05, 2.0, 0.9, start)
	if first == nil {
		t.Fatal("expected initial alert")
	}

	// Hammer the evaluator with extreme inputs for the whole window:
	// nothing may come out before start+10s.
	for ms := 100; ms < 10000; ms += 100 {
		if got := e.Evaluate(100, 0.0, 5.0, 1.0, start.Add(time.Duration(ms)*time.Millisecond)); got != nil {
			t.Fatalf("alert emitted %dms into a 10000ms cooldown", ms)
		}
	}

	if got := e.Evaluate(100, 0.0, 5.0, 1.0, start.Add(10*time.Second)); got == nil {
		t.Error("expected alert once cooldown expired")
	}
}

func TestAlertGlobalCooldownMasksCritical(t *testing.T) {
	e := NewAlertEvaluator(DefaultAlertConfig())
	start := time.Now()

	low := e.Evaluate(35, 0.3, 0.2, 0.1, start)
	if low == nil || low.Severity != models.SeverityLow {
		t.Fatalf("expected low alert, got %+v", low)
	}

	// The global cooldown deliberately masks the following critical
	// condition until the low alert's window expires.
	if got := e.Evaluate(100, 0.05, 0.2, 0.95, start.Add(time.Second)); got != nil {
		t.Errorf("global policy should suppress critical during low cooldown, got %+v", got)
	}
}

func TestAlertPerSeverityCooldown(t *testing.T) {
	cfg := DefaultAlertConfig()
	cfg.CooldownPolicy = CooldownPerSeverity
	e := NewAlertEvaluator(cfg)
	start := time.Now()

	low := e.Evaluate(35, 0.3, 0.2, 0.1, start)
	if low == nil || low.Severity != models.SeverityLow {
		t.Fatalf("expected low alert, got %+v", low)
	}

	// Under the per-severity policy a critical condition cuts through the
	// low alert's cooldown.
	crit := e.Evaluate(100, 0.05, 0.2, 0.95, start.Add(time.Second))
	if crit == nil || crit.Severity != models.SeverityCritical {
		t.Fatalf("expected critical alert under per-severity policy, got %+v", crit)
	}

	// But two criticals still respect the critical cooldown.
	if got := e.Evaluate(100, 0.05, 0.2, 0.95, start.Add(2*time.Second)); got != nil {
		t.Errorf("expected critical cooldown suppression, got %+v", got)
	}
}

func TestAlertReset(t *testing.T) {
	e := NewAlertEvaluator(DefaultAlertConfig())
	start := time.Now()

	if e.Evaluate(90, 0.05, 2.0, 0.9, start) == nil {
		t.Fatal("expected initial alert")
	}
	e.Reset()

	// Reset returns to Idle immediately, cooldown gone.
	if got := e.Evaluate(90, 0.05, 2.0, 0.9, start.Add(time.Second)); got == nil {
		t.Error("expected alert right after Reset")
	}
}
