package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerServesInstruments(t *testing.T) {
	m := New()
	m.EvaluationsTotal.Inc()
	m.RuleResults.WithLabelValues("satisfied").Add(3)
	m.EvaluationSeconds.Observe(0.02)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"propcheck_evaluations_total 1",
		`propcheck_rule_results_total{outcome="satisfied"} 3`,
		"propcheck_evaluation_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestNewIsIndependent(t *testing.T) {
	a := New()
	b := New()
	a.EvaluationErrors.Inc()

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if strings.Contains(rec.Body.String(), "propcheck_evaluation_errors_total 1") {
		t.Error("instances share state; want private registries")
	}
}
