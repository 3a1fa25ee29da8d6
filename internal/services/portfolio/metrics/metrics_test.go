package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pbhende/portfolio/internal/services/portfolio/domain/integrity"
)

func TestRecordReport(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordReport(integrity.Report{Results: []integrity.Result{
		{Check: integrity.CheckRequiredFields, Passed: true},
		{Check: integrity.CheckRequiredFields, Passed: true},
		{Check: integrity.CheckUniqueTitles, Passed: false},
	}})

	if got := testutil.ToFloat64(m.integrityResults.WithLabelValues(string(integrity.CheckRequiredFields), "pass")); got != 2 {
		t.Fatalf("required-fields pass = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.integrityResults.WithLabelValues(string(integrity.CheckUniqueTitles), "fail")); got != 1 {
		t.Fatalf("unique-titles fail = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.integrityPassed); got != 0 {
		t.Fatalf("passed = %v, want 0", got)
	}

	m.RecordReport(integrity.Report{Results: []integrity.Result{{Check: integrity.CheckUniqueTitles, Passed: true}}})
	if got := testutil.ToFloat64(m.integrityPassed); got != 1 {
		t.Fatalf("passed = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.integrityResults); got != 1 {
		t.Fatalf("result series = %d, want 1 after reset", got)
	}
}

func TestRecordTransition(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordTransition(EventSelect)
	m.RecordTransition(EventSelect)
	m.RecordTransition(EventToggleTheme)

	if got := testutil.ToFloat64(m.transitions.WithLabelValues(EventSelect)); got != 2 {
		t.Fatalf("select transitions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.transitions.WithLabelValues(EventToggleTheme)); got != 1 {
		t.Fatalf("toggle transitions = %v, want 1", got)
	}
}

func TestWatchSessions(t *testing.T) {
	t.Parallel()

	m := New()
	if err := m.WatchSessions(nil); err == nil {
		t.Fatal("expected nil count function to be rejected")
	}
	if err := m.WatchSessions(func() int { return 3 }); err != nil {
		t.Fatalf("WatchSessions() error = %v", err)
	}
	if err := m.WatchSessions(func() int { return 3 }); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	m := New()
	if err := m.WatchSessions(func() int { return 4 }); err != nil {
		t.Fatalf("WatchSessions() error = %v", err)
	}
	m.RecordTransition(EventClear)
	h := m.Instrument("/up")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/up", nil))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`portfolio_ui_transitions_total{event="clear"} 1`,
		"portfolio_sessions_active 4",
		`portfolio_http_request_duration_seconds_count{code="200",method="get",route="/up"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics body missing %q", marker)
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordReport(integrity.Report{})
	m.RecordTransition(EventSelect)
	if err := m.WatchSessions(func() int { return 0 }); err != nil {
		t.Fatalf("WatchSessions() error = %v", err)
	}
	next := http.NotFoundHandler()
	if got := m.Instrument("/")(next); got == nil {
		t.Fatal("expected passthrough handler")
	}
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
