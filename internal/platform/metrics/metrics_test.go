package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"growbraz/internal/ports/telemetry"
)

func TestRecorder_Counters(t *testing.T) {
	m := New()

	m.Mutation("growbraz_spaces", "create", telemetry.ResultOK)
	m.Mutation("growbraz_spaces", "create", telemetry.ResultOK)
	m.Mutation("growbraz_plants", "delete", telemetry.ResultNotFound)
	m.PersistFailure("growbraz_plants")
	m.Advice(telemetry.ResultFallback)

	if got := testutil.ToFloat64(m.Mutations.WithLabelValues("growbraz_spaces", "create", telemetry.ResultOK)); got != 2 {
		t.Fatalf("expected 2 creates, got %v", got)
	}
	if got := testutil.ToFloat64(m.PersistFailed.WithLabelValues("growbraz_plants")); got != 1 {
		t.Fatalf("expected 1 persist failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.AdviceTotal.WithLabelValues(telemetry.ResultFallback)); got != 1 {
		t.Fatalf("expected 1 fallback advice, got %v", got)
	}
}

func TestHandler_ExposesNamespace(t *testing.T) {
	m := New()
	m.PersistFailure("growbraz_spaces")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `growbraz_persist_failures_total{collection="growbraz_spaces"} 1`) {
		t.Fatalf("metric not exposed:\n%s", body)
	}
}
