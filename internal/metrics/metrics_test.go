package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	var r Recorder = Prometheus{}

	before := testutil.ToFloat64(lookupsTotal.WithLabelValues(OutcomeFailed))
	r.LookupStarted()
	if got := testutil.ToFloat64(lookupsInFlight); got < 1 {
		t.Errorf("in-flight gauge = %v, want >= 1", got)
	}
	r.LookupFinished(OutcomeFailed, 20*time.Millisecond)

	after := testutil.ToFloat64(lookupsTotal.WithLabelValues(OutcomeFailed))
	if after != before+1 {
		t.Errorf("failed lookups = %v, want %v", after, before+1)
	}
}

func TestSetActiveSessions(t *testing.T) {
	SetActiveSessions(3)
	if got := testutil.ToFloat64(sessionsActive); got != 3 {
		t.Errorf("sessions gauge = %v, want 3", got)
	}
}

func TestSetUpstreamUp(t *testing.T) {
	SetUpstreamUp(true)
	if got := testutil.ToFloat64(upstreamUp); got != 1 {
		t.Errorf("upstream gauge = %v, want 1", got)
	}
	SetUpstreamUp(false)
	if got := testutil.ToFloat64(upstreamUp); got != 0 {
		t.Errorf("upstream gauge = %v, want 0", got)
	}
}
