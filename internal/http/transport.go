package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

const metricsNamespace = "governance_client"

// NewDefaultTransport returns a pooled cleanhttp client. A zero timeout means
// requests are bounded only by their context.
func NewDefaultTransport(timeout time.Duration) *http.Client {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return client
}

// NewInstrumentedTransport returns a pooled client whose round trips are
// recorded in Prometheus collectors registered on reg.
func NewInstrumentedTransport(reg prometheus.Registerer, timeout time.Duration) (*http.Client, error) {
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "in_flight_requests",
		Help:      "Number of governance API requests currently in flight.",
	})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "requests_total",
		Help:      "Governance API requests by status code and method.",
	}, []string{"code", "method"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "request_duration_seconds",
		Help:      "Governance API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"})

	for _, collector := range []prometheus.Collector{inFlight, requests, duration} {
		err := reg.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering transport metrics: %w", err)
		}
	}

	client := NewDefaultTransport(timeout)
	client.Transport = promhttp.InstrumentRoundTripperInFlight(inFlight,
		promhttp.InstrumentRoundTripperCounter(requests,
			promhttp.InstrumentRoundTripperDuration(duration, client.Transport),
		),
	)

	return client, nil
}

// LoggingTransport logs each round trip at debug level. Headers are never
// logged, so credentials stay out of the logs.
type LoggingTransport struct {
	next   governance.Transport
	logger governance.Logger
}

// NewLoggingTransport wraps next with request/response logging.
func NewLoggingTransport(next governance.Transport, logger governance.Logger) *LoggingTransport {
	return &LoggingTransport{
		next:   next,
		logger: logger,
	}
}

// Do implements governance.Transport.
func (t *LoggingTransport) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logger.Debug("HTTP Request", map[string]interface{}{
		"method":        req.Method,
		"url":           req.URL.String(),
		"authenticated": req.Header.Get(HeaderAuthorization) != "",
		"tenant_scoped": req.Header.Get(HeaderTenantID) != "",
	})

	resp, err := t.next.Do(req)

	fields := map[string]interface{}{
		"method":      req.Method,
		"url":         req.URL.String(),
		"duration_ms": time.Since(start).Milliseconds(),
	}

	if err != nil {
		fields["error"] = err.Error()
		t.logger.Error("HTTP Request Failed", fields)

		return resp, err //nolint:wrapcheck // decorators must not change the transport's error
	}

	if resp != nil {
		fields["status_code"] = resp.StatusCode
	}

	t.logger.Debug("HTTP Response", fields)

	return resp, nil
}
