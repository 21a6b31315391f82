package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics holds metrics of the exchange page
type ExchangeMetrics struct {
	// Rate table fetches by result (ok/error)
	RateFetchesTotal  *prometheus.CounterVec
	RateFetchDuration prometheus.Histogram

	// Form submissions by result (accepted/rejected) and crypto
	SubmissionsTotal *prometheus.CounterVec

	// Form events by operation and result
	FormEventsTotal *prometheus.CounterVec

	// Live page sessions
	SessionsActive prometheus.GaugeFunc
}

// New registers exchange metrics on given registerer.
// sessions reports the number of live page sessions.
func New(reg prometheus.Registerer, sessions func() int) *ExchangeMetrics {
	factory := promauto.With(reg)

	return &ExchangeMetrics{
		RateFetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "buysell_rate_fetches_total",
			Help: "Rate table fetches from the rates provider",
		}, []string{"result"}),
		RateFetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "buysell_rate_fetch_duration_seconds",
			Help:    "Duration of rate table fetches",
			Buckets: prometheus.DefBuckets,
		}),
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "buysell_submissions_total",
			Help: "Exchange form submissions",
		}, []string{"result", "crypto"}),
		FormEventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "buysell_form_events_total",
			Help: "Exchange form events",
		}, []string{"operation", "result"}),
		SessionsActive: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "buysell_sessions_active",
			Help: "Live exchange page sessions",
		}, func() float64 { return float64(sessions()) }),
	}
}
