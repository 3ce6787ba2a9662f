package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "xaliss"

var (
	collections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collections_total",
		Help:      "Collection attempts by outcome.",
	}, []string{"outcome"})

	settlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "month_end_settlements_total",
		Help:      "Month-end fee and bonus steps by status.",
	}, []string{"step", "status"})

	ledgerCalls = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ledger_request_duration_seconds",
		Help:      "Latency of ledger gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "result"})

	jobRuns = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of background job runs.",
		Buckets:   []float64{0.5, 1, 5, 15, 60, 300, 900},
	}, []string{"job", "result"})
)

func IncCollection(outcome string) {
	collections.WithLabelValues(outcome).Inc()
}

func IncSettlement(step, status string) {
	settlements.WithLabelValues(step, status).Inc()
}

func ObserveLedgerCall(op, result string, d time.Duration) {
	ledgerCalls.WithLabelValues(op, result).Observe(d.Seconds())
}

func ObserveJob(job, result string, d time.Duration) {
	jobRuns.WithLabelValues(job, result).Observe(d.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
