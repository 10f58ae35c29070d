// Package metrics defines and registers all custom Prometheus metrics for the
// geopoint service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "geopoint"

// ── Coordinate metrics ────────────────────────────────────────────────────────

// RangeErrorsTotal counts coordinates rejected at the API boundary.
// Label:
//   - field: "latitude" or "longitude"
var RangeErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "range_errors_total",
		Help:      "Total number of coordinates rejected for being out of range.",
	},
	[]string{"field"},
)

// DistanceQueriesTotal counts distance computations served over HTTP.
// Label:
//   - unit: "km", "mi" or "rad"
var DistanceQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "distance_queries_total",
		Help:      "Total number of distance queries, by unit.",
	},
	[]string{"unit"},
)

// LocationLookupsTotal counts current-location lookups against the device provider.
// Label:
//   - result: "ok", "error" or "timeout"
var LocationLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_lookups_total",
		Help:      "Total number of current-location lookups, by result.",
	},
	[]string{"result"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts newly created records.
// Label:
//   - located: "true" when the request carried a usable location, "false" when it defaulted to (0, 0)
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created.",
	},
	[]string{"located"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsProcessedTotal counts reports that completed processing successfully.
// Label:
//   - source: the report source sent by the device (e.g. "gps", "network")
var ReportsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_processed_total",
		Help:      "Total number of location reports successfully processed.",
	},
	[]string{"source"},
)

// ReportsErrorsTotal counts reports that failed processing.
// Label:
//   - reason: "out_of_range", "store_failed", "history_failed"
var ReportsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_errors_total",
		Help:      "Total number of location reports that failed processing.",
	},
	[]string{"reason"},
)

// ReportsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new report, processed)
var ReportsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ReportsQueueDepth tracks the current number of reports waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ReportsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reports_queue_depth",
		Help:      "Current number of reports pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ReportProcessingDuration measures how long a single report takes to process end-to-end.
// Label:
//   - result: "ok" or "error"
var ReportProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_processing_duration_seconds",
		Help:      "Duration of report processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
