package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	DocumentFieldsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_fields_resolved_total",
			Help: "Total number of document fields resolved per template and resolution mode",
		},
		[]string{"template", "mode"},
	)

	DocumentFieldFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_field_fallbacks_total",
			Help: "Total number of document fields rendered empty because of missing data or extractor faults",
		},
		[]string{"template", "reason"},
	)

	DocumentTemplateNotFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_template_not_found_total",
			Help: "Total number of field map requests for unknown templates",
		},
		[]string{"environment"},
	)

	DocumentAssemblyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "document_assembly_duration_seconds",
			Help:    "Duration of generic object assembly in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)
