package user

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchesCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_ingest_batches_committed_total",
		Help: "Batches inserted and committed.",
	})
	batchesRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_ingest_batches_requeued_total",
		Help: "Failed persistence attempts that put the batch back on the queue.",
	})
	batchesDeadLettered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_ingest_batches_dead_lettered_total",
		Help: "Batches dropped after exhausting their retry budget.",
	})
	rowsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_ingest_rows_total",
		Help: "Rows durably inserted.",
	})
)
