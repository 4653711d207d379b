package user

import (
	"context"
	"sync"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
)

// BatchSession is one transactional persistence attempt: add every record,
// then commit, or roll back. Close is idempotent and must be called on every
// exit path.
type BatchSession interface {
	AddAll(ctx context.Context, records []domain.User) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Close(ctx context.Context) error
}

// BatchGateway opens a fresh session per persistence attempt.
type BatchGateway interface {
	OpenSession(ctx context.Context) (BatchSession, error)
}

// DeadLetterSink receives batches dropped after exhausting their retry
// budget. Only used when MaxAttempts > 0.
type DeadLetterSink interface {
	Drop(batch domain.Batch, cause error)
}

type IngestWorkerConfig struct {
	Workers int
	// MaxAttempts bounds persistence attempts per batch; 0 retries forever.
	MaxAttempts int
	DeadLetter  DeadLetterSink
}

// IngestWorker drains the work queue with a fixed pool of goroutines. Each
// worker loops: dequeue a batch, attempt one transactional insert, and on
// failure roll back and requeue the batch at the tail.
type IngestWorker struct {
	gateway BatchGateway
	queue   *WorkQueue
	cfg     IngestWorkerConfig
	logger  *zap.Logger

	once sync.Once
}

func NewIngestWorker(gateway BatchGateway, queue *WorkQueue, cfg IngestWorkerConfig, logger *zap.Logger) *IngestWorker {
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IngestWorker{
		gateway: gateway,
		queue:   queue,
		cfg:     cfg,
		logger:  logger,
	}
}

// Start launches the worker goroutines exactly once. Workers run until ctx
// is cancelled; a batch dequeued but not yet committed at cancellation is
// lost, which the at-least-once contract tolerates.
func (w *IngestWorker) Start(ctx context.Context) {
	w.once.Do(func() {
		for i := 0; i < w.cfg.Workers; i++ {
			go w.workerLoop(ctx, i)
		}
	})
}

func (w *IngestWorker) workerLoop(ctx context.Context, id int) {
	logger := w.logger.With(zap.Int("worker", id))
	for {
		batch, ok := w.queue.Get(ctx)
		if !ok {
			return
		}
		if err := w.ProcessBatch(ctx, batch); err != nil {
			logger.Error("batch attempt failed",
				zap.String("upload_id", batch.UploadID),
				zap.Error(err))
		}
	}
}

// ProcessBatch runs a single persistence attempt. The whole batch commits or
// none of it does; any failure rolls the session back and requeues the batch.
func (w *IngestWorker) ProcessBatch(ctx context.Context, batch domain.Batch) error {
	session, err := w.gateway.OpenSession(ctx)
	if err != nil {
		w.requeue(batch, err)
		return err
	}
	defer session.Close(ctx)

	if err := session.AddAll(ctx, batch.Records); err != nil {
		_ = session.Rollback(ctx)
		w.requeue(batch, err)
		return err
	}

	if err := session.Commit(ctx); err != nil {
		_ = session.Rollback(ctx)
		w.requeue(batch, err)
		return err
	}

	batchesCommitted.Inc()
	rowsIngested.Add(float64(len(batch.Records)))
	w.logger.Info("batch inserted successfully",
		zap.String("upload_id", batch.UploadID),
		zap.Int("rows", len(batch.Records)),
		zap.Int("attempt", batch.Attempts+1))

	return nil
}

func (w *IngestWorker) requeue(batch domain.Batch, cause error) {
	batch.Attempts++

	if w.cfg.MaxAttempts > 0 && batch.Attempts >= w.cfg.MaxAttempts {
		batchesDeadLettered.Inc()
		w.logger.Error("batch dropped after exhausting retries",
			zap.String("upload_id", batch.UploadID),
			zap.Int("rows", len(batch.Records)),
			zap.Int("attempts", batch.Attempts),
			zap.Error(cause))
		if w.cfg.DeadLetter != nil {
			w.cfg.DeadLetter.Drop(batch, cause)
		}
		return
	}

	batchesRequeued.Inc()
	w.logger.Warn("batch insert failed, requeueing",
		zap.String("upload_id", batch.UploadID),
		zap.Int("attempt", batch.Attempts),
		zap.Error(cause))
	w.queue.Put(batch)
}
