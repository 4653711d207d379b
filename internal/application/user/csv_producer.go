package user

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
)

var requiredColumns = []string{"FirstName", "LastName", "Age", "Email"}

// CSVProducer parses uploaded CSV content into batches of up to chunkSize
// records and enqueues each batch as soon as it fills, so ingestion starts
// before the whole file is parsed.
type CSVProducer struct {
	queue     *WorkQueue
	chunkSize int
	logger    *zap.Logger
}

func NewCSVProducer(queue *WorkQueue, chunkSize int, logger *zap.Logger) *CSVProducer {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVProducer{
		queue:     queue,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// Produce reads content as CSV and enqueues batches, returning the number of
// rows queued. Encoding and header problems reject the upload before any
// batch is queued. A row-level error stops production at that row; full
// batches already queued proceed to the workers.
func (p *CSVProducer) Produce(ctx context.Context, content []byte, fileName string) (int, error) {
	if !utf8.Valid(content) {
		return 0, domain.ErrInvalidEncoding
	}

	reader := csv.NewReader(bytes.NewReader(content))

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: read header: %v", domain.ErrMalformedInput, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	index := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		pos, ok := columns[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrMissingColumn, name)
		}
		index[name] = pos
	}

	uploadID := uuid.NewString()
	p.logger.Info("processing csv upload",
		zap.String("upload_id", uploadID),
		zap.String("file", fileName))

	queued := 0
	batches := 0
	records := make([]domain.User, 0, p.chunkSize)

	flush := func() {
		if len(records) == 0 {
			return
		}
		p.queue.Put(domain.Batch{
			UploadID: uploadID,
			FileName: fileName,
			Records:  records,
		})
		queued += len(records)
		batches++
		records = make([]domain.User, 0, p.chunkSize)
	}

	for rowIndex := 1; ; rowIndex++ {
		select {
		case <-ctx.Done():
			return queued, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return queued, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedInput, rowIndex, err)
		}

		record, err := domain.NewUser(
			row[index["FirstName"]],
			row[index["LastName"]],
			row[index["Age"]],
			row[index["Email"]],
			fileName,
		)
		if err != nil {
			return queued, fmt.Errorf("row %d: %w", rowIndex, err)
		}

		records = append(records, record)
		if len(records) >= p.chunkSize {
			flush()
		}
	}

	flush()

	p.logger.Info("csv upload queued",
		zap.String("upload_id", uploadID),
		zap.String("file", fileName),
		zap.Int("rows", queued),
		zap.Int("batches", batches))

	return queued, nil
}
