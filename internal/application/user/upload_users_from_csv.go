package user

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type UploadUsersFromCSVInput struct {
	FileName string
	Content  []byte
}

type UploadUsersFromCSV interface {
	Execute(ctx context.Context, in UploadUsersFromCSVInput) error
}

type uploadUsersFromCSV struct {
	producer *CSVProducer
	logger   *zap.Logger
}

func NewUploadUsersFromCSV(producer *CSVProducer, logger *zap.Logger) UploadUsersFromCSV {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &uploadUsersFromCSV{producer: producer, logger: logger}
}

// Execute validates the upload and starts parsing in the background.
// Acceptance only means the file passed the extension check; persistence
// failures are retried by the workers and never reported to the caller.
func (uc *uploadUsersFromCSV) Execute(ctx context.Context, in UploadUsersFromCSVInput) error {
	fileName := strings.TrimSpace(in.FileName)
	if fileName == "" || !strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		return ErrInvalidUpload
	}

	background := context.WithoutCancel(ctx)
	go func() {
		if _, err := uc.producer.Produce(background, in.Content, fileName); err != nil {
			uc.logger.Error("csv processing failed",
				zap.String("file", fileName),
				zap.Error(err))
		}
	}()

	return nil
}
