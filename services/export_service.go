package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/fixture-system/storage"
)

type ExportResult struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	ExportedAt time.Time `json:"exported_at"`
}

type ExportService interface {
	Export(ctx context.Context, sessionID string) (*ExportResult, error)
}

type exportService struct {
	fixtures FixtureService
	uploader storage.FileUploader // nil when export is not configured
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	latest map[string]string // session id -> key of the last published snapshot
}

func NewExportService(fixtures FixtureService, uploader storage.FileUploader, logger *slog.Logger) ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exportService{
		fixtures: fixtures,
		uploader: uploader,
		logger:   logger,
		now:      time.Now,
		latest:   make(map[string]string),
	}
}

// Export publishes the current session view as JSON. Only the newest snapshot
// of a session is kept in the bucket.
func (s *exportService) Export(ctx context.Context, sessionID string) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}

	view, err := s.fixtures.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("%w: encode snapshot: %v", ErrExportFailed, err)
	}

	exportedAt := s.now().UTC()
	key := fmt.Sprintf("exports/%s/%d.json", sessionID, exportedAt.Unix())

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.uploader.Upload(ctx, key, storage.ContentTypeJSON, bytes.NewReader(body))
	if err != nil {
		s.logger.ErrorContext(ctx, "snapshot upload failed",
			slog.String("session_id", sessionID),
			slog.String("key", key),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	if previous, ok := s.latest[sessionID]; ok && previous != key {
		if err := s.uploader.Delete(ctx, previous); err != nil {
			s.logger.WarnContext(ctx, "failed to delete previous snapshot",
				slog.String("session_id", sessionID),
				slog.String("key", previous),
				slog.Any("error", err))
		}
	}
	s.latest[sessionID] = key

	s.logger.InfoContext(ctx, "snapshot exported",
		slog.String("session_id", sessionID),
		slog.String("key", key))

	return &ExportResult{Key: result.Key, URL: result.Location, ExportedAt: exportedAt}, nil
}
