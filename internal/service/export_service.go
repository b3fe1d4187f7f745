package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/export"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/repository/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ArchiveLinkExpiry is how long an archive download link stays valid
const ArchiveLinkExpiry = 24 * time.Hour

// ExportFile is a rendered export ready to be sent to the client
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ArchiveResult describes an export stored for later download
type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExportService renders a user's full expense list for download
type ExportService struct {
	loader   StateLoader
	store    storage.ExportStore
	location *time.Location
	now      func() time.Time
}

// NewExportService creates a new ExportService. store may be nil, in which
// case archiving is disabled.
func NewExportService(loader StateLoader, store storage.ExportStore, loc *time.Location) *ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExportService{
		loader:   loader,
		store:    store,
		location: loc,
		now:      time.Now,
	}
}

// ArchiveEnabled reports whether exports can be archived
func (s *ExportService) ArchiveEnabled() bool {
	return s.store != nil
}

// CSV exports every expense of the user as CSV
func (s *ExportService) CSV(ctx context.Context, userID, userName string) (*ExportFile, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	state := s.loader.FetchAll(ctx, userID)

	return &ExportFile{
		Filename:    s.filename("csv"),
		ContentType: export.CSVContentType,
		Data:        export.CSV(userName, state.Expenses),
	}, nil
}

// XLSX exports every expense of the user as a workbook
func (s *ExportService) XLSX(ctx context.Context, userID, userName string) (*ExportFile, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	state := s.loader.FetchAll(ctx, userID)

	data, err := export.XLSX(userName, state.Expenses)
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	return &ExportFile{
		Filename:    s.filename("xlsx"),
		ContentType: export.XLSXContentType,
		Data:        data,
	}, nil
}

// Archive stores a CSV export and returns a temporary download link
func (s *ExportService) Archive(ctx context.Context, userID, userName string) (*ArchiveResult, error) {
	if s.store == nil {
		return nil, domain.ErrArchiveDisabled
	}

	file, err := s.CSV(ctx, userID, userName)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/exports/%s_%s.csv", userID, s.today(), uuid.New().String())

	if err := s.store.Put(ctx, key, file.Data, file.ContentType); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("key", key).Msg("Failed to archive export")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	url, err := s.store.PresignedURL(ctx, key, ArchiveLinkExpiry)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("key", key).Msg("Failed to sign archive link")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	log.Info().Str("user_id", userID).Str("key", key).Int("bytes", len(file.Data)).Msg("Archived expense export")

	return &ArchiveResult{
		Key:       key,
		URL:       url,
		ExpiresAt: s.now().UTC().Add(ArchiveLinkExpiry),
	}, nil
}

func (s *ExportService) today() string {
	return s.now().In(s.location).Format("2006-01-02")
}

func (s *ExportService) filename(ext string) string {
	return fmt.Sprintf("expenses_%s.%s", s.today(), ext)
}
