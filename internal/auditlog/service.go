package auditlog

import (
	"context"
	"encoding/json"
	"log/slog"

	auditlogDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/auditlog"
)

type RepositoryAPI interface {
	Append(ctx context.Context, entry *auditlogDatamodel.LogEntry) error
	List(ctx context.Context, orgID int64, filter ListFilter, limit int) ([]*auditlogDatamodel.LogEntry, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends one log entry. Failures are reported to the operator log and
// deliberately not returned: audit writes are best-effort telemetry.
func (s *Service) Record(ctx context.Context, orgID, userID int64, action string, meta any) {
	payload, err := json.Marshal(meta)
	if err != nil {
		s.logger.Error("audit: failed to serialize meta", "action", action, "error", err)
		payload = []byte("{}")
	}

	entry := &auditlogDatamodel.LogEntry{
		OrganisationID: orgID,
		Action:         action,
		Meta:           string(payload),
	}
	if userID > 0 {
		entry.UserID = &userID
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error("audit: failed to append log entry",
			"org_id", orgID,
			"action", action,
			"error", err)
	}
}

func (s *Service) List(ctx context.Context, orgID int64, filter ListFilter) ([]Entry, error) {
	rows, err := s.repo.List(ctx, orgID, filter, ListLimit)
	if err != nil {
		s.logger.Error("failed to list log entries", "org_id", orgID, "error", err)
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, FromDataModel(row))
	}
	return entries, nil
}
