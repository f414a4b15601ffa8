package postgres

import (
	"context"

	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	auditlogDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/auditlog"
	"gorm.io/gorm"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) auditlog.RepositoryAPI {
	return &LogRepository{db: db}
}

func (r *LogRepository) Append(ctx context.Context, entry *auditlogDatamodel.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *LogRepository) List(ctx context.Context, orgID int64, filter auditlog.ListFilter, limit int) ([]*auditlogDatamodel.LogEntry, error) {
	query := r.db.WithContext(ctx).Where("organisation_id = ?", orgID)

	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if !filter.StartDate.IsZero() {
		query = query.Where("timestamp >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query = query.Where("timestamp <= ?", filter.EndDate)
	}

	var entries []*auditlogDatamodel.LogEntry
	err := query.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
