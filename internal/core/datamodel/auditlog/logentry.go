package auditlog

import "time"

// LogEntry is append-only: rows are never updated or deleted. UserID is
// nullable so system-originated entries can omit an actor.
type LogEntry struct {
	ID             int64     `gorm:"primaryKey"`
	OrganisationID int64     `gorm:"column:organisation_id;not null;index"`
	UserID         *int64    `gorm:"column:user_id"`
	Action         string    `gorm:"column:action;not null;index"`
	Meta           string    `gorm:"column:meta"`
	Timestamp      time.Time `gorm:"column:timestamp;autoCreateTime;index"`
}

func (LogEntry) TableName() string {
	return "logs"
}
