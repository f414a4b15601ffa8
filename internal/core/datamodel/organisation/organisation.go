package organisation

import "time"

// Organisation is the tenancy root. Rows are never updated or deleted after
// registration.
type Organisation struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Organisation) TableName() string {
	return "organisations"
}
