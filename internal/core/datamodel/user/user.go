package user

import "time"

type User struct {
	ID             int64     `gorm:"primaryKey"`
	OrganisationID int64     `gorm:"column:organisation_id;not null"`
	Name           string    `gorm:"column:name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
