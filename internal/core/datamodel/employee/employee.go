package employee

import "time"

type Employee struct {
	ID             int64     `gorm:"primaryKey"`
	OrganisationID int64     `gorm:"column:organisation_id;not null;index"`
	FirstName      string    `gorm:"column:first_name;not null"`
	LastName       string    `gorm:"column:last_name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex"`
	Phone          string    `gorm:"column:phone"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
