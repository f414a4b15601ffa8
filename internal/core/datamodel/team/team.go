package team

import "time"

type Team struct {
	ID             int64     `gorm:"primaryKey"`
	OrganisationID int64     `gorm:"column:organisation_id;not null;index"`
	Name           string    `gorm:"column:name;not null"`
	Description    string    `gorm:"column:description"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Team) TableName() string {
	return "teams"
}

// EmployeeTeam is the many-to-many membership row. The pair is unique so
// repeated assignments collapse into one row.
type EmployeeTeam struct {
	EmployeeID int64 `gorm:"column:employee_id;primaryKey"`
	TeamID     int64 `gorm:"column:team_id;primaryKey"`
}

func (EmployeeTeam) TableName() string {
	return "employee_teams"
}
