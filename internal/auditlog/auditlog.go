package auditlog

import (
	"context"
	"encoding/json"
	"time"

	auditlogDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/auditlog"
)

// Action tags recorded by the rest of the application.
const (
	ActionOrganisationCreated = "organisation_created"
	ActionUserLogin           = "user_login"

	ActionEmployeeCreated = "employee_created"
	ActionEmployeeUpdated = "employee_updated"
	ActionEmployeeDeleted = "employee_deleted"

	ActionTeamCreated = "team_created"
	ActionTeamUpdated = "team_updated"
	ActionTeamDeleted = "team_deleted"

	ActionEmployeeAssigned   = "employee_assigned_to_team"
	ActionEmployeeUnassigned = "employee_unassigned_from_team"
)

// Recorder appends one audit entry per consequential action. Implementations
// must swallow storage failures: a mutation that already succeeded is never
// failed because its audit trail could not be written.
type Recorder interface {
	Record(ctx context.Context, orgID, userID int64, action string, meta any)
}

// Entry is the API view of a log row.
type Entry struct {
	ID             int64           `json:"id"`
	OrganisationID int64           `json:"organisation_id"`
	UserID         *int64          `json:"user_id"`
	Action         string          `json:"action"`
	Meta           json.RawMessage `json:"meta"`
	Timestamp      time.Time       `json:"timestamp"`
}

func FromDataModel(e *auditlogDatamodel.LogEntry) Entry {
	meta := json.RawMessage(e.Meta)
	if len(meta) == 0 {
		meta = json.RawMessage("{}")
	}
	return Entry{
		ID:             e.ID,
		OrganisationID: e.OrganisationID,
		UserID:         e.UserID,
		Action:         e.Action,
		Meta:           meta,
		Timestamp:      e.Timestamp,
	}
}
