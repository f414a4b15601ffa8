package auditlog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, orgID int64, filter ListFilter) ([]Entry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := internal.IdentityFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.Service.List(r.Context(), identity.OrgID, filter)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}

func parseFilter(r *http.Request) (ListFilter, error) {
	filter := ListFilter{Action: r.URL.Query().Get("action")}

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = t
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.EndDate = t
	}
	return filter, nil
}

// parseDate accepts RFC3339 timestamps or plain dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}
