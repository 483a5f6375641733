package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"eventsmanager/internal/domain"
)

// DecodeJSON decodes the request body into dest with DisallowUnknownFields.
// On failure it writes a 400 and returns false; callers should return
// immediately when it does.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Request body is invalid", []domain.FieldError{
			{Field: "body", Message: err.Error()},
		})
		return false
	}
	return true
}

// PathID parses the named path value as a positive integer id. On failure it
// writes a 400 and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name), []domain.FieldError{
			{Field: name, Message: fmt.Sprintf("%q is not a valid id.", raw)},
		})
		return 0, false
	}
	return id, true
}

// StatusQuery reads the optional "status" query parameter. ok is false when
// the parameter is absent. On an invalid value it writes a 400 and valid is
// false.
func StatusQuery(w http.ResponseWriter, r *http.Request) (status domain.InviteStatus, ok, valid bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return 0, false, true
	}
	status, err := domain.ParseInviteStatus(raw)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invite status is invalid", []domain.FieldError{
			{Field: "status", Message: err.Error()},
		})
		return 0, false, false
	}
	return status, true, true
}
