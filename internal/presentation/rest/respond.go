package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/capfin/sanction-service/internal/application/usecase"
	"github.com/capfin/sanction-service/internal/domain/port"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// validationFailure is the 422 body: the failed field names in reporting
// order, plus the reason for each.
type validationFailure struct {
	FailedFields []string                 `json:"failed_fields"`
	Errors       []valueobject.FieldError `json:"errors"`
}

// writeError maps pipeline errors onto HTTP statuses. Validation failures
// come back as a structured 422, lookup misses as 404, everything else as a
// bare 500.
func writeError(w http.ResponseWriter, err error) {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusUnprocessableEntity, validationFailure{
			FailedFields: valueobject.FieldNames(vErr.Fields),
			Errors:       vErr.Fields,
		})
		return
	}

	if errors.Is(err, port.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
