package interfaces

import (
	"log"
	"net/http"
	"strconv"

	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})

type RespondErrorFunc func(w http.ResponseWriter, status int, message string)

// pathID parses the {id} route segment.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// listRange reads skip/limit query parameters for the plain list endpoints,
// falling back to skip 0 and limit 100.
func listRange(r *http.Request) (int, int, bool) {
	skip, limit := 0, query.DefaultLimit
	var err error
	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, false
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return 0, 0, false
		}
	}
	return skip, limit, true
}

// writeServiceError maps the error taxonomy onto HTTP statuses: not-found 404,
// validation 400, storage conflicts 409, anything else a generic 500 that does
// not leak storage internals.
func writeServiceError(respondError RespondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	switch {
	case ledgerErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case ledgerErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case ledgerErrors.IsConflictError(err):
		respondError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("%s: %v", fallback, err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
