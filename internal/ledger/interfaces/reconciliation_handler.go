package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type ReconciliationServiceInterface interface {
	CreateReconciliation(reconciliation *domain.Reconciliation) error
	GetReconciliation(reconciliationID int) (*domain.Reconciliation, error)
	GetLastReconciliation(accountID int) (*domain.Reconciliation, error)
	DeleteReconciliation(reconciliationID int) (*domain.Reconciliation, error)
	QueryReconciliations(params query.Params) (query.PaginatedResponse[domain.Reconciliation], error)
}

type ReconciliationHandler struct {
	service      ReconciliationServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewReconciliationHandler(service ReconciliationServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *ReconciliationHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &ReconciliationHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *ReconciliationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reconciliation domain.Reconciliation
	if err := json.NewDecoder(r.Body).Decode(&reconciliation); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	reconciliation.ID = 0
	if err := h.service.CreateReconciliation(&reconciliation); err != nil {
		writeServiceError(h.respondError, w, err, "Failed to create reconciliation")
		return
	}
	h.respondJSON(w, http.StatusCreated, reconciliation)
}

func (h *ReconciliationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid reconciliation id")
		return
	}
	reconciliation, err := h.service.GetReconciliation(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve reconciliation")
		return
	}
	h.respondJSON(w, http.StatusOK, reconciliation)
}

// GetLast returns the newest reconciliation for the account in the path.
func (h *ReconciliationHandler) GetLast(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(r.PathValue("accountID"))
	if err != nil || accountID < 1 {
		h.respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	reconciliation, err := h.service.GetLastReconciliation(accountID)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve reconciliation")
		return
	}
	h.respondJSON(w, http.StatusOK, reconciliation)
}

func (h *ReconciliationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid reconciliation id")
		return
	}
	reconciliation, err := h.service.DeleteReconciliation(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to delete reconciliation")
		return
	}
	h.respondJSON(w, http.StatusOK, reconciliation)
}

func (h *ReconciliationHandler) Query(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	response, err := h.service.QueryReconciliations(params)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to query reconciliations")
		return
	}
	h.respondJSON(w, http.StatusOK, response)
}
