package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type BudgetAllocationServiceInterface interface {
	CreateBudgetAllocation(allocation *domain.BudgetAllocation) error
	GetBudgetAllocation(allocationID int) (*domain.BudgetAllocation, error)
	ListBudgetAllocations(skip, limit int) ([]domain.BudgetAllocation, error)
	UpdateBudgetAllocation(allocationID int, update domain.BudgetAllocationUpdate) (*domain.BudgetAllocation, error)
	DeleteBudgetAllocation(allocationID int) (*domain.BudgetAllocation, error)
	QueryBudgetAllocations(params query.Params) (query.PaginatedResponse[domain.BudgetAllocation], error)
}

type BudgetAllocationHandler struct {
	service      BudgetAllocationServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewBudgetAllocationHandler(service BudgetAllocationServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *BudgetAllocationHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &BudgetAllocationHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *BudgetAllocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var allocation domain.BudgetAllocation
	if err := json.NewDecoder(r.Body).Decode(&allocation); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	allocation.ID = 0
	if err := h.service.CreateBudgetAllocation(&allocation); err != nil {
		writeServiceError(h.respondError, w, err, "Failed to create budget allocation")
		return
	}
	h.respondJSON(w, http.StatusCreated, allocation)
}

func (h *BudgetAllocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid budget allocation id")
		return
	}
	allocation, err := h.service.GetBudgetAllocation(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve budget allocation")
		return
	}
	h.respondJSON(w, http.StatusOK, allocation)
}

func (h *BudgetAllocationHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := listRange(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid skip or limit value")
		return
	}
	allocations, err := h.service.ListBudgetAllocations(skip, limit)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve budget allocations")
		return
	}
	if allocations == nil {
		allocations = []domain.BudgetAllocation{}
	}
	h.respondJSON(w, http.StatusOK, allocations)
}

func (h *BudgetAllocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid budget allocation id")
		return
	}
	var update domain.BudgetAllocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	allocation, err := h.service.UpdateBudgetAllocation(id, update)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to update budget allocation")
		return
	}
	h.respondJSON(w, http.StatusOK, allocation)
}

func (h *BudgetAllocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid budget allocation id")
		return
	}
	allocation, err := h.service.DeleteBudgetAllocation(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to delete budget allocation")
		return
	}
	h.respondJSON(w, http.StatusOK, allocation)
}

func (h *BudgetAllocationHandler) Query(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	response, err := h.service.QueryBudgetAllocations(params)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to query budget allocations")
		return
	}
	h.respondJSON(w, http.StatusOK, response)
}
