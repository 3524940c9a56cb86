package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type CategoryServiceInterface interface {
	CreateCategory(category *domain.Category) error
	GetCategory(categoryID int) (*domain.Category, error)
	ListCategories(skip, limit int) ([]domain.Category, error)
	UpdateCategory(categoryID int, update domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(categoryID int) (*domain.Category, error)
	QueryCategories(params query.Params) (query.PaginatedResponse[domain.Category], error)
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *CategoryHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &CategoryHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// is_default is system-assigned, not client-settable.
	category.ID = 0
	category.IsDefault = false
	if err := h.service.CreateCategory(&category); err != nil {
		writeServiceError(h.respondError, w, err, "Failed to create category")
		return
	}
	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	category, err := h.service.GetCategory(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := listRange(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid skip or limit value")
		return
	}
	categories, err := h.service.ListCategories(skip, limit)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	var update domain.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := h.service.UpdateCategory(id, update)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to update category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	category, err := h.service.DeleteCategory(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to delete category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	response, err := h.service.QueryCategories(params)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to query categories")
		return
	}
	h.respondJSON(w, http.StatusOK, response)
}
