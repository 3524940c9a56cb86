package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type StoreServiceInterface interface {
	CreateStore(store *domain.Store) error
	GetStore(storeID int) (*domain.Store, error)
	ListStores(skip, limit int) ([]domain.Store, error)
	UpdateStore(storeID int, update domain.StoreUpdate) (*domain.Store, error)
	DeleteStore(storeID int) (*domain.Store, error)
	QueryStores(params query.Params) (query.PaginatedResponse[domain.Store], error)
}

type StoreHandler struct {
	service      StoreServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewStoreHandler(service StoreServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *StoreHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &StoreHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		UserDefined *bool  `json:"user_defined"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	store := domain.Store{Name: payload.Name, UserDefined: true}
	if payload.UserDefined != nil {
		store.UserDefined = *payload.UserDefined
	}
	if err := h.service.CreateStore(&store); err != nil {
		writeServiceError(h.respondError, w, err, "Failed to create store")
		return
	}
	h.respondJSON(w, http.StatusCreated, store)
}

func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid store id")
		return
	}
	store, err := h.service.GetStore(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve store")
		return
	}
	h.respondJSON(w, http.StatusOK, store)
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := listRange(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid skip or limit value")
		return
	}
	stores, err := h.service.ListStores(skip, limit)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve stores")
		return
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	h.respondJSON(w, http.StatusOK, stores)
}

func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid store id")
		return
	}
	var update domain.StoreUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	store, err := h.service.UpdateStore(id, update)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to update store")
		return
	}
	h.respondJSON(w, http.StatusOK, store)
}

func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid store id")
		return
	}
	store, err := h.service.DeleteStore(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to delete store")
		return
	}
	h.respondJSON(w, http.StatusOK, store)
}

func (h *StoreHandler) Query(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	response, err := h.service.QueryStores(params)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to query stores")
		return
	}
	h.respondJSON(w, http.StatusOK, response)
}
