package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type AccountServiceInterface interface {
	CreateAccount(account *domain.Account) error
	GetAccount(accountID int) (*domain.Account, error)
	ListAccounts(skip, limit int) ([]domain.Account, error)
	UpdateAccount(accountID int, update domain.AccountUpdate) (*domain.Account, error)
	DeleteAccount(accountID int) (*domain.Account, error)
	QueryAccounts(params query.Params) (query.PaginatedResponse[domain.Account], error)
}

type AccountHandler struct {
	service      AccountServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewAccountHandler(service AccountServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *AccountHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &AccountHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var account domain.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account.ID = 0
	if err := h.service.CreateAccount(&account); err != nil {
		writeServiceError(h.respondError, w, err, "Failed to create account")
		return
	}
	h.respondJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	account, err := h.service.GetAccount(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve account")
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := listRange(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid skip or limit value")
		return
	}
	accounts, err := h.service.ListAccounts(skip, limit)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve accounts")
		return
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	h.respondJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	var update domain.AccountUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.service.UpdateAccount(id, update)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to update account")
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	account, err := h.service.DeleteAccount(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to delete account")
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Query(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	response, err := h.service.QueryAccounts(params)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to query accounts")
		return
	}
	h.respondJSON(w, http.StatusOK, response)
}
