package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	"github.com/mwielgosz/BudgetBook/internal/ledger/query"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetTransaction(transactionID int) (*domain.Transaction, error)
	ListTransactions(skip, limit int) ([]domain.Transaction, error)
	UpdateTransaction(transactionID int, update domain.TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(transactionID int) (*domain.Transaction, error)
	CompleteTransaction(transactionID int) (*domain.Transaction, error)
	QueryTransactions(params query.Params) (query.PaginatedResponse[domain.Transaction], error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &TransactionHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	transaction.ID = 0
	if err := h.service.CreateTransaction(&transaction); err != nil {
		writeServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}
	h.respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	transaction, err := h.service.GetTransaction(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := listRange(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid skip or limit value")
		return
	}
	transactions, err := h.service.ListTransactions(skip, limit)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	var update domain.TransactionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	transaction, err := h.service.UpdateTransaction(id, update)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	transaction, err := h.service.DeleteTransaction(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to delete transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

// Complete is the dedicated PENDING -> COMPLETED state transition.
func (h *TransactionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	transaction, err := h.service.CompleteTransaction(id)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to complete transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) Query(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	response, err := h.service.QueryTransactions(params)
	if err != nil {
		writeServiceError(h.respondError, w, err, "Failed to query transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, response)
}
