package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
)

func TestCreateAccount_Success(t *testing.T) {
	body := `{"name":"Checking","type":"checking","balance":"1000.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockAccountService{}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var account domain.Account
	err := json.NewDecoder(res.Body).Decode(&account)
	assert.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.Equal(t, "Checking", account.Name)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1000.00")))
}

func TestCreateAccount_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid request body", response["message"])
}

func TestCreateAccount_MissingName(t *testing.T) {
	body := `{"type":"checking","balance":"10.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetAccount_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/2", nil)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{
			{ID: 1, Name: "Checking", Type: "checking"},
			{ID: 2, Name: "Savings", Type: "savings"},
		},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.Get(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var account domain.Account
	err := json.NewDecoder(res.Body).Decode(&account)
	assert.NoError(t, err)
	assert.Equal(t, "Savings", account.Name)
}

func TestGetAccount_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Get(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Account with id 99 not found", response["message"])
}

func TestGetAccount_InvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Get(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestListAccounts_EmptyIsArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.List(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var accounts []domain.Account
	err := json.NewDecoder(res.Body).Decode(&accounts)
	assert.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Equal(t, 0, len(accounts))
}

func TestUpdateAccount_Success(t *testing.T) {
	body := `{"balance":"250.75"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/accounts/1", strings.NewReader(body))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{{ID: 1, Name: "Checking", Type: "checking"}},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.Update(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var account domain.Account
	err := json.NewDecoder(res.Body).Decode(&account)
	assert.NoError(t, err)
	assert.Equal(t, "Checking", account.Name)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("250.75")))
}

func TestDeleteAccount_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/7", nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Delete(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestQueryAccounts_PaginatedShape(t *testing.T) {
	body := `{"skip":1,"limit":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/query", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{
			{ID: 1, Name: "Checking", Type: "checking"},
			{ID: 2, Name: "Savings", Type: "savings"},
			{ID: 3, Name: "Credit", Type: "credit"},
		},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.Query(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Items []domain.Account `json:"items"`
		Total int              `json:"total"`
		Page  int              `json:"page"`
		Size  int              `json:"size"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 1, response.Size)
	assert.Equal(t, 1, len(response.Items))
	assert.Equal(t, "Savings", response.Items[0].Name)
}

func TestQueryAccounts_NegativeSkip(t *testing.T) {
	body := `{"skip":-1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/query", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Query(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestQueryAccounts_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/query", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.Query(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
