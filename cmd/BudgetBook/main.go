package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	database "github.com/mwielgosz/BudgetBook/db"
	"github.com/mwielgosz/BudgetBook/internal/ledger/application"
	"github.com/mwielgosz/BudgetBook/internal/ledger/infrastructure"
	"github.com/mwielgosz/BudgetBook/internal/ledger/interfaces"
)

type Response struct {
	Message string `json:"message"`
}

// Config is built once in main and handed to whatever needs it. No global
// settings cache.
type Config struct {
	AppName     string
	Environment string
	Debug       bool
	ListenAddr  string
	DatabaseURL string
}

func loadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := Config{
		AppName:     "BudgetBook",
		Environment: "dev",
		ListenAddr:  ":8080",
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	cfg.Debug = strings.EqualFold(os.Getenv("DEBUG"), "true")
	cfg.DatabaseURL = os.Getenv("DB_CONNECTION_STRING")
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("no DB_CONNECTION_STRING provided")
	}
	return cfg, nil
}

func requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		start := time.Now()
		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("[%s] Completed %s in %v", requestID, r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, Response{Message: "Path not found"})
}

type Server struct {
	config                  Config
	dbService               *database.DBService
	router                  *http.ServeMux
	accountHandler          *interfaces.AccountHandler
	categoryHandler         *interfaces.CategoryHandler
	storeHandler            *interfaces.StoreHandler
	transactionHandler      *interfaces.TransactionHandler
	budgetAllocationHandler *interfaces.BudgetAllocationHandler
	reconciliationHandler   *interfaces.ReconciliationHandler
}

func NewServer(
	config Config,
	dbService *database.DBService,
	accountHandler *interfaces.AccountHandler,
	categoryHandler *interfaces.CategoryHandler,
	storeHandler *interfaces.StoreHandler,
	transactionHandler *interfaces.TransactionHandler,
	budgetAllocationHandler *interfaces.BudgetAllocationHandler,
	reconciliationHandler *interfaces.ReconciliationHandler,
) *Server {
	return &Server{
		config:                  config,
		dbService:               dbService,
		router:                  http.NewServeMux(),
		accountHandler:          accountHandler,
		categoryHandler:         categoryHandler,
		storeHandler:            storeHandler,
		transactionHandler:      transactionHandler,
		budgetAllocationHandler: budgetAllocationHandler,
		reconciliationHandler:   reconciliationHandler,
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Welcome to the " + s.config.AppName + " API",
		"environment": s.config.Environment,
		"debug_mode":  s.config.Debug,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]interface{}{
		"status":      health["status"],
		"environment": s.config.Environment,
	})
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", s.handleRoot)
	router.HandleFunc("GET /health", s.handleHealth)

	// ACCOUNTS API
	router.HandleFunc("POST /api/v1/accounts", s.accountHandler.Create)
	router.HandleFunc("GET /api/v1/accounts", s.accountHandler.List)
	router.HandleFunc("POST /api/v1/accounts/query", s.accountHandler.Query)
	router.HandleFunc("GET /api/v1/accounts/{id}", s.accountHandler.Get)
	router.HandleFunc("PUT /api/v1/accounts/{id}", s.accountHandler.Update)
	router.HandleFunc("DELETE /api/v1/accounts/{id}", s.accountHandler.Delete)

	// CATEGORIES API
	router.HandleFunc("POST /api/v1/categories", s.categoryHandler.Create)
	router.HandleFunc("GET /api/v1/categories", s.categoryHandler.List)
	router.HandleFunc("POST /api/v1/categories/query", s.categoryHandler.Query)
	router.HandleFunc("GET /api/v1/categories/{id}", s.categoryHandler.Get)
	router.HandleFunc("PUT /api/v1/categories/{id}", s.categoryHandler.Update)
	router.HandleFunc("DELETE /api/v1/categories/{id}", s.categoryHandler.Delete)

	// STORES API
	router.HandleFunc("POST /api/v1/stores", s.storeHandler.Create)
	router.HandleFunc("GET /api/v1/stores", s.storeHandler.List)
	router.HandleFunc("POST /api/v1/stores/query", s.storeHandler.Query)
	router.HandleFunc("GET /api/v1/stores/{id}", s.storeHandler.Get)
	router.HandleFunc("PUT /api/v1/stores/{id}", s.storeHandler.Update)
	router.HandleFunc("DELETE /api/v1/stores/{id}", s.storeHandler.Delete)

	// TRANSACTIONS API
	router.HandleFunc("POST /api/v1/transactions", s.transactionHandler.Create)
	router.HandleFunc("GET /api/v1/transactions", s.transactionHandler.List)
	router.HandleFunc("POST /api/v1/transactions/query", s.transactionHandler.Query)
	router.HandleFunc("GET /api/v1/transactions/{id}", s.transactionHandler.Get)
	router.HandleFunc("PUT /api/v1/transactions/{id}", s.transactionHandler.Update)
	router.HandleFunc("PUT /api/v1/transactions/{id}/complete", s.transactionHandler.Complete)
	router.HandleFunc("DELETE /api/v1/transactions/{id}", s.transactionHandler.Delete)

	// BUDGET ALLOCATIONS API
	router.HandleFunc("POST /api/v1/budget_allocations", s.budgetAllocationHandler.Create)
	router.HandleFunc("GET /api/v1/budget_allocations", s.budgetAllocationHandler.List)
	router.HandleFunc("POST /api/v1/budget_allocations/query", s.budgetAllocationHandler.Query)
	router.HandleFunc("GET /api/v1/budget_allocations/{id}", s.budgetAllocationHandler.Get)
	router.HandleFunc("PUT /api/v1/budget_allocations/{id}", s.budgetAllocationHandler.Update)
	router.HandleFunc("DELETE /api/v1/budget_allocations/{id}", s.budgetAllocationHandler.Delete)

	// RECONCILIATIONS API
	router.HandleFunc("POST /api/v1/reconciliations", s.reconciliationHandler.Create)
	router.HandleFunc("POST /api/v1/reconciliations/query", s.reconciliationHandler.Query)
	router.HandleFunc("GET /api/v1/reconciliations/{id}", s.reconciliationHandler.Get)
	router.HandleFunc("GET /api/v1/reconciliations/{accountID}/last", s.reconciliationHandler.GetLast)
	router.HandleFunc("DELETE /api/v1/reconciliations/{id}", s.reconciliationHandler.Delete)

	router.HandleFunc("/", notFoundHandler)

	s.router = router
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(config.DatabaseURL)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.EnsureSchema(dbService.DB); err != nil {
		log.Fatalf("Could not apply database schema: %v", err)
	}

	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	storeRepo := infrastructure.NewStoreRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	budgetAllocationRepo := infrastructure.NewBudgetAllocationRepository(dbService.DB)
	reconciliationRepo := infrastructure.NewReconciliationRepository(dbService.DB)

	accountService := application.NewAccountService(accountRepo)
	categoryService := application.NewCategoryService(categoryRepo)
	storeService := application.NewStoreService(storeRepo)
	transactionService := application.NewTransactionService(transactionRepo)
	budgetAllocationService := application.NewBudgetAllocationService(budgetAllocationRepo)
	reconciliationService := application.NewReconciliationService(reconciliationRepo)

	server := NewServer(
		config,
		dbService,
		interfaces.NewAccountHandler(accountService, respondJSON, respondError),
		interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		interfaces.NewStoreHandler(storeService, respondJSON, respondError),
		interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		interfaces.NewBudgetAllocationHandler(budgetAllocationService, respondJSON, respondError),
		interfaces.NewReconciliationHandler(reconciliationService, respondJSON, respondError),
	)
	server.RegisterRoutes()

	handler := requestLoggingMiddleware(server.router)
	log.Printf("Server starting on %s...", config.ListenAddr)
	if err := http.ListenAndServe(config.ListenAddr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
