package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/time"
	musecase "github.com/amirhossein-jamali/finance-ledger/mocks/port/usecase"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

type testAPI struct {
	router   *gin.Engine
	users    *musecase.MockUserUseCase
	accounts *musecase.MockAccountUseCase
	ledger   *musecase.MockLedgerUseCase
	budgets  *musecase.MockBudgetUseCase
	alice    *entity.User
}

func newTestAPI(t *testing.T, pinger handler.Pinger) *testAPI {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	clock := timeProvider.NewFixedTimeProvider(time.Date(2024, time.July, 10, 9, 0, 0, 0, time.UTC))

	api := &testAPI{
		router:   gin.New(),
		users:    musecase.NewMockUserUseCase(t),
		accounts: musecase.NewMockAccountUseCase(t),
		ledger:   musecase.NewMockLedgerUseCase(t),
		budgets:  musecase.NewMockBudgetUseCase(t),
		alice: &entity.User{
			ID:         uuid.New(),
			ExternalID: "auth0|alice",
			Email:      "alice@example.com",
			Name:       "Alice",
		},
	}

	routes.SetupMiddlewares(api.router, log, clock, nil, 5*time.Second)
	routes.SetupRoutes(api.router, routes.Handlers{
		Health:      handler.NewHealthHandler(pinger, log),
		User:        handler.NewUserHandler(api.users, log),
		Account:     handler.NewAccountHandler(api.accounts, log),
		Transaction: handler.NewTransactionHandler(api.ledger, log),
		Budget:      handler.NewBudgetHandler(api.budgets, log),
	}, api.users, log)

	return api
}

func (a *testAPI) signedIn() {
	a.users.On("ResolveIdentity", mock.Anything, a.alice.ExternalID).Return(a.alice, nil)
}

func (a *testAPI) do(t *testing.T, method, path, subject string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		req.Header.Set(middleware.SubjectHeader, subject)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestHealth(t *testing.T) {
	t.Run("should report ok when the database answers", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{})

		w, env := api.do(t, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("should report unavailable when the database does not answer", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{err: errors.New("connection refused")})

		w, env := api.do(t, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, env.Success)
	})
}

func TestAuthentication(t *testing.T) {
	t.Run("should reject requests without a subject", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{})

		w, env := api.do(t, http.MethodGet, "/v1/accounts", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(errs.KindUnauthorized), env.Error.Kind)
	})

	t.Run("should reject subjects without a registered user", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.users.On("ResolveIdentity", mock.Anything, "auth0|mallory").Return(nil, errs.ErrUserNotFound)

		// Act
		w, _ := api.do(t, http.MethodGet, "/v1/accounts", "auth0|mallory", nil)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should register the subject without resolving it first", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.users.On("RegisterUser", mock.Anything, "auth0|alice", "alice@example.com", "Alice").Return(api.alice, nil).Once()

		// Act
		w, env := api.do(t, http.MethodPost, "/v1/users", "auth0|alice", map[string]any{
			"email": "alice@example.com",
			"name":  "Alice",
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var user struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, api.alice.ID.String(), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("should reject registration with an invalid email", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{})

		w, _ := api.do(t, http.MethodPost, "/v1/users", "auth0|alice", map[string]any{"email": "nope"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountRoutes(t *testing.T) {
	t.Run("should create an account with a zero opening balance by default", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		created := &entity.Account{
			ID:        uuid.New(),
			UserID:    api.alice.ID,
			Name:      "Main",
			Type:      entity.AccountTypeCurrent,
			Balance:   decimal.Zero,
			IsDefault: true,
		}
		api.accounts.On("CreateAccount", mock.Anything, api.alice.ID, usecase.CreateAccountRequest{
			Name:      "Main",
			Type:      "CURRENT",
			Balance:   "0",
			IsDefault: true,
		}).Return(created, nil).Once()

		// Act
		w, env := api.do(t, http.MethodPost, "/v1/accounts", api.alice.ExternalID, map[string]any{
			"name":      "Main",
			"type":      "CURRENT",
			"isDefault": true,
		})

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)
		var account struct {
			ID      string `json:"id"`
			Balance string `json:"balance"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &account))
		assert.Equal(t, created.ID.String(), account.ID)
		assert.Equal(t, "0.00", account.Balance)
	})

	t.Run("should reject a malformed account id", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{})
		api.signedIn()

		w, _ := api.do(t, http.MethodGet, "/v1/accounts/not-a-uuid", api.alice.ExternalID, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map a foreign account to not found", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		foreign := uuid.New()
		api.accounts.On("GetAccountWithTransactions", mock.Anything, api.alice.ID, foreign).Return(nil, errs.ErrAccountNotFound)

		// Act
		w, env := api.do(t, http.MethodGet, "/v1/accounts/"+foreign.String(), api.alice.ExternalID, nil)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, errs.CodeAccountNotFound, env.Error.Code)
	})
}

func TestTransactionRoutes(t *testing.T) {
	t.Run("should report per-account balance changes of a bulk delete", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		accountID := uuid.New()
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		api.ledger.On("BulkDelete", mock.Anything, api.alice.ID, ids).Return(&usecase.BulkDeleteResult{
			DeletedCount:   2,
			BalanceChanges: map[uuid.UUID]decimal.Decimal{accountID: decimal.RequireFromString("50")},
		}, nil).Once()

		// Act
		w, env := api.do(t, http.MethodPost, "/v1/transactions/bulk-delete", api.alice.ExternalID, map[string]any{
			"transactionIds": []string{ids[0].String(), ids[1].String()},
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var result struct {
			DeletedCount   int               `json:"deletedCount"`
			BalanceChanges map[string]string `json:"balanceChanges"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, 2, result.DeletedCount)
		assert.Equal(t, "50.00", result.BalanceChanges[accountID.String()])
	})

	t.Run("should reject malformed transaction ids before touching the ledger", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{})
		api.signedIn()

		w, _ := api.do(t, http.MethodPost, "/v1/transactions/bulk-delete", api.alice.ExternalID, map[string]any{
			"transactionIds": []string{"nope"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		api.ledger.AssertNotCalled(t, "BulkDelete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should map an invalid amount to bad request", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		accountID := uuid.New()
		api.ledger.On("CreateTransaction", mock.Anything, api.alice.ID, mock.MatchedBy(func(req usecase.CreateTransactionRequest) bool {
			return req.AccountID == accountID && req.Amount == "10.001" && req.Date.IsZero()
		})).Return(nil, errs.ErrInvalidAmount).Once()

		// Act
		w, env := api.do(t, http.MethodPost, "/v1/transactions", api.alice.ExternalID, map[string]any{
			"accountId": accountID.String(),
			"type":      "EXPENSE",
			"amount":    "10.001",
		})

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(errs.KindInvalidAmount), env.Error.Kind)
	})
}

func TestBudgetRoutes(t *testing.T) {
	t.Run("should render progress with one decimal place", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		accountID := uuid.New()
		budget := &entity.Budget{
			ID:        uuid.New(),
			UserID:    api.alice.ID,
			Amount:    decimal.RequireFromString("1000"),
			AccountID: &accountID,
		}
		api.budgets.On("GetBudgetProgress", mock.Anything, api.alice.ID, accountID).Return(&usecase.BudgetProgress{
			ResolvedBudget:  usecase.ResolvedBudget{Budget: budget, ExpenseAccountID: accountID},
			CurrentExpenses: decimal.RequireFromString("250"),
			PercentageUsed:  decimal.RequireFromString("25"),
		}, nil).Once()

		// Act
		w, env := api.do(t, http.MethodGet, "/v1/budgets?accountId="+accountID.String(), api.alice.ExternalID, nil)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var progress struct {
			Budget *struct {
				Amount string `json:"amount"`
			} `json:"budget"`
			CurrentExpenses string `json:"currentExpenses"`
			PercentageUsed  string `json:"percentageUsed"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &progress))
		require.NotNil(t, progress.Budget)
		assert.Equal(t, "1000.00", progress.Budget.Amount)
		assert.Equal(t, "250.00", progress.CurrentExpenses)
		assert.Equal(t, "25.0", progress.PercentageUsed)
	})

	t.Run("should require an account id query parameter", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{})
		api.signedIn()

		w, _ := api.do(t, http.MethodGet, "/v1/budgets", api.alice.ExternalID, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should save the budget of the parsed account", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		accountID := uuid.New()
		saved := &entity.Budget{ID: uuid.New(), UserID: api.alice.ID, Amount: decimal.RequireFromString("300"), AccountID: &accountID}
		api.budgets.On("SetBudgetAmount", mock.Anything, api.alice.ID, accountID, "300").Return(saved, nil).Once()

		// Act
		w, env := api.do(t, http.MethodPut, "/v1/budgets", api.alice.ExternalID, map[string]any{
			"accountId": accountID.String(),
			"amount":    "300",
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var budget struct {
			ID     string `json:"id"`
			Amount string `json:"amount"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &budget))
		assert.Equal(t, saved.ID.String(), budget.ID)
		assert.Equal(t, "300.00", budget.Amount)
	})

	t.Run("should reject a malformed budget account id without saving", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()

		// Act
		w, env := api.do(t, http.MethodPut, "/v1/budgets", api.alice.ExternalID, map[string]any{
			"accountId": "not-a-uuid",
			"amount":    "300",
		})

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		api.budgets.AssertNotCalled(t, "SetBudgetAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should map demoting a non-global budget to conflict", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		budgetID := uuid.New()
		api.budgets.On("SetGlobalFlag", mock.Anything, api.alice.ID, budgetID, false).
			Return(nil, entity.GlobalTag(""), errs.NewStateError(api.alice.ID.String(), "budget is not global")).Once()

		// Act
		w, env := api.do(t, http.MethodPut, "/v1/budgets/"+budgetID.String()+"/global", api.alice.ExternalID, map[string]any{
			"isGlobal": false,
		})

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, string(errs.KindInvalidState), env.Error.Kind)
	})

	t.Run("should tag a promoted budget as global", func(t *testing.T) {
		// Arrange
		api := newTestAPI(t, stubPinger{})
		api.signedIn()
		budget := &entity.Budget{ID: uuid.New(), UserID: api.alice.ID, Amount: decimal.RequireFromString("500"), IsGlobal: true}
		api.budgets.On("SetGlobalFlag", mock.Anything, api.alice.ID, budget.ID, true).
			Return(budget, entity.TagGlobal, nil).Once()

		// Act
		w, env := api.do(t, http.MethodPut, "/v1/budgets/"+budget.ID.String()+"/global", api.alice.ExternalID, map[string]any{
			"isGlobal": true,
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var toggled struct {
			Tag string `json:"tag"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &toggled))
		assert.Equal(t, "Global", toggled.Tag)
	})
}
