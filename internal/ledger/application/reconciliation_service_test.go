package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mwielgosz/BudgetBook/internal/ledger/domain"
	ledgerErrors "github.com/mwielgosz/BudgetBook/internal/ledger/errors"
	"github.com/mwielgosz/BudgetBook/internal/ledger/infrastructure"
)

func TestCreateReconciliation_StampsAccount(t *testing.T) {
	repo := &infrastructure.MockReconciliationRepository{}
	service := NewReconciliationService(repo)

	reconciliation := &domain.Reconciliation{
		Date:      domain.NewDate(2023, time.January, 1),
		AccountID: 1,
	}
	err := service.CreateReconciliation(reconciliation)

	assert.NoError(t, err)
	assert.Equal(t, 1, reconciliation.ID)
	assert.Equal(t, "2023-01-01", repo.LastReconciled[1].String())
}

func TestCreateReconciliation_RequiresDate(t *testing.T) {
	service := NewReconciliationService(&infrastructure.MockReconciliationRepository{})

	err := service.CreateReconciliation(&domain.Reconciliation{AccountID: 1})

	assert.True(t, ledgerErrors.IsValidationError(err))
}

func TestGetLastReconciliation_PicksMostRecentDate(t *testing.T) {
	repo := &infrastructure.MockReconciliationRepository{}
	service := NewReconciliationService(repo)

	first := &domain.Reconciliation{Date: domain.NewDate(2023, time.January, 1), AccountID: 1}
	second := &domain.Reconciliation{Date: domain.NewDate(2023, time.February, 1), AccountID: 1}
	other := &domain.Reconciliation{Date: domain.NewDate(2023, time.March, 1), AccountID: 2}
	assert.NoError(t, service.CreateReconciliation(first))
	assert.NoError(t, service.CreateReconciliation(second))
	assert.NoError(t, service.CreateReconciliation(other))

	last, err := service.GetLastReconciliation(1)

	assert.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, "2023-02-01", last.Date.String())

	// The running stamp follows the latest reconciliation.
	assert.Equal(t, "2023-02-01", repo.LastReconciled[1].String())
}

func TestGetLastReconciliation_NoneRecorded(t *testing.T) {
	service := NewReconciliationService(&infrastructure.MockReconciliationRepository{})

	last, err := service.GetLastReconciliation(9)

	assert.Nil(t, last)
	assert.True(t, ledgerErrors.IsNotFoundError(err))
	assert.Equal(t, "Reconciliation for account with id 9 not found", err.Error())
}

func TestDeleteReconciliation_NotFound(t *testing.T) {
	service := NewReconciliationService(&infrastructure.MockReconciliationRepository{})

	deleted, err := service.DeleteReconciliation(3)

	assert.Nil(t, deleted)
	assert.True(t, ledgerErrors.IsNotFoundError(err))
}
