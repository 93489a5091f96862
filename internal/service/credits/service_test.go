package credits

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkosach/SLN-SalonService/internal/domain"
	clientRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/client"
	"github.com/nkosach/SLN-SalonService/internal/service/credits/models"
)

type fakeClientRepo struct {
	client    *domain.Client
	getErr    error
	movements []domain.ClientCreditMovement
}

func (f *fakeClientRepo) GetByID(_ context.Context, _, _ int64) (*domain.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.client, nil
}

func (f *fakeClientRepo) CreateMovement(_ context.Context, movement *domain.ClientCreditMovement) (*domain.ClientCreditMovement, error) {
	movement.ID = int64(len(f.movements) + 1)
	f.movements = append(f.movements, *movement)
	return movement, nil
}

func (f *fakeClientRepo) ListMovements(_ context.Context, _, _ int64) ([]domain.ClientCreditMovement, error) {
	return f.movements, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAddMovement_AppendsWithoutTouchingBalance(t *testing.T) {
	repo := &fakeClientRepo{client: &domain.Client{ID: 5, SalonID: 1, CreditBalance: 10}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.AddMovement(context.Background(), 1, 5, &models.CreateMovementRequest{
		Type:        "credit",
		Amount:      25,
		Description: "предоплата",
	})
	require.NoError(t, err)

	assert.Equal(t, "credit", resp.Type)
	assert.InDelta(t, 25.0, resp.Amount, 1e-9)
	require.Len(t, repo.movements, 1)
	assert.Equal(t, domain.MovementCredit, repo.movements[0].Type)

	// Кэшированный баланс поддерживается внешним механизмом, запись движения
	// его не меняет
	assert.InDelta(t, 10.0, repo.client.CreditBalance, 1e-9)
}

func TestAddMovement_DebitAppendsPositiveAmount(t *testing.T) {
	repo := &fakeClientRepo{client: &domain.Client{ID: 5, SalonID: 1, CreditBalance: 10}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.AddMovement(context.Background(), 1, 5, &models.CreateMovementRequest{
		Type:   "debit",
		Amount: 25,
	})
	require.NoError(t, err)

	// Сумма движения всегда положительная, направление кодируется типом
	assert.Equal(t, "debit", resp.Type)
	assert.InDelta(t, 25.0, resp.Amount, 1e-9)
	assert.InDelta(t, 10.0, repo.client.CreditBalance, 1e-9)
}

func TestAddMovement_InvalidType(t *testing.T) {
	repo := &fakeClientRepo{client: &domain.Client{ID: 5}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddMovement(context.Background(), 1, 5, &models.CreateMovementRequest{
		Type:   "refund",
		Amount: 25,
	})
	assert.ErrorIs(t, err, ErrInvalidMovementType)
	assert.Empty(t, repo.movements)
}

func TestAddMovement_NonPositiveAmount(t *testing.T) {
	repo := &fakeClientRepo{client: &domain.Client{ID: 5}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddMovement(context.Background(), 1, 5, &models.CreateMovementRequest{
		Type:   "credit",
		Amount: -3,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAddMovement_ClientNotFound(t *testing.T) {
	repo := &fakeClientRepo{getErr: clientRepo.ErrClientNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddMovement(context.Background(), 1, 5, &models.CreateMovementRequest{
		Type:   "credit",
		Amount: 10,
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetLedger_ReturnsCachedBalanceAndLedgerSum(t *testing.T) {
	repo := &fakeClientRepo{
		// Кэш намеренно расходится с журналом: журнал его не чинит
		client: &domain.Client{ID: 5, SalonID: 1, CreditBalance: 100},
		movements: []domain.ClientCreditMovement{
			{ID: 1, ClientID: 5, Type: domain.MovementCredit, Amount: 50},
			{ID: 2, ClientID: 5, Type: domain.MovementDebit, Amount: 20},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetLedger(context.Background(), 1, 5)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, resp.CreditBalance, 1e-9)
	assert.InDelta(t, 30.0, resp.LedgerSum, 1e-9)
	assert.Len(t, resp.Movements, 2)
}
