package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumMovements_SignedSum(t *testing.T) {
	movements := []ClientCreditMovement{
		{Type: MovementCredit, Amount: 50},
		{Type: MovementDebit, Amount: 20},
		{Type: MovementCredit, Amount: 10},
	}

	assert.InDelta(t, 40.0, SumMovements(movements), 1e-9)
}

func TestSumMovements_AppendDoesNotAlterHistory(t *testing.T) {
	movements := []ClientCreditMovement{
		{ID: 1, Type: MovementCredit, Amount: 50},
		{ID: 2, Type: MovementDebit, Amount: 20},
	}
	before := make([]ClientCreditMovement, len(movements))
	copy(before, movements)

	movements = append(movements, ClientCreditMovement{ID: 3, Type: MovementCredit, Amount: 10})

	assert.Equal(t, before, movements[:2])
	assert.InDelta(t, 40.0, SumMovements(movements), 1e-9)
}

func TestSignedAmount(t *testing.T) {
	credit := ClientCreditMovement{Type: MovementCredit, Amount: 15}
	debit := ClientCreditMovement{Type: MovementDebit, Amount: 15}

	assert.InDelta(t, 15.0, credit.SignedAmount(), 1e-9)
	assert.InDelta(t, -15.0, debit.SignedAmount(), 1e-9)
}
