package models

import (
	"time"

	"github.com/nkosach/SLN-SalonService/internal/domain"
)

// Request модели

// CreateMovementRequest запрос на запись движения кредита
type CreateMovementRequest struct {
	Type        string  `json:"type"` // credit | debit
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Response модели

// MovementResponse одна запись кредитного журнала
type MovementResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"clientId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LedgerResponse журнал клиента вместе с балансами.
// CreditBalance - кэшированный баланс из карточки клиента,
// LedgerSum - подписанная сумма журнала. Расхождение между ними
// сигнализирует о дрейфе кэша.
type LedgerResponse struct {
	ClientID      int64              `json:"clientId"`
	CreditBalance float64            `json:"creditBalance"`
	LedgerSum     float64            `json:"ledgerSum"`
	Movements     []MovementResponse `json:"movements"`
}

// Методы конвертации

// FromDomainMovement конвертирует domain модель в DTO
func FromDomainMovement(m *domain.ClientCreditMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Type:        string(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomainLedger собирает журнал клиента с балансами
func FromDomainLedger(client *domain.Client, movements []domain.ClientCreditMovement) *LedgerResponse {
	resp := &LedgerResponse{
		ClientID:      client.ID,
		CreditBalance: client.CreditBalance,
		LedgerSum:     domain.SumMovements(movements),
		Movements:     make([]MovementResponse, len(movements)),
	}
	for i := range movements {
		if movementResp := FromDomainMovement(&movements[i]); movementResp != nil {
			resp.Movements[i] = *movementResp
		}
	}
	return resp
}
