package service

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// SummaryService builds the balance overview sent with /resumen and in the
// periodic broadcast to registered users.
type SummaryService struct {
	ledger *LedgerService
}

func NewSummaryService(ledger *LedgerService) *SummaryService {
	return &SummaryService{ledger: ledger}
}

// BalanceSummary returns an HTML snapshot of every savings account.
func (s *SummaryService) BalanceSummary(ctx context.Context) (string, error) {
	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts configured")
	}

	var builder strings.Builder
	builder.WriteString("💰 <b>Resumen de tus cajas de ahorro</b>\n")
	for _, account := range accounts {
		builder.WriteString(fmt.Sprintf("• %s: %s\n", html.EscapeString(account.Name), FormatMoney(account, account.Balance)))
	}
	return strings.TrimSpace(builder.String()), nil
}
