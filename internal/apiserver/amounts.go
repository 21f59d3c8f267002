package apiserver

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/deriverse/drv-smart-contract-common/internal/dex"
	"github.com/deriverse/drv-smart-contract-common/internal/indexer"
	"github.com/deriverse/drv-smart-contract-common/internal/report"
)

// eventView is an indexed event with its raw amounts scaled for display.
type eventView struct {
	indexer.EventRecord
	AmountUI *decimal.Decimal `json:"amount_ui,omitempty"`
	PriceUI  *decimal.Decimal `json:"price_ui,omitempty"`
}

var tokenLogTypes = map[uint8]bool{
	report.LogDeposit:      true,
	report.LogWithdraw:     true,
	report.LogFeesDeposit:  true,
	report.LogFeesWithdraw: true,
	report.LogEarnings:     true,
}

type scaledFields struct {
	TokenID *uint32 `json:"TokenID"`
	Amount  *int64  `json:"Amount"`
	Price   *int64  `json:"Price"`
}

func (s *Service) tokenDecimals(ctx context.Context) map[uint32]uint32 {
	tokens, err := s.store.ListTokens(ctx)
	if err != nil {
		s.logger.Warn("list tokens failed", "err", err)
		return nil
	}
	out := make(map[uint32]uint32, len(tokens))
	for _, token := range tokens {
		out[token.TokenID] = token.Decimals
	}
	return out
}

// scaleEvents attaches amount_ui to token movements whose token decimals are
// known and price_ui to every record carrying a Price.
func scaleEvents(events []indexer.EventRecord, decimals map[uint32]uint32) []eventView {
	out := make([]eventView, 0, len(events))
	for _, event := range events {
		view := eventView{EventRecord: event}
		var fields scaledFields
		if err := json.Unmarshal(event.Payload, &fields); err == nil {
			if tokenLogTypes[event.LogType] && fields.TokenID != nil && fields.Amount != nil {
				if d, ok := decimals[*fields.TokenID]; ok {
					amount := dex.ScaleAmount(*fields.Amount, d)
					view.AmountUI = &amount
				}
			}
			if fields.Price != nil {
				price := dex.ScalePrice(*fields.Price)
				view.PriceUI = &price
			}
		}
		out = append(out, view)
	}
	return out
}
