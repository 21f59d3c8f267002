package indexer

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/deriverse/drv-smart-contract-common/internal/dex"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

// maxMultipleAccounts is the getMultipleAccounts key limit.
const maxMultipleAccounts = 100

func tokenRecord(token *state.TokenState, slot uint64) TokenRecord {
	return TokenRecord{
		TokenID:   token.ID,
		Address:   token.Address.String(),
		Decimals:  token.Decimals(),
		BaseCrncy: token.IsBaseCrncy(),
		Slot:      slot,
	}
}

// checkMintDecimals compares the decimals recorded in each token account
// with its mint. A mismatch means amounts of that token are scaled wrong.
func (s *Service) checkMintDecimals(ctx context.Context, tokens []*state.TokenState) {
	for start := 0; start < len(tokens); start += maxMultipleAccounts {
		batch := tokens[start:min(start+maxMultipleAccounts, len(tokens))]
		keys := make([]solana.PublicKey, len(batch))
		for i, token := range batch {
			keys[i] = token.Address
		}

		var result *rpc.GetMultipleAccountsResult
		err := s.withRetry(ctx, "get mints", func() (err error) {
			result, err = s.rpc.GetMultipleAccountsWithOpts(ctx, keys, &rpc.GetMultipleAccountsOpts{
				Commitment: s.cfg.Commitment,
				Encoding:   solana.EncodingBase64,
			})
			return err
		})
		if err != nil {
			s.logger.Warn("mint lookup failed", "tokens", len(batch), "err", err)
			return
		}
		for i, account := range result.Value {
			if i >= len(batch) {
				break
			}
			token := batch[i]
			if account == nil || account.Data == nil {
				s.logger.Warn("token mint missing", "token_id", token.ID, "mint", token.Address)
				continue
			}
			decimals, err := dex.MintDecimals(account.Data.GetBinary())
			if err != nil {
				s.logger.Warn("token mint unreadable", "token_id", token.ID, "mint", token.Address, "err", err)
				continue
			}
			if uint32(decimals) != token.Decimals() {
				s.logger.Warn("token decimals differ from mint",
					"token_id", token.ID,
					"mint", token.Address,
					"token_decimals", token.Decimals(),
					"mint_decimals", decimals,
				)
			}
		}
	}
}
