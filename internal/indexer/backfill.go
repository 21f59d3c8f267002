package indexer

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// maxSignaturesLimit is the getSignaturesForAddress page size ceiling.
const maxSignaturesLimit = 1000

// backfillLogs fetches the program's signatures newer than the stored
// cursor and ingests them oldest first. The stream may have stored some of
// them already; events are keyed by signature and index so replays are
// harmless.
func (s *Service) backfillLogs(ctx context.Context) error {
	cursor, err := s.store.LogCursor(ctx)
	if err != nil {
		return fmt.Errorf("read log cursor: %w", err)
	}

	var until solana.Signature
	if cursor != "" {
		until, err = solana.SignatureFromBase58(cursor)
		if err != nil {
			return fmt.Errorf("parse log cursor: %w", err)
		}
	}

	limit := s.cfg.BackfillLimit
	if limit <= 0 || limit > maxSignaturesLimit {
		limit = maxSignaturesLimit
	}
	fetch := func(ctx context.Context, before solana.Signature) (page []*rpc.TransactionSignature, err error) {
		opts := &rpc.GetSignaturesForAddressOpts{
			Limit:      &limit,
			Before:     before,
			Until:      until,
			Commitment: signatureCommitment(s.cfg.Commitment),
		}
		err = s.withRetry(ctx, "get signatures", func() (err error) {
			page, err = s.rpc.GetSignaturesForAddressWithOpts(ctx, s.cfg.ProgramID, opts)
			return err
		})
		return page, err
	}

	// Without a cursor there is nothing to catch up to; start from the
	// newest page instead of walking the program's whole history.
	maxPages := 0
	if until.IsZero() {
		maxPages = 1
	}
	signatures, err := collectSignatures(ctx, fetch, limit, maxPages)
	if err != nil {
		return err
	}
	if len(signatures) == 0 {
		return nil
	}

	for _, sig := range signatures {
		if err := s.backfillTransaction(ctx, sig); err != nil {
			// Leave the cursor behind the failed signature so the next
			// round retries it.
			return fmt.Errorf("backfill %s: %w", sig.Signature, err)
		}
		if err := s.store.WithTx(ctx, func(tx *Tx) error {
			return s.store.SetLogCursorTx(ctx, tx, sig.Signature.String())
		}); err != nil {
			return err
		}
	}
	s.logger.Info("log backfill complete", "transactions", len(signatures), "cursor", signatures[len(signatures)-1].Signature.String())
	return nil
}

type signaturePageFunc func(ctx context.Context, before solana.Signature) ([]*rpc.TransactionSignature, error)

// collectSignatures walks signature pages backwards from the newest until a
// page comes back short, and returns everything oldest first. maxPages of
// zero means no page cap.
func collectSignatures(ctx context.Context, fetch signaturePageFunc, limit, maxPages int) ([]*rpc.TransactionSignature, error) {
	var newestFirst []*rpc.TransactionSignature
	var before solana.Signature
	for pages := 0; maxPages == 0 || pages < maxPages; pages++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := fetch(ctx, before)
		if err != nil {
			return nil, err
		}
		var oldest *rpc.TransactionSignature
		for _, sig := range page {
			if sig == nil {
				continue
			}
			newestFirst = append(newestFirst, sig)
			oldest = sig
		}
		if len(page) < limit || oldest == nil || oldest.Signature == before {
			break
		}
		before = oldest.Signature
	}

	out := make([]*rpc.TransactionSignature, len(newestFirst))
	for i, sig := range newestFirst {
		out[len(newestFirst)-1-i] = sig
	}
	return out, nil
}

func (s *Service) backfillTransaction(ctx context.Context, sig *rpc.TransactionSignature) error {
	maxVersion := uint64(0)
	var result *rpc.GetTransactionResult
	err := s.withRetry(ctx, "get transaction", func() (err error) {
		result, err = s.rpc.GetTransaction(ctx, sig.Signature, &rpc.GetTransactionOpts{
			Encoding:                       solana.EncodingBase64,
			Commitment:                     signatureCommitment(s.cfg.Commitment),
			MaxSupportedTransactionVersion: &maxVersion,
		})
		return err
	})
	if err != nil {
		return err
	}
	if result == nil || result.Meta == nil {
		return nil
	}

	var blockTime int64
	if result.BlockTime != nil {
		blockTime = int64(*result.BlockTime)
	}
	return s.ingestTransaction(ctx, sig.Signature.String(), result.Slot, blockTime, result.Meta.Err, result.Meta.LogMessages)
}

// signatureCommitment maps processed to confirmed; the signature and
// transaction lookups reject processed.
func signatureCommitment(c rpc.CommitmentType) rpc.CommitmentType {
	if c == rpc.CommitmentProcessed {
		return rpc.CommitmentConfirmed
	}
	return c
}
