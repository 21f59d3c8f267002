package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

type Service struct {
	cfg          config.IndexerConfig
	rpc          *rpc.Client
	store        *Store
	logger       *slog.Logger
	accountTypes []models.AccountType
}

func New(cfg config.IndexerConfig, logger *slog.Logger) (*Service, error) {
	accountTypes, err := ResolveAccountTypes(cfg.AccountTypes)
	if err != nil {
		return nil, err
	}
	store, err := NewStore(cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	return &Service{
		cfg:          cfg,
		rpc:          rpc.New(cfg.RPCURL),
		store:        store,
		logger:       logger,
		accountTypes: accountTypes,
	}, nil
}

func (s *Service) Run(ctx context.Context) error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("failed to close store", "err", err)
		}
	}()

	s.logger.Info("indexer started",
		"rpc", s.cfg.RPCURL,
		"program", s.cfg.ProgramID.String(),
		"db_driver", "postgres",
		"commitment", s.cfg.Commitment,
		"account_types", len(s.accountTypes),
		"log_stream", s.cfg.EnableLogStream,
	)

	if err := s.syncOnce(ctx); err != nil {
		s.logger.Error("initial sync failed", "err", err)
	}
	if err := s.backfillLogs(ctx); err != nil {
		s.logger.Error("initial log backfill failed", "err", err)
	}
	if s.cfg.EnableLogStream {
		stream := NewLogStream(s.cfg.WSURL, s.cfg.ProgramID, s.cfg.Commitment, s.cfg.ReconnectInterval, s.logger, s.handleLogNotification)
		go stream.Run(ctx)
	}

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("indexer stopped")
			return nil
		case <-ticker.C:
			if err := s.syncOnce(ctx); err != nil {
				s.logger.Error("sync failed", "err", err)
			}
			if err := s.backfillLogs(ctx); err != nil {
				s.logger.Error("log backfill failed", "err", err)
			}
		}
	}
}

func (s *Service) syncOnce(ctx context.Context) error {
	var slot uint64
	err := s.withRetry(ctx, "get slot", func() (err error) {
		slot, err = s.rpc.GetSlot(ctx, s.cfg.Commitment)
		return err
	})
	if err != nil {
		return err
	}

	stats := map[string]int{}
	var scanned []scannedAccount
	for _, accountType := range s.accountTypes {
		items, err := s.scanAccounts(ctx, slot, accountType)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			stats[accountType.Name()] = len(items)
		}
		scanned = append(scanned, items...)
	}

	var tokens []*state.TokenState
	err = s.store.WithTx(ctx, func(tx *Tx) error {
		tokens = tokens[:0]
		for _, item := range scanned {
			if err := s.store.UpsertAccountTx(ctx, tx, item.pubkey, slot, item.lamports, item.dataLen, item.snapshot); err != nil {
				return fmt.Errorf("upsert %s %s: %w", item.snapshot.Type.Name(), item.pubkey, err)
			}
			if token, ok := item.snapshot.Header.(*state.TokenState); ok {
				if err := s.store.UpsertTokenTx(ctx, tx, tokenRecord(token, slot)); err != nil {
					return fmt.Errorf("upsert token %d: %w", token.ID, err)
				}
				tokens = append(tokens, token)
			}
		}
		return s.store.UpsertSyncStateTx(ctx, tx, slot)
	})
	if err != nil {
		return err
	}
	if len(tokens) > 0 {
		s.checkMintDecimals(ctx, tokens)
	}

	s.logger.Info("sync complete", "slot", slot, "accounts", len(scanned), "types", len(stats))
	return nil
}

type scannedAccount struct {
	pubkey   solana.PublicKey
	lamports uint64
	dataLen  int
	snapshot *AccountSnapshot
}

// scanAccounts fetches every account of one type through a memcmp on its
// tag and decodes the headers.
func (s *Service) scanAccounts(ctx context.Context, slot uint64, accountType models.AccountType) ([]scannedAccount, error) {
	var accounts rpc.GetProgramAccountsResult
	err := s.withRetry(ctx, "scan "+accountType.Name(), func() (err error) {
		accounts, err = s.rpc.GetProgramAccountsWithOpts(ctx, s.cfg.ProgramID, &rpc.GetProgramAccountsOpts{
			Commitment: s.cfg.Commitment,
			Encoding:   solana.EncodingBase64,
			Filters: []rpc.RPCFilter{
				{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: solana.Base58(models.TagBytes(accountType.Tag()))}},
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.decodeAccounts(slot, accountType, accounts), nil
}

// decodeAccounts decodes a scan result. Accounts that fail to decode are
// logged and skipped.
func (s *Service) decodeAccounts(slot uint64, accountType models.AccountType, accounts rpc.GetProgramAccountsResult) []scannedAccount {
	out := make([]scannedAccount, 0, len(accounts))
	for _, item := range accounts {
		if item == nil || item.Account == nil || item.Account.Data == nil {
			continue
		}
		data := item.Account.Data.GetBinary()
		snapshot, err := DecodeAccount(data)
		if err != nil {
			s.logger.Warn("failed to index account",
				"account_type", accountType.String(),
				"pubkey", item.Pubkey,
				"slot", slot,
				"err", err,
			)
			continue
		}
		out = append(out, scannedAccount{
			pubkey:   item.Pubkey,
			lamports: item.Account.Lamports,
			dataLen:  len(data),
			snapshot: snapshot,
		})
	}
	return out
}

func (s *Service) handleLogNotification(ctx context.Context, n LogNotification) error {
	var txErr any
	if n.Failed() {
		txErr = n.Err
	}
	return s.ingestTransaction(ctx, n.Signature, n.Slot, time.Now().Unix(), txErr, n.Logs)
}

// ingestTransaction stores the records and the failure, if any, of one
// transaction.
func (s *Service) ingestTransaction(ctx context.Context, signature string, slot uint64, blockTime int64, txErr any, logs []string) error {
	batch := ParseLogs(s.cfg.ProgramID, signature, slot, blockTime, logs)
	if batch.Skipped > 0 {
		s.logger.Warn("undecodable program data", "signature", signature, "lines", batch.Skipped)
	}

	var failure *TxFailure
	if txErr != nil {
		if f, ok := FailureFromError(signature, slot, blockTime, txErr); ok {
			f.Annotate(batch.Diagnostics)
			failure = &f
		}
	}
	if len(batch.Events) == 0 && failure == nil {
		return nil
	}

	return s.store.WithTx(ctx, func(tx *Tx) error {
		inserted, err := s.store.InsertEventsTx(ctx, tx, batch.Events)
		if err != nil {
			return err
		}
		if failure != nil {
			if err := s.store.UpsertTxErrorTx(ctx, tx, *failure); err != nil {
				return err
			}
			s.logger.Info("transaction failed", "signature", signature, "code", failure.Code, "name", failure.Name)
		}
		if inserted > 0 {
			s.logger.Debug("events stored", "signature", signature, "count", inserted)
		}
		return nil
	})
}

// withRetry retries an RPC call with exponential backoff between the
// configured base and max delays.
func (s *Service) withRetry(ctx context.Context, op string, fn func() error) error {
	delay := s.cfg.RPCRetryBaseDelay
	var err error
	for attempt := 0; attempt <= s.cfg.RPCMaxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == s.cfg.RPCMaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, s.cfg.RPCRetryMaxDelay)
	}
	return fmt.Errorf("%s: %w", op, err)
}
