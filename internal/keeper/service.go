package keeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/instruction"
	"github.com/deriverse/drv-smart-contract-common/internal/logging"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

// defaultComputeUnits is the runtime budget of a transaction without a
// SetComputeUnitLimit instruction.
const defaultComputeUnits = 200_000

var errNoRoot = errors.New("root account not found")

type Service struct {
	cfg      config.KeeperConfig
	rpc      *rpc.Client
	signer   solana.PrivateKey
	logger   *slog.Logger
	schedule *schedule
}

func New(cfg config.KeeperConfig, logger *slog.Logger) (*Service, error) {
	if len(cfg.Jobs) == 0 {
		return nil, errors.New("no keeper jobs configured (set KEEPER_JOBS_JSON)")
	}
	for _, job := range cfg.Jobs {
		if err := validateJob(job); err != nil {
			return nil, err
		}
	}

	signer, err := solana.PrivateKeyFromSolanaKeygenFile(cfg.KeypairPath)
	if err != nil {
		return nil, fmt.Errorf("load keypair %q: %w", cfg.KeypairPath, err)
	}

	return &Service{
		cfg:      cfg,
		rpc:      rpc.New(cfg.RPCURL),
		signer:   signer,
		logger:   logger,
		schedule: newSchedule(cfg.Jobs),
	}, nil
}

func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("keeper started",
		"rpc", s.cfg.RPCURL,
		"commitment", s.cfg.Commitment,
		"signer", s.signer.PublicKey(),
		"program", s.cfg.ProgramID,
		"jobs", len(s.cfg.Jobs),
	)

	if err := s.tick(ctx); err != nil {
		s.logger.Error("keeper tick failed", "err", err)
	}

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("keeper stopped")
			return nil
		case <-ticker.C:
			if err := s.tick(ctx); err != nil {
				s.logger.Error("keeper tick failed", "err", err)
			}
		}
	}
}

func (s *Service) tick(ctx context.Context) error {
	jobs := s.schedule.due(time.Now())
	if len(jobs) == 0 {
		return nil
	}

	validation, err := s.loadContext(ctx)
	if err != nil {
		return err
	}

	sent, failed := 0, 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.runJob(ctx, job, validation); err != nil {
			failed++
			s.logJobFailure(job, err)
			continue
		}
		sent++
	}
	s.logger.Info("keeper tick complete", "due", len(jobs), "sent", sent, "failed", failed)
	return nil
}

// loadContext reads the root account so job payloads are validated against
// the live instrument count.
func (s *Service) loadContext(ctx context.Context) (instruction.Context, error) {
	accounts, err := s.rpc.GetProgramAccountsWithOpts(ctx, s.cfg.ProgramID, &rpc.GetProgramAccountsOpts{
		Commitment: s.cfg.Commitment,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: solana.Base58(models.TagBytes(models.AccountRoot.Tag()))}},
		},
	})
	if err != nil {
		return instruction.Context{}, fmt.Errorf("fetch root account: %w", err)
	}
	for _, item := range accounts {
		if item == nil || item.Account == nil || item.Account.Data == nil {
			continue
		}
		root, err := state.DecodeRoot(item.Account.Data.GetBinary())
		if err != nil {
			s.logger.Warn("failed to decode root account", "pubkey", item.Pubkey, "err", err)
			continue
		}
		validation := instruction.ContextFromRoot(root)
		validation.Now = uint32(s.getClusterUnixTime(ctx))
		return validation, nil
	}
	return instruction.Context{}, fmt.Errorf("%w for program %s", errNoRoot, s.cfg.ProgramID)
}

func (s *Service) runJob(ctx context.Context, job config.KeeperJob, validation instruction.Context) error {
	crank, err := buildJobInstruction(s.cfg.ProgramID, s.signer.PublicKey(), job, validation)
	if err != nil {
		return err
	}
	instructions, err := s.withComputeBudget(crank)
	if err != nil {
		return err
	}

	meter := &logging.StaticMeter{Remaining: s.computeBudget()}
	return logging.MeasureCU(s.logger, meter, job.Name, func() error {
		txCtx, cancel := context.WithTimeout(ctx, s.cfg.TxTimeout)
		defer cancel()

		signature, err := s.sendTransaction(txCtx, instructions)
		if err != nil {
			return fmt.Errorf("send %s transaction: %w", job.Name, err)
		}
		if err := s.waitForConfirmation(txCtx, signature); err != nil {
			return fmt.Errorf("confirm %s %s: %w", job.Name, signature, err)
		}
		if units, ok := s.consumedUnits(txCtx, signature); ok {
			meter.Consume(units)
		}
		s.logger.Info("crank sent", "job", job.Name, "instruction", job.Instruction, "signature", signature)
		return nil
	})
}

func (s *Service) computeBudget() uint64 {
	if s.cfg.ComputeUnitLimit > 0 {
		return uint64(s.cfg.ComputeUnitLimit)
	}
	return defaultComputeUnits
}

func (s *Service) withComputeBudget(ix solana.Instruction) ([]solana.Instruction, error) {
	instructions := make([]solana.Instruction, 0, 3)
	if s.cfg.ComputeUnitLimit > 0 {
		cuLimitIx, err := computebudget.NewSetComputeUnitLimitInstruction(s.cfg.ComputeUnitLimit).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("build compute unit limit instruction: %w", err)
		}
		instructions = append(instructions, cuLimitIx)
	}
	if s.cfg.ComputeUnitPrice > 0 {
		cuPriceIx, err := computebudget.NewSetComputeUnitPriceInstruction(s.cfg.ComputeUnitPrice).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("build compute unit price instruction: %w", err)
		}
		instructions = append(instructions, cuPriceIx)
	}
	return append(instructions, ix), nil
}

func (s *Service) getClusterUnixTime(ctx context.Context) int64 {
	slot, err := s.rpc.GetSlot(ctx, s.cfg.Commitment)
	if err != nil {
		s.logger.Warn("using local clock because getSlot failed", "err", err)
		return time.Now().Unix()
	}

	blockTime, err := s.rpc.GetBlockTime(ctx, slot)
	if err != nil || blockTime == nil {
		s.logger.Warn("using local clock because getBlockTime unavailable", "slot", slot, "err", err)
		return time.Now().Unix()
	}

	return int64(*blockTime)
}

func (s *Service) sendTransaction(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error) {
	recent, err := s.rpc.GetLatestBlockhash(ctx, s.cfg.Commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(s.signer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if s.signer.PublicKey().Equals(key) {
			return &s.signer
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("sign transaction: %w", err)
	}

	opts := rpc.TransactionOpts{
		SkipPreflight:       s.cfg.SkipPreflight,
		PreflightCommitment: s.cfg.Commitment,
	}
	if s.cfg.MaxRetries != nil {
		retries := *s.cfg.MaxRetries
		opts.MaxRetries = &retries
	}

	return s.rpc.SendTransactionWithOpts(ctx, tx, opts)
}

// txFailedError carries the status error of a landed but failed transaction.
type txFailedError struct {
	raw any
}

func (e *txFailedError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.raw)
}

func (s *Service) waitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(700 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			result, err := s.rpc.GetSignatureStatuses(ctx, true, sig)
			if err != nil {
				continue
			}
			if len(result.Value) == 0 || result.Value[0] == nil {
				continue
			}
			status := result.Value[0]
			if status.Err != nil {
				return &txFailedError{raw: status.Err}
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
	}
}

func (s *Service) consumedUnits(ctx context.Context, sig solana.Signature) (uint64, bool) {
	maxVersion := uint64(0)
	result, err := s.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil || result == nil || result.Meta == nil || result.Meta.ComputeUnitsConsumed == nil {
		return 0, false
	}
	return *result.Meta.ComputeUnitsConsumed, true
}

func (s *Service) logJobFailure(job config.KeeperJob, err error) {
	attrs := []any{"job", job.Name, "instruction", job.Instruction, "err", err}
	if failure, ok := programFailure(err); ok {
		attrs = append(attrs, failure...)
	}
	s.logger.Warn("crank failed", attrs...)
}

// programFailure names the program error behind a failed send or
// confirmation, when there is one.
func programFailure(err error) ([]any, bool) {
	var raw any
	var logs []string

	var failed *txFailedError
	var rpcErr *jsonrpc.RPCError
	switch {
	case errors.As(err, &failed):
		raw = failed.raw
	case errors.As(err, &rpcErr):
		data, ok := rpcErr.Data.(map[string]any)
		if !ok {
			return nil, false
		}
		raw = data["err"]
		if lines, ok := data["logs"].([]any); ok {
			for _, line := range lines {
				if text, ok := line.(string); ok {
					logs = append(logs, text)
				}
			}
		}
	default:
		return nil, false
	}

	index, code, ok := drverr.ParseInstructionError(raw)
	if !ok {
		return nil, false
	}
	name := fmt.Sprintf("Custom(%d)", code)
	if kind, known := drverr.LookupCode(code); known {
		name = kind.Name()
	}
	attrs := []any{"instruction_index", index, "code", code, "error_name", name}
	for _, line := range logs {
		if diag, ok := drverr.ParseDiagnostic(line); ok && diag.Code == code {
			attrs = append(attrs, "error_msg", diag.Msg)
			break
		}
	}
	return attrs, true
}
