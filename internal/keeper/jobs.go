package keeper

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
	"github.com/deriverse/drv-smart-contract-common/internal/instruction"
)

// Cranks whose payload is the opcode byte alone.
var tagOnlyCranks = map[uint8]bool{
	instruction.IxNextVoting.Number:          true,
	instruction.IxDividendsAllocation.Number: true,
}

// Cranks whose payload names one instrument.
var instrCranks = map[uint8]bool{
	instruction.IxPerpStatisticsReset.Number:   true,
	instruction.IxPerpClientsProcessing.Number: true,
	instruction.IxGarbageCollector.Number:      true,
	instruction.IxCleanCandles.Number:          true,
}

// validateJob rejects jobs the keeper cannot build.
func validateJob(job config.KeeperJob) error {
	meta, ok := instruction.Lookup(job.Instruction)
	if !ok {
		return fmt.Errorf("job %s: unknown instruction %d", job.Name, job.Instruction)
	}
	switch {
	case tagOnlyCranks[job.Instruction]:
		if job.InstrID != nil {
			return fmt.Errorf("job %s: %s takes no instr_id", job.Name, meta.Name)
		}
	case instrCranks[job.Instruction]:
		if job.InstrID == nil {
			return fmt.Errorf("job %s: %s requires instr_id", job.Name, meta.Name)
		}
	default:
		return fmt.Errorf("job %s: %s is not a crank instruction", job.Name, meta.Name)
	}
	if err := instruction.CheckAccounts(meta, len(job.Accounts)); err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	return nil
}

func encodeJobData(job config.KeeperJob) ([]byte, error) {
	if job.InstrID != nil {
		return instruction.Encode(&instruction.InstrData{Tag: job.Instruction, InstrID: *job.InstrID})
	}
	return instruction.Encode(&instruction.EmptyData{Tag: job.Instruction})
}

// buildJobInstruction encodes the job and re-parses the bytes against ctx so
// out-of-range instrument ids fail here instead of on chain.
func buildJobInstruction(programID, signer solana.PublicKey, job config.KeeperJob, ctx instruction.Context) (solana.Instruction, error) {
	data, err := encodeJobData(job)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", job.Name, err)
	}
	meta, _, err := instruction.Parse(data, ctx)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", job.Name, err)
	}

	accounts := make(solana.AccountMetaSlice, 0, len(job.Accounts))
	for _, acc := range job.Accounts {
		key := acc.Pubkey
		if acc.UseSigner {
			key = signer
		}
		accounts = append(accounts, solana.NewAccountMeta(key, acc.Writable, acc.IsSigner))
	}
	if err := instruction.CheckAccounts(meta, len(accounts)); err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, accounts, data), nil
}

type scheduledJob struct {
	job     config.KeeperJob
	nextRun time.Time
}

// schedule tracks when each job is next due. Every job is due on the first
// call.
type schedule struct {
	jobs []*scheduledJob
}

func newSchedule(jobs []config.KeeperJob) *schedule {
	out := &schedule{jobs: make([]*scheduledJob, 0, len(jobs))}
	for _, job := range jobs {
		out.jobs = append(out.jobs, &scheduledJob{job: job})
	}
	return out
}

// due returns the jobs to run at now and moves each one interval ahead.
func (s *schedule) due(now time.Time) []config.KeeperJob {
	var out []config.KeeperJob
	for _, item := range s.jobs {
		if now.Before(item.nextRun) {
			continue
		}
		out = append(out, item.job)
		item.nextRun = now.Add(item.job.Interval)
	}
	return out
}
