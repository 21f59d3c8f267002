package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
)

// SignerPlaceholder in a job account list stands for the keeper's own key.
const SignerPlaceholder = "signer"

// KeeperJob is one periodically sent crank instruction.
type KeeperJob struct {
	Name        string
	Instruction uint8
	Interval    time.Duration
	// InstrID is the payload of instrument-scoped cranks.
	InstrID  *uint32
	Accounts []KeeperJobAccount
}

type KeeperJobAccount struct {
	Pubkey   solana.PublicKey
	IsSigner bool
	Writable bool
	// UseSigner is set for the SignerPlaceholder entry; Pubkey is then
	// filled in by the keeper.
	UseSigner bool
}

type keeperJobJSON struct {
	Name        string `json:"name"`
	Instruction *int   `json:"instruction"`
	Interval    string `json:"interval"`
	InstrID     *int64 `json:"instr_id"`
	Accounts    []struct {
		Pubkey   string `json:"pubkey"`
		Writable bool   `json:"writable"`
		Signer   bool   `json:"signer"`
	} `json:"accounts"`
}

// ParseKeeperJobs reads the KEEPER_JOBS_JSON array. A job without interval
// runs every defaultInterval.
func ParseKeeperJobs(raw string, defaultInterval time.Duration) ([]KeeperJob, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var decoded []keeperJobJSON
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid KEEPER_JOBS_JSON: %w", err)
	}

	jobs := make([]KeeperJob, 0, len(decoded))
	for i, item := range decoded {
		if item.Instruction == nil || *item.Instruction < 0 || *item.Instruction > 255 {
			return nil, fmt.Errorf("invalid KEEPER_JOBS_JSON[%d]: instruction must be 0..255", i)
		}
		job := KeeperJob{
			Name:        strings.TrimSpace(item.Name),
			Instruction: uint8(*item.Instruction),
			Interval:    defaultInterval,
		}
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i)
		}
		if item.Interval != "" {
			d, err := time.ParseDuration(item.Interval)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("invalid KEEPER_JOBS_JSON[%d].interval %q", i, item.Interval)
			}
			job.Interval = d
		}
		if item.InstrID != nil {
			if *item.InstrID < 0 || *item.InstrID > int64(^uint32(0)) {
				return nil, fmt.Errorf("invalid KEEPER_JOBS_JSON[%d].instr_id %d", i, *item.InstrID)
			}
			id := uint32(*item.InstrID)
			job.InstrID = &id
		}
		for j, acc := range item.Accounts {
			entry := KeeperJobAccount{IsSigner: acc.Signer, Writable: acc.Writable}
			if strings.EqualFold(strings.TrimSpace(acc.Pubkey), SignerPlaceholder) {
				entry.UseSigner = true
				entry.IsSigner = true
			} else {
				pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(acc.Pubkey))
				if err != nil {
					return nil, fmt.Errorf("invalid KEEPER_JOBS_JSON[%d].accounts[%d]: %w", i, j, err)
				}
				entry.Pubkey = pk
			}
			job.Accounts = append(job.Accounts, entry)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
