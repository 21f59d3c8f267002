package keeper

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/instruction"
)

var testProgram = solana.MustPublicKeyFromBase58("Stake11111111111111111111111111111111111111")

func accounts(n int) []config.KeeperJobAccount {
	out := []config.KeeperJobAccount{{UseSigner: true, IsSigner: true, Writable: true}}
	for len(out) < n {
		out = append(out, config.KeeperJobAccount{Pubkey: solana.NewWallet().PublicKey(), Writable: true})
	}
	return out
}

func instrID(v uint32) *uint32 { return &v }

func TestValidateJob(t *testing.T) {
	tests := []struct {
		name    string
		job     config.KeeperJob
		wantErr bool
	}{
		{"next voting", config.KeeperJob{Name: "v", Instruction: instruction.IxNextVoting.Number, Accounts: accounts(instruction.IxNextVoting.MinAccounts)}, false},
		{"garbage collector", config.KeeperJob{Name: "gc", Instruction: instruction.IxGarbageCollector.Number, InstrID: instrID(0), Accounts: accounts(instruction.IxGarbageCollector.MinAccounts)}, false},
		{"missing instr id", config.KeeperJob{Name: "gc", Instruction: instruction.IxGarbageCollector.Number, Accounts: accounts(instruction.IxGarbageCollector.MinAccounts)}, true},
		{"unexpected instr id", config.KeeperJob{Name: "v", Instruction: instruction.IxNextVoting.Number, InstrID: instrID(1), Accounts: accounts(instruction.IxNextVoting.MinAccounts)}, true},
		{"not a crank", config.KeeperJob{Name: "d", Instruction: instruction.IxDeposit.Number, Accounts: accounts(instruction.IxDeposit.MinAccounts)}, true},
		{"unknown opcode", config.KeeperJob{Name: "x", Instruction: 250}, true},
		{"too few accounts", config.KeeperJob{Name: "v", Instruction: instruction.IxNextVoting.Number, Accounts: accounts(1)}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateJob(tc.job)
			if (err != nil) != tc.wantErr {
				t.Errorf("got %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuildJobInstruction(t *testing.T) {
	signer := solana.NewWallet().PublicKey()
	job := config.KeeperJob{
		Name:        "clients",
		Instruction: instruction.IxPerpClientsProcessing.Number,
		InstrID:     instrID(2),
		Accounts:    accounts(instruction.IxPerpClientsProcessing.MinAccounts),
	}

	ix, err := buildJobInstruction(testProgram, signer, job, instruction.Context{InstrCount: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !ix.ProgramID().Equals(testProgram) {
		t.Errorf("program: got %s", ix.ProgramID())
	}
	data, err := ix.Data()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{instruction.IxPerpClientsProcessing.Number, 0, 0, 0, 2, 0, 0, 0}
	if fmt.Sprint(data) != fmt.Sprint(want) {
		t.Errorf("data: got %v, want %v", data, want)
	}
	metas := ix.Accounts()
	if len(metas) != len(job.Accounts) {
		t.Fatalf("accounts: got %d, want %d", len(metas), len(job.Accounts))
	}
	if !metas[0].PublicKey.Equals(signer) || !metas[0].IsSigner {
		t.Errorf("signer placeholder not resolved: %+v", metas[0])
	}

	_, err = buildJobInstruction(testProgram, signer, job, instruction.Context{InstrCount: 2})
	if !errors.Is(err, drverr.InvalidInstrID) {
		t.Errorf("instrument out of range: got %v", err)
	}
}

func TestBuildTagOnlyJob(t *testing.T) {
	job := config.KeeperJob{
		Name:        "dividends",
		Instruction: instruction.IxDividendsAllocation.Number,
		Accounts:    accounts(instruction.IxDividendsAllocation.MinAccounts),
	}
	ix, err := buildJobInstruction(testProgram, solana.NewWallet().PublicKey(), job, instruction.Context{})
	if err != nil {
		t.Fatal(err)
	}
	data, _ := ix.Data()
	if len(data) != 1 || data[0] != instruction.IxDividendsAllocation.Number {
		t.Errorf("data: got %v", data)
	}
}

func TestSchedule(t *testing.T) {
	sched := newSchedule([]config.KeeperJob{
		{Name: "fast", Interval: time.Second},
		{Name: "slow", Interval: time.Minute},
	})
	start := time.Unix(1_700_000_000, 0)

	if got := sched.due(start); len(got) != 2 {
		t.Fatalf("first call: got %d jobs, want 2", len(got))
	}
	if got := sched.due(start.Add(500 * time.Millisecond)); len(got) != 0 {
		t.Errorf("before interval: got %d jobs", len(got))
	}
	got := sched.due(start.Add(2 * time.Second))
	if len(got) != 1 || got[0].Name != "fast" {
		t.Errorf("after 2s: got %+v", got)
	}
	if got := sched.due(start.Add(time.Minute)); len(got) != 2 {
		t.Errorf("after 1m: got %d jobs, want 2", len(got))
	}
}

func TestProgramFailure(t *testing.T) {
	kind := drverr.InvalidPrice
	confirmErr := fmt.Errorf("confirm: %w", &txFailedError{raw: map[string]any{
		"InstructionError": []any{1, map[string]any{"Custom": kind.Code()}},
	}})
	attrs, ok := programFailure(confirmErr)
	if !ok {
		t.Fatal("failed transaction not recognised")
	}
	if !hasAttr(attrs, "error_name", kind.Name()) || !hasAttr(attrs, "instruction_index", 1) {
		t.Errorf("got %v", attrs)
	}

	preflight := fmt.Errorf("send: %w", &jsonrpc.RPCError{
		Code:    -32002,
		Message: "Transaction simulation failed",
		Data: map[string]any{
			"err":  map[string]any{"InstructionError": []any{0, map[string]any{"Custom": float64(kind.Code())}}},
			"logs": []any{`Program log: {"code":` + fmt.Sprint(kind.Code()) + `,"msg":"Invalid Price 5"}`},
		},
	})
	attrs, ok = programFailure(preflight)
	if !ok || !hasAttr(attrs, "error_msg", "Invalid Price 5") {
		t.Errorf("preflight: got %v, %v", attrs, ok)
	}

	if _, ok := programFailure(errors.New("timeout")); ok {
		t.Error("plain error recognised")
	}
}

func hasAttr(attrs []any, key string, want any) bool {
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == key {
			return fmt.Sprint(attrs[i+1]) == fmt.Sprint(want)
		}
	}
	return false
}

func TestWithComputeBudget(t *testing.T) {
	s := &Service{cfg: config.KeeperConfig{ComputeUnitLimit: 400_000, ComputeUnitPrice: 10}}
	crank := solana.NewInstruction(testProgram, nil, []byte{16})
	got, err := s.withComputeBudget(crank)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[2] != crank {
		t.Errorf("got %d instructions", len(got))
	}
	if s.computeBudget() != 400_000 {
		t.Errorf("budget: got %d", s.computeBudget())
	}

	s = &Service{}
	got, _ = s.withComputeBudget(crank)
	if len(got) != 1 || s.computeBudget() != defaultComputeUnits {
		t.Errorf("defaults: got %d instructions, budget %d", len(got), s.computeBudget())
	}
}
