package config

import (
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const testProgramID = "11111111111111111111111111111111"

func TestNormalizeKeySegment(t *testing.T) {
	cases := map[string]string{
		"db_dsn":         "DB_DSN",
		" log.level ":    "LOG_LEVEL",
		"rpc--retry max": "RPC_RETRY_MAX",
		"__x__":          "X",
		"":               "",
	}
	for in, want := range cases {
		if got := normalizeKeySegment(in); got != want {
			t.Errorf("normalizeKeySegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseConfigYAML(t *testing.T) {
	body := []byte(`
indexer:
  db-dsn: postgres://x
  account_types: [Root, Community]
  poll_interval: 2s
log:
  level: debug
empty:
`)
	got, err := parseConfigYAML(body)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"INDEXER_DB_DSN":        "postgres://x",
		"INDEXER_ACCOUNT_TYPES": "Root,Community",
		"INDEXER_POLL_INTERVAL": "2s",
		"LOG_LEVEL":             "debug",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("%s = %q, want %q", key, got[key], value)
		}
	}
	if _, ok := got["EMPTY"]; ok {
		t.Error("null value flattened")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_DURATION", "1500ms")
	t.Setenv("CFG_TEST_BAD_INT", "-2")
	t.Setenv("CFG_TEST_COMMITMENT", "Finalized")
	t.Setenv("CFG_TEST_BOOL", "nope")

	if d, err := envDuration("CFG_TEST_DURATION", time.Second); err != nil || d != 1500*time.Millisecond {
		t.Errorf("duration: got %v, %v", d, err)
	}
	if d, err := envDuration("CFG_TEST_UNSET", time.Second); err != nil || d != time.Second {
		t.Errorf("fallback: got %v, %v", d, err)
	}
	if _, err := envInt("CFG_TEST_BAD_INT", 1); err == nil || !strings.Contains(err.Error(), "CFG_TEST_BAD_INT") {
		t.Errorf("negative int: got %v", err)
	}
	if c, err := envCommitment("CFG_TEST_COMMITMENT", rpc.CommitmentConfirmed); err != nil || c != rpc.CommitmentFinalized {
		t.Errorf("commitment: got %v, %v", c, err)
	}
	if _, err := envBool("CFG_TEST_BOOL", false); err == nil {
		t.Error("bool: expected error")
	}
	if v, err := envOptionalUint("CFG_TEST_UNSET"); err != nil || v != nil {
		t.Errorf("optional uint: got %v, %v", v, err)
	}
}

func TestParseCSVEnv(t *testing.T) {
	got := parseCSVEnv(" a, ,b ,", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v", got)
	}
	if got := parseCSVEnv(" , ", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Errorf("got %v", got)
	}
}

func TestDeriveWSURL(t *testing.T) {
	cases := map[string]string{
		"http://127.0.0.1:8899":         "ws://127.0.0.1:8900",
		"https://api.devnet.solana.com": "wss://api.devnet.solana.com",
		"http://rpc.internal:9000/path": "ws://rpc.internal:9000/path",
		"ws://already":                  "ws://already",
	}
	for in, want := range cases {
		if got := DeriveWSURL(in); got != want {
			t.Errorf("DeriveWSURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseKeeperJobs(t *testing.T) {
	raw := `[
		{"name":"voting","instruction":16,"interval":"1m","accounts":[{"pubkey":"signer"},{"pubkey":"` + testProgramID + `","writable":true}]},
		{"instruction":57,"instr_id":3}
	]`
	jobs, err := ParseKeeperJobs(raw, 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].Name != "voting" || jobs[0].Instruction != 16 || jobs[0].Interval != time.Minute {
		t.Errorf("job 0: got %+v", jobs[0])
	}
	if !jobs[0].Accounts[0].UseSigner || !jobs[0].Accounts[0].IsSigner {
		t.Errorf("signer placeholder: got %+v", jobs[0].Accounts[0])
	}
	if !jobs[0].Accounts[1].Writable || jobs[0].Accounts[1].Pubkey != solana.SystemProgramID {
		t.Errorf("account 1: got %+v", jobs[0].Accounts[1])
	}
	if jobs[1].Name != "job-1" || jobs[1].Interval != 5*time.Second || jobs[1].InstrID == nil || *jobs[1].InstrID != 3 {
		t.Errorf("job 1: got %+v", jobs[1])
	}

	bad := []string{
		`{}`,
		`[{"name":"x"}]`,
		`[{"instruction":300}]`,
		`[{"instruction":1,"interval":"soon"}]`,
		`[{"instruction":1,"instr_id":-1}]`,
		`[{"instruction":1,"accounts":[{"pubkey":"not-a-key"}]}]`,
	}
	for _, in := range bad {
		if _, err := ParseKeeperJobs(in, time.Second); err == nil {
			t.Errorf("ParseKeeperJobs(%s) succeeded", in)
		}
	}
}

func TestLoadIndexerConfigRequiresProgramID(t *testing.T) {
	t.Setenv("PROGRAM_ID", "")
	if _, err := LoadIndexerConfig(); err == nil {
		t.Error("missing PROGRAM_ID accepted")
	}
}

func TestLoadIndexerConfig(t *testing.T) {
	t.Setenv("PROGRAM_ID", testProgramID)
	t.Setenv("SOLANA_RPC_URL", "https://rpc.example")
	t.Setenv("INDEXER_ACCOUNT_TYPES", "Root,Instr")
	t.Setenv("INDEXER_LOG_LEVEL", "debug")

	cfg, err := LoadIndexerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProgramID != solana.SystemProgramID {
		t.Errorf("program id: got %s", cfg.ProgramID)
	}
	if cfg.WSURL != "wss://rpc.example" {
		t.Errorf("ws url: got %q", cfg.WSURL)
	}
	if len(cfg.AccountTypes) != 2 || cfg.AccountTypes[1] != "Instr" {
		t.Errorf("account types: got %v", cfg.AccountTypes)
	}
	if cfg.Log.Level != "debug" || cfg.Log.MaxSizeMB != 100 {
		t.Errorf("log: got %+v", cfg.Log)
	}
}

func TestLoadKeeperConfig(t *testing.T) {
	t.Setenv("PROGRAM_ID", testProgramID)
	t.Setenv("KEEPER_KEYPAIR_PATH", "/tmp/keeper.json")
	t.Setenv("KEEPER_MAX_RETRIES", "2")
	t.Setenv("KEEPER_JOBS_JSON", `[{"instruction":60,"instr_id":1}]`)

	cfg, err := LoadKeeperConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.KeypairPath != "/tmp/keeper.json" {
		t.Errorf("keypair: got %q", cfg.KeypairPath)
	}
	if cfg.MaxRetries == nil || *cfg.MaxRetries != 2 {
		t.Errorf("max retries: got %v", cfg.MaxRetries)
	}
	if len(cfg.Jobs) != 1 || cfg.Jobs[0].Interval != cfg.PollInterval {
		t.Errorf("jobs: got %+v", cfg.Jobs)
	}
}
