package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gorilla/websocket"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/report"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

var testProgram = solana.MustPublicKeyFromBase58("Stake11111111111111111111111111111111111111")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeAccountRoot(t *testing.T) {
	raw, err := layout.Encode(&state.RootState{
		Discriminator: models.NewDiscriminator(models.AccountRoot.Tag(), 2),
		TokensCount:   3,
	})
	if err != nil {
		t.Fatal(err)
	}
	snap, err := DecodeAccount(raw)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Type != models.AccountRoot || snap.Version != 2 {
		t.Errorf("got %s v%d, want Root v2", snap.Type, snap.Version)
	}
	root, ok := snap.Header.(*state.RootState)
	if !ok || root.TokensCount != 3 {
		t.Errorf("header: got %#v", snap.Header)
	}
	if _, err := json.Marshal(snap.Header); err != nil {
		t.Errorf("marshal header: %v", err)
	}
}

func TestDecodeAccountTagged(t *testing.T) {
	header := state.PerpTradeAccountHeader{
		Discriminator: models.NewDiscriminator(models.AccountPerpLines.Tag(), 1),
		ID:            7,
	}
	raw, err := layout.Encode(&header)
	if err != nil {
		t.Fatal(err)
	}
	raw = append(raw, make([]byte, 64)...)
	snap, err := DecodeAccount(raw)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := snap.Header.(*state.PerpTradeAccountHeader)
	if !ok || got.ID != 7 {
		t.Errorf("header: got %#v", snap.Header)
	}
}

func TestDecodeAccountCandles(t *testing.T) {
	header := state.CandlesAccountHeader{Discriminator: models.NewDiscriminator(models.AccountSpot15MCandles.Tag(), 1)}
	raw, err := layout.Encode(&header)
	if err != nil {
		t.Fatal(err)
	}
	raw = append(raw, make([]byte, 2*state.CandleSize)...)
	snap, err := DecodeAccount(raw)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Records != 2 {
		t.Errorf("got %d candles, want 2", snap.Records)
	}
}

func TestDecodeAccountErrors(t *testing.T) {
	if _, err := DecodeAccount(make([]byte, 16)); !errors.Is(err, drverr.AccountNotInitialized) {
		t.Errorf("zero buffer: got %v", err)
	}
	unknown := make([]byte, 16)
	unknown[0] = 99
	unknown[4] = 1
	if _, err := DecodeAccount(unknown); !errors.Is(err, drverr.UnknownAccountType) {
		t.Errorf("tag 99: got %v", err)
	}
}

func TestEveryAccountTypeHasDecoder(t *testing.T) {
	for _, at := range models.AccountTypes() {
		if _, ok := accountDecoders[at]; !ok {
			t.Errorf("%s has no decoder", at)
		}
	}
}

func TestResolveAccountTypes(t *testing.T) {
	all, err := ResolveAccountTypes(nil)
	if err != nil || len(all) != len(models.AccountTypes()) {
		t.Errorf("empty list: got %d, %v", len(all), err)
	}
	got, err := ResolveAccountTypes([]string{"root", "Community"})
	if err != nil || len(got) != 2 || got[1] != models.AccountCommunity {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := ResolveAccountTypes([]string{"Orders"}); err == nil {
		t.Error("unknown name accepted")
	}
}

func programData(t *testing.T, r report.Report) string {
	t.Helper()
	line, err := report.FormatProgramData(r)
	if err != nil {
		t.Fatal(err)
	}
	return line
}

func TestParseLogs(t *testing.T) {
	program := testProgram.String()
	other := solana.TokenProgramID.String()
	deposit := &report.DepositReport{ClientID: 1, TokenID: 2, Amount: 500}
	lines := []string{
		"Program " + program + " invoke [1]",
		"Program log: Instruction: Deposit",
		"Program " + other + " invoke [2]",
		programData(t, &report.WithdrawReport{Amount: 9}),
		"Program " + other + " success",
		programData(t, deposit),
		report.ProgramDataPrefix + "!!!",
		`Program log: {"code":251,"msg":"boom"}`,
		"Program " + program + " consumed 5000 of 200000 compute units",
		"Program " + program + " success",
		programData(t, &report.EarningsReport{Amount: 1}),
	}

	batch := ParseLogs(testProgram, "sig", 10, 1700, lines)
	if len(batch.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(batch.Events))
	}
	ev := batch.Events[0]
	if ev.Kind != "deposit" || ev.LogIndex != 0 || ev.Slot != 10 || ev.Signature != "sig" {
		t.Errorf("event: got %+v", ev)
	}
	if got := ev.Report.(*report.DepositReport); got.Amount != 500 {
		t.Errorf("amount: got %d, want 500", got.Amount)
	}
	if batch.Skipped != 1 {
		t.Errorf("skipped: got %d, want 1", batch.Skipped)
	}
	if len(batch.Diagnostics) != 1 || batch.Diagnostics[0].Code != 251 {
		t.Errorf("diagnostics: got %+v", batch.Diagnostics)
	}
}

func TestFailureFromError(t *testing.T) {
	kind := drverr.InvalidPrice
	raw := json.RawMessage(`{"InstructionError":[2,{"Custom":` + jsonNumber(kind.Code()) + `}]}`)
	failure, ok := FailureFromError("sig", 5, 0, raw)
	if !ok {
		t.Fatal("custom error not recognised")
	}
	if failure.InstructionIndex != 2 || failure.Name != kind.Name() {
		t.Errorf("got %+v", failure)
	}
	failure.Annotate([]*drverr.Diagnostic{{Code: 1, Msg: "other"}, {Code: kind.Code(), Msg: "rendered"}})
	if failure.Message != "rendered" {
		t.Errorf("message: got %q", failure.Message)
	}

	unknown, ok := FailureFromError("sig", 5, 0, map[string]any{"InstructionError": []any{0, map[string]any{"Custom": 99999}}})
	if !ok || unknown.Name != "Custom(99999)" {
		t.Errorf("unknown code: got %+v, %v", unknown, ok)
	}
	if _, ok := FailureFromError("sig", 5, 0, "AccountInUse"); ok {
		t.Error("non-custom error recognised")
	}
}

func jsonNumber(v uint32) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestRebindPostgresPlaceholders(t *testing.T) {
	cases := map[string]string{
		"SELECT ? , ?":                     "SELECT $1 , $2",
		"WHERE a = '?' AND b = ?":          "WHERE a = '?' AND b = $1",
		"WHERE a = 'it''s ?' AND b = ?":    "WHERE a = 'it''s ?' AND b = $1",
		"INSERT INTO t VALUES (?, ?, 'x')": "INSERT INTO t VALUES ($1, $2, 'x')",
	}
	for in, want := range cases {
		if got := rebindPostgresPlaceholders(in); got != want {
			t.Errorf("rebind(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePagination(t *testing.T) {
	cases := []struct{ limit, offset, wantLimit, wantOffset int }{
		{0, -3, defaultPageLimit, 0},
		{1000, 5, maxPageLimit, 5},
		{20, 40, 20, 40},
	}
	for _, tc := range cases {
		l, o := normalizePagination(tc.limit, tc.offset)
		if l != tc.wantLimit || o != tc.wantOffset {
			t.Errorf("normalizePagination(%d, %d) = %d, %d", tc.limit, tc.offset, l, o)
		}
	}
}

func TestSignatureCommitment(t *testing.T) {
	if got := signatureCommitment(rpc.CommitmentProcessed); got != rpc.CommitmentConfirmed {
		t.Errorf("got %s", got)
	}
	if got := signatureCommitment(rpc.CommitmentFinalized); got != rpc.CommitmentFinalized {
		t.Errorf("got %s", got)
	}
}

func TestLogStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	subscribed := make(chan pubsubRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		var req pubsubRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		subscribed <- req
		_ = conn.WriteJSON(map[string]any{"jsonrpc": "2.0", "result": 7, "id": req.ID})
		_ = conn.WriteJSON(map[string]any{
			"jsonrpc": "2.0",
			"method":  "logsNotification",
			"params": map[string]any{
				"subscription": 7,
				"result": map[string]any{
					"context": map[string]any{"slot": 42},
					"value": map[string]any{
						"signature": "abc",
						"err":       map[string]any{"InstructionError": []any{0, map[string]any{"Custom": 101}}},
						"logs":      []string{"Program log: hi"},
					},
				},
			},
		})
		// Hold the connection until the client hangs up.
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan LogNotification, 1)
	stream := NewLogStream("ws"+strings.TrimPrefix(srv.URL, "http"), testProgram, rpc.CommitmentConfirmed, 10*time.Millisecond, discardLogger(),
		func(_ context.Context, n LogNotification) error {
			got <- n
			cancel()
			return nil
		})
	done := make(chan struct{})
	go func() {
		stream.Run(ctx)
		close(done)
	}()

	select {
	case req := <-subscribed:
		if req.Method != "logsSubscribe" {
			t.Errorf("method: got %q", req.Method)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no subscribe request")
	}
	select {
	case n := <-got:
		if n.Signature != "abc" || n.Slot != 42 || !n.Failed() || len(n.Logs) != 1 {
			t.Errorf("notification: got %+v", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no notification")
	}
	<-done
}

func TestWithRetry(t *testing.T) {
	s := &Service{logger: discardLogger()}
	s.cfg.RPCMaxRetries = 2
	s.cfg.RPCRetryBaseDelay = time.Millisecond
	s.cfg.RPCRetryMaxDelay = 2 * time.Millisecond

	calls := 0
	boom := errors.New("boom")
	err := s.withRetry(context.Background(), "op", func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 3 {
		t.Errorf("got %v after %d calls, want boom after 3", err, calls)
	}

	calls = 0
	err = s.withRetry(context.Background(), "op", func() error {
		calls++
		if calls < 2 {
			return boom
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("got %v after %d calls", err, calls)
	}
}

func TestTokenRecord(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	token := &state.TokenState{Address: mint, ID: 4, Mask: 6 | models.TokenMaskBaseCrncy}
	got := tokenRecord(token, 99)
	if got.TokenID != 4 || got.Address != mint.String() || got.Decimals != 6 || !got.BaseCrncy || got.Slot != 99 {
		t.Errorf("got %+v", got)
	}
}

func TestCollectSignatures(t *testing.T) {
	// history[0] is the cursor; history[1:] landed after it.
	history := make([]solana.Signature, 251)
	for i := range history {
		history[i][0] = byte(i)
		history[i][1] = byte(i >> 8)
		history[i][63] = 1
	}
	cursor := history[0]

	// fetch mimics getSignaturesForAddress: newest first, strictly older
	// than before and strictly newer than the cursor.
	var befores []solana.Signature
	fetch := func(limit int) signaturePageFunc {
		return func(_ context.Context, before solana.Signature) ([]*rpc.TransactionSignature, error) {
			befores = append(befores, before)
			start := len(history) - 1
			if !before.IsZero() {
				for i, sig := range history {
					if sig == before {
						start = i - 1
					}
				}
			}
			var page []*rpc.TransactionSignature
			for i := start; i >= 0 && len(page) < limit; i-- {
				if history[i] == cursor {
					break
				}
				page = append(page, &rpc.TransactionSignature{Signature: history[i]})
			}
			return page, nil
		}
	}

	t.Run("more than one page", func(t *testing.T) {
		befores = nil
		got, err := collectSignatures(context.Background(), fetch(100), 100, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 250 {
			t.Fatalf("got %d signatures, want 250", len(got))
		}
		for i, sig := range got {
			if sig.Signature != history[i+1] {
				t.Fatalf("signature %d: got %s, want %s", i, sig.Signature, history[i+1])
			}
		}
		if len(befores) != 3 {
			t.Errorf("got %d pages, want 3", len(befores))
		}
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		befores = nil
		got, err := collectSignatures(context.Background(), fetch(125), 125, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 250 || got[0].Signature != history[1] || got[249].Signature != history[250] {
			t.Errorf("got %d signatures", len(got))
		}
		if len(befores) != 3 {
			t.Errorf("got %d pages, want 3 (the last one empty)", len(befores))
		}
	})

	t.Run("page cap", func(t *testing.T) {
		got, err := collectSignatures(context.Background(), fetch(100), 100, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 100 || got[99].Signature != history[250] {
			t.Errorf("got %d signatures, want the newest 100", len(got))
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := collectSignatures(context.Background(), func(context.Context, solana.Signature) ([]*rpc.TransactionSignature, error) {
			return nil, boom
		}, 100, 0)
		if !errors.Is(err, boom) {
			t.Errorf("got %v, want boom", err)
		}
	})
}

func TestDecodeAccounts(t *testing.T) {
	raw, err := layout.Encode(&state.RootState{
		Discriminator: models.NewDiscriminator(models.AccountRoot.Tag(), 1),
		TokensCount:   2,
	})
	if err != nil {
		t.Fatal(err)
	}
	root := solana.NewWallet().PublicKey()
	accounts := rpc.GetProgramAccountsResult{
		{Pubkey: root, Account: &rpc.Account{Lamports: 42, Data: rpc.DataBytesOrJSONFromBytes(raw)}},
		{Pubkey: solana.NewWallet().PublicKey(), Account: &rpc.Account{Data: rpc.DataBytesOrJSONFromBytes(make([]byte, 16))}},
		{Pubkey: solana.NewWallet().PublicKey()},
		nil,
	}

	s := &Service{logger: discardLogger()}
	got := s.decodeAccounts(7, models.AccountRoot, accounts)
	if len(got) != 1 {
		t.Fatalf("got %d accounts, want 1", len(got))
	}
	if got[0].pubkey != root || got[0].lamports != 42 || got[0].dataLen != len(raw) {
		t.Errorf("got %+v", got[0])
	}
	if got[0].snapshot.Type != models.AccountRoot {
		t.Errorf("type: got %s, want Root", got[0].snapshot.Type)
	}
}
