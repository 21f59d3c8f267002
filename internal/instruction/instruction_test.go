package instruction

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

var testCtx = Context{
	TokensCount:   5,
	InstrCount:    4,
	RefCounter:    10,
	VotingCounter: 7,
}

func mustEncode[T any](t *testing.T, v *T) []byte {
	t.Helper()
	data, err := layout.Encode(v)
	if err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}
	return data
}

func field(t *testing.T, err error, name string) any {
	t.Helper()
	var derr *drverr.Error
	if !errors.As(err, &derr) {
		t.Fatalf("error %v is not a *drverr.Error", err)
	}
	v, ok := derr.Field(name)
	if !ok {
		t.Fatalf("%s has no field %q", derr.Kind.Name(), name)
	}
	return v
}

func TestPayloadSizes(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"EmptyData", layout.Size[EmptyData](), 1},
		{"NewOperatorData", layout.Size[NewOperatorData](), 8},
		{"NewRootAccountData", layout.Size[NewRootAccountData](), 12},
		{"NewSpotOrderData", layout.Size[NewSpotOrderData](), NewSpotOrderDataSize},
		{"NewPerpOrderData", layout.Size[NewPerpOrderData](), NewPerpOrderDataSize},
		{"SpotOrderCancelData", layout.Size[SpotOrderCancelData](), OrderCancelDataSize},
		{"PerpOrderCancelData", layout.Size[PerpOrderCancelData](), OrderCancelDataSize},
		{"CleanCandlesData", layout.Size[CleanCandlesData](), InstrDataSize},
		{"SpotQuotesReplaceData", layout.Size[SpotQuotesReplaceData](), QuotesReplaceDataSize},
		{"PerpChangeLeverageData", layout.Size[PerpChangeLeverageData](), PerpChangeLeverageSize},
		{"SpotLpData", layout.Size[SpotLpData](), SpotLpDataSize},
		{"SwapData", layout.Size[SwapData](), SwapDataSize},
		{"BuyMarketSeatData", layout.Size[BuyMarketSeatData](), BuyMarketSeatDataSize},
		{"SellMarketSeatData", layout.Size[SellMarketSeatData](), SellMarketSeatDataSize},
		{"DepositData", layout.Size[DepositData](), DepositDataSize},
		{"WithdrawData", layout.Size[WithdrawData](), TokenAmountDataSize},
		{"VMInitWithdrawData", layout.Size[VMInitWithdrawData](), TokenAmountDataSize},
		{"PerpDepositData", layout.Size[PerpDepositData](), InstrAmountDataSize},
		{"NewInstrumentData", layout.Size[NewInstrumentData](), NewInstrumentDataSize},
		{"NewBaseCrncyData", layout.Size[NewBaseCrncyData](), 16},
		{"ChangeDenominatorData", layout.Size[ChangeDenominatorData](), 16},
		{"AirdropData", layout.Size[AirdropData](), 16},
		{"VotingData", layout.Size[VotingData](), 8},
		{"SetVarianceData", layout.Size[SetVarianceData](), 16},
		{"ChangeRefProgramData", layout.Size[ChangeRefProgramData](), 32},
		{"SetSeatPurchasingFeeData", layout.Size[SetSeatPurchasingFeeData](), 16},
		{"NewPrivateClientData", layout.Size[NewPrivateClientData](), 8},
		{"ActivateClientRefProgramData", layout.Size[ActivateClientRefProgramData](), 8},
		{"VMChangeWhitelistData", layout.Size[VMChangeWhitelistData](), 8},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s size = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestNewSpotOrderRoundTrip(t *testing.T) {
	in := &NewSpotOrderData{
		Tag:       IxNewSpotOrder.Number,
		IOC:       1,
		OrderType: uint8(models.OrderLimit),
		Side:      uint8(models.SideAsk),
		InstrID:   3,
		Price:     123456,
		Amount:    1000,
		EdgePrice: 0,
	}
	data := mustEncode(t, in)
	if len(data) != NewSpotOrderDataSize {
		t.Fatalf("encoded %d bytes, want %d", len(data), NewSpotOrderDataSize)
	}
	if data[0] != 12 || data[3] != 1 || data[4] != 3 {
		t.Errorf("unexpected prefix % x", data[:8])
	}
	out, err := ParseNewSpotOrderData(data, testCtx)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestPriceBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		price int64
		ok    bool
	}{
		{"zero", 0, false},
		{"one", 1, true},
		{"max minus one", models.MaxPrice - 1, true},
		{"max", models.MaxPrice, false},
		{"negative", -5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := mustEncode(t, &NewSpotOrderData{Tag: 12, InstrID: 0, Price: tc.price, Amount: 1})
			_, err := ParseNewSpotOrderData(data, testCtx)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, drverr.InvalidPrice) {
				t.Fatalf("got %v, want InvalidPrice", err)
			}
		})
	}
}

func TestMarketOrderAcceptsZeroPrice(t *testing.T) {
	data := mustEncode(t, &NewSpotOrderData{Tag: 12, OrderType: uint8(models.OrderMarket), Amount: 1})
	if _, err := ParseNewSpotOrderData(data, testCtx); err != nil {
		t.Errorf("market order with zero price: %v", err)
	}
}

func TestClientCannotSubmitMarginCall(t *testing.T) {
	data := mustEncode(t, &NewSpotOrderData{Tag: 12, OrderType: uint8(models.OrderMarginCall), Price: 10, Amount: 1})
	if _, err := ParseNewSpotOrderData(data, testCtx); !errors.Is(err, drverr.InvalidOrderType) {
		t.Errorf("got %v, want InvalidOrderType", err)
	}
}

func TestQuantityBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		ok     bool
	}{
		{"zero", 0, false},
		{"one", 1, true},
		{"max minus one", models.SpotMaxAmount - 1, true},
		{"max", models.SpotMaxAmount, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := mustEncode(t, &FeesDepositData{Tag: IxFeesDeposit.Number, TokenID: 1, Amount: tc.amount})
			_, err := ParseFeesDepositData(data, testCtx)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, drverr.InvalidQuantity) {
				t.Fatalf("got %v, want InvalidQuantity", err)
			}
		})
	}
}

func TestLeverage(t *testing.T) {
	cases := []struct {
		leverage uint8
		ok       bool
	}{
		{0, false},
		{1, true},
		{15, true},
		{16, false},
	}
	for _, tc := range cases {
		data := mustEncode(t, &PerpChangeLeverageData{Tag: IxPerpChangeLeverage.Number, Leverage: tc.leverage, InstrID: 2})
		_, err := ParsePerpChangeLeverageData(data, testCtx)
		if tc.ok != (err == nil) {
			t.Errorf("leverage %d: err = %v, want ok=%v", tc.leverage, err, tc.ok)
		}
		if err != nil && !errors.Is(err, drverr.InvalidLeverage) {
			t.Errorf("leverage %d: got %v, want InvalidLeverage", tc.leverage, err)
		}
	}

	// A perp order keeps the current leverage when the field is zero.
	data := mustEncode(t, &NewPerpOrderData{Tag: IxNewPerpOrder.Number, Price: 5, Amount: 1})
	if _, err := ParseNewPerpOrderData(data, testCtx); err != nil {
		t.Errorf("perp order with leverage 0: %v", err)
	}
	data = mustEncode(t, &NewPerpOrderData{Tag: IxNewPerpOrder.Number, Leverage: 16, Price: 5, Amount: 1})
	if _, err := ParseNewPerpOrderData(data, testCtx); !errors.Is(err, drverr.InvalidLeverage) {
		t.Errorf("perp order with leverage 16: got %v", err)
	}
}

func TestOrderIDBoundaries(t *testing.T) {
	cases := []struct {
		id int64
		ok bool
	}{
		{-1, false},
		{0, true},
		{models.MaxOrderID - 1, true},
		{models.MaxOrderID, false},
	}
	for _, tc := range cases {
		data := mustEncode(t, &SpotOrderCancelData{Tag: IxSpotOrderCancel.Number, OrderID: tc.id})
		_, err := ParseSpotOrderCancelData(data, testCtx)
		if tc.ok != (err == nil) {
			t.Errorf("order id %d: err = %v, want ok=%v", tc.id, err, tc.ok)
		}
	}
}

func TestQuotesReplaceOrdering(t *testing.T) {
	base := SpotQuotesReplaceData{
		Tag:         IxSpotQuotesReplace.Number,
		InstrID:     1,
		NewBidPrice: 99,
		NewBidQty:   10,
		NewAskPrice: 100,
		NewAskQty:   10,
	}
	if _, err := ParseSpotQuotesReplaceData(mustEncode(t, &base), testCtx); err != nil {
		t.Fatalf("bid one below ask: %v", err)
	}

	for _, bid := range []int64{100, 101} {
		crossed := base
		crossed.NewBidPrice = bid
		_, err := ParseSpotQuotesReplaceData(mustEncode(t, &crossed), testCtx)
		if !errors.Is(err, drverr.InvalidPrice) {
			t.Fatalf("bid %d: got %v, want InvalidPrice", bid, err)
		}
		if got := field(t, err, "max"); got != int64(100) {
			t.Errorf("bid %d: max = %v, want 100", bid, got)
		}
	}

	zeroQty := base
	zeroQty.NewBidQty = 0
	perp := PerpQuotesReplaceData(zeroQty)
	perp.Tag = IxPerpQuotesReplace.Number
	if _, err := ParsePerpQuotesReplaceData(mustEncode(t, &perp), testCtx); err != nil {
		t.Errorf("zero bid quantity: %v", err)
	}
}

func TestDepositTokenCheck(t *testing.T) {
	data := mustEncode(t, &DepositData{Tag: 7, TokenID: 3, Amount: 100})

	got, err := ParseDepositData(data, Context{TokensCount: 5})
	if err != nil {
		t.Fatalf("tokens_count 5: %v", err)
	}
	if got.TokenID != 3 || got.Amount != 100 {
		t.Errorf("got %+v", got)
	}

	_, err = ParseDepositData(data, Context{TokensCount: 2})
	if !errors.Is(err, drverr.InvalidTokenID) {
		t.Fatalf("tokens_count 2: got %v, want InvalidTokenID", err)
	}
	if v := field(t, err, "token_id"); v != uint32(3) {
		t.Errorf("token_id = %v, want 3", v)
	}
	if v := field(t, err, "count"); v != uint32(2) {
		t.Errorf("count = %v, want 2", v)
	}
}

func TestDepositAllAndCompetition(t *testing.T) {
	all := mustEncode(t, &DepositData{Tag: 7, DepositAll: 1})
	if _, err := ParseDepositData(all, testCtx); err != nil {
		t.Errorf("deposit all with zero amount: %v", err)
	}
	none := mustEncode(t, &DepositData{Tag: 7})
	if _, err := ParseDepositData(none, testCtx); !errors.Is(err, drverr.InvalidQuantity) {
		t.Errorf("zero amount: got %v", err)
	}
	comp := mustEncode(t, &DepositData{Tag: 7, CompetitionID: models.CompetitionID, Amount: 1})
	if _, err := ParseDepositData(comp, testCtx); err != nil {
		t.Errorf("competition deposit: %v", err)
	}
	bad := mustEncode(t, &DepositData{Tag: 7, CompetitionID: 9, Amount: 1})
	if _, err := ParseDepositData(bad, testCtx); !errors.Is(err, drverr.InvalidCompetitionID) {
		t.Errorf("unknown competition: got %v", err)
	}
}

func TestTagMismatch(t *testing.T) {
	data := mustEncode(t, &WithdrawData{Tag: IxFeesWithdraw.Number, TokenID: 1, Amount: 1})
	_, err := ParseWithdrawData(data, testCtx)
	if !errors.Is(err, drverr.InvalidInstructionTag) {
		t.Fatalf("got %v, want InvalidInstructionTag", err)
	}
	if v := field(t, err, "expected"); v != IxWithdraw.Number {
		t.Errorf("expected = %v, want %d", v, IxWithdraw.Number)
	}
}

func TestWrongLength(t *testing.T) {
	data := mustEncode(t, &VotingData{Tag: IxVoting.Number, VotingCounter: 7})
	_, err := ParseVotingData(append(data, 0), testCtx)
	if !errors.Is(err, drverr.InvalidDataFormat) {
		t.Fatalf("got %v, want InvalidDataFormat", err)
	}
	if v := field(t, err, "expected"); v != 8 {
		t.Errorf("expected = %v, want 8", v)
	}
	if v := field(t, err, "actual"); v != 9 {
		t.Errorf("actual = %v, want 9", v)
	}
}

func TestGovernancePayloads(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		kind drverr.Kind
	}{
		{"vote option", mustEncode(t, &VotingData{Tag: IxVoting.Number, Choice: 3, VotingCounter: 7}), drverr.InvalidVoteOption},
		{"stale round", mustEncode(t, &ChangeVotingData{Tag: IxChangeVoting.Number, VotingCounter: 6}), drverr.InvalidVotingCounter},
		{"airdrop ratio", mustEncode(t, &AirdropData{Tag: IxAirdrop.Number}), drverr.InvalidAirdropRatio},
		{"denominator", mustEncode(t, &NewBaseCrncyData{Tag: IxNewBaseCrncy.Number, Denominator: -1}), drverr.InvalidDenominator},
		{"base crncy", mustEncode(t, &ChangeDenominatorData{Tag: IxChangeDenominator.Number, BaseCrncyID: 5, Denominator: 1}), drverr.InvalidCrncy},
		{"variance", mustEncode(t, &SetVarianceData{Tag: IxSetVariance.Number, InstrID: 1}), drverr.InvalidVariance},
		{"ref discount", mustEncode(t, &ChangeRefProgramData{Tag: IxChangeRefProgram.Number, RefDiscount: 0.2}), drverr.InvalidRefProgramParameters},
		{"seat fee", mustEncode(t, &SetSeatPurchasingFeeData{Tag: IxSetSeatPurchasingFee.Number, Fee: -0.5}), drverr.InvalidSeatPurchasingFee},
		{"ref id", mustEncode(t, &ActivateClientRefProgramData{Tag: IxActivateClientRefProgram.Number, RefID: 10}), drverr.InvalidRefID},
		{"whitelist slot", mustEncode(t, &VMChangeWhitelistData{Tag: IxVMChangeWhitelist.Number, Slot: 8}), drverr.InvalidVMWhitelistSlot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.data, testCtx)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("got %v, want %s", err, tc.kind.Name())
			}
		})
	}

	ok := [][]byte{
		mustEncode(t, &VotingData{Tag: IxVoting.Number, Choice: uint8(models.VoteIncrement), VotingCounter: 7}),
		mustEncode(t, &ChangeRefProgramData{Tag: IxChangeRefProgram.Number, RefDiscount: models.MaxRefDiscount, RefRatio: models.MaxRefRatio}),
		mustEncode(t, &SetSeatPurchasingFeeData{Tag: IxSetSeatPurchasingFee.Number}),
		mustEncode(t, &ActivateClientRefProgramData{Tag: IxActivateClientRefProgram.Number, RefID: 9}),
		mustEncode(t, &VMChangeWhitelistData{Tag: IxVMChangeWhitelist.Number, Slot: 7, InstrID: models.NullInstr}),
	}
	for _, data := range ok {
		if _, _, err := Parse(data, testCtx); err != nil {
			t.Errorf("opcode %d: %v", data[0], err)
		}
	}
}

func TestExpiration(t *testing.T) {
	data := mustEncode(t, &NewPrivateClientData{Tag: IxNewPrivateClient.Number, ExpirationTime: 1000})
	if _, err := ParseNewPrivateClientData(data, testCtx); err != nil {
		t.Errorf("no clock: %v", err)
	}
	ctx := testCtx
	ctx.Now = 1000
	if _, err := ParseNewPrivateClientData(data, ctx); !errors.Is(err, drverr.InvalidExpirationTime) {
		t.Errorf("expired: got %v", err)
	}
}

func TestEveryOpcodeHasParser(t *testing.T) {
	for _, meta := range All() {
		if _, ok := parsers[meta.Number]; !ok {
			t.Errorf("%s (%d) has no parser", meta.Name, meta.Number)
		}
		if meta.MinAccounts <= 0 {
			t.Errorf("%s has MinAccounts %d", meta.Name, meta.MinAccounts)
		}
	}
	if len(parsers) != len(All()) {
		t.Errorf("%d parsers for %d opcodes", len(parsers), len(All()))
	}
}

func TestTagOnlyInstructions(t *testing.T) {
	for _, meta := range []Meta{IxNewHolder, IxNextVoting, IxNewRefLink, IxVMFinalizeActivate} {
		got, payload, err := Parse([]byte{meta.Number}, testCtx)
		if err != nil {
			t.Fatalf("%s: %v", meta.Name, err)
		}
		if got != meta {
			t.Errorf("meta = %+v, want %+v", got, meta)
		}
		if _, ok := payload.(*EmptyData); !ok {
			t.Errorf("%s payload = %T", meta.Name, payload)
		}
		if _, _, err := Parse([]byte{meta.Number, 0}, testCtx); !errors.Is(err, drverr.InvalidDataFormat) {
			t.Errorf("%s with trailing byte: got %v", meta.Name, err)
		}
	}
}

func TestRetiredOpcodes(t *testing.T) {
	for _, op := range []uint8{38, 40} {
		if !IsRetired(op) {
			t.Errorf("IsRetired(%d) = false", op)
		}
		if _, ok := Lookup(op); ok {
			t.Errorf("Lookup(%d) found a retired opcode", op)
		}
		_, _, err := Parse([]byte{op}, testCtx)
		if !errors.Is(err, drverr.UnknownInstruction) {
			t.Errorf("opcode %d: got %v, want UnknownInstruction", op, err)
		}
	}
}

func accounts(n int) []*solana.AccountMeta {
	out := make([]*solana.AccountMeta, n)
	for i := range out {
		out[i] = solana.NewAccountMeta(solana.PublicKey{}, false, false)
	}
	return out
}

func TestDispatchAccountGuard(t *testing.T) {
	d := NewDispatcher(nil)
	called := false
	d.Handle(IxNewSpotOrder, func([]*solana.AccountMeta, []byte) error {
		called = true
		return nil
	})

	// Garbage payload: the account check must fail before parsing.
	err := d.Dispatch(accounts(17), []byte{12, 0xFF})
	if !errors.Is(err, drverr.InvalidAccountsAmount) {
		t.Fatalf("got %v, want InvalidAccountsAmount", err)
	}
	if v := field(t, err, "expected"); v != 18 {
		t.Errorf("expected = %v, want 18", v)
	}
	if v := field(t, err, "actual"); v != 17 {
		t.Errorf("actual = %v, want 17", v)
	}
	if called {
		t.Error("handler ran despite missing accounts")
	}

	if err := d.Dispatch(accounts(18), []byte{12}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !called {
		t.Error("handler did not run")
	}
}

func TestDispatchUnknown(t *testing.T) {
	d := NewDispatcher(nil)
	if err := d.Dispatch(accounts(30), nil); !errors.Is(err, drverr.InvalidDataFormat) {
		t.Errorf("empty data: got %v", err)
	}
	if err := d.Dispatch(accounts(30), []byte{200}); !errors.Is(err, drverr.UnknownInstruction) {
		t.Errorf("opcode 200: got %v", err)
	}
	if err := d.Dispatch(accounts(30), []byte{IxSwap.Number}); !errors.Is(err, drverr.UnknownInstruction) {
		t.Errorf("no handler: got %v", err)
	}
}

func TestContextFromCommunity(t *testing.T) {
	community := &state.CommunityAccountHeader{VotingCounter: 4}
	ctx := Context{TokensCount: 1}.WithCommunity(community)
	if ctx.VotingCounter != 4 || ctx.TokensCount != 1 {
		t.Errorf("got %+v", ctx)
	}
}
