package report

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
)

func TestRecordSizes(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"DepositReport", layout.Size[DepositReport](), 24},
		{"PerpDepositReport", layout.Size[PerpDepositReport](), 24},
		{"DrvsAirdropReport", layout.Size[DrvsAirdropReport](), 24},
		{"SpotLpTradeReport", layout.Size[SpotLpTradeReport](), 48},
		{"SpotPlaceOrderReport", layout.Size[SpotPlaceOrderReport](), 40},
		{"PerpPlaceOrderReport", layout.Size[PerpPlaceOrderReport](), 48},
		{"SpotFillOrderReport", layout.Size[SpotFillOrderReport](), 48},
		{"SpotNewOrderReport", layout.Size[SpotNewOrderReport](), 24},
		{"PerpOrderCancelReport", layout.Size[PerpOrderCancelReport](), 40},
		{"SpotOrderRevokeReport", layout.Size[SpotOrderRevokeReport](), 32},
		{"PerpFeesReport", layout.Size[PerpFeesReport](), 24},
		{"SpotPlaceMassCancelReport", layout.Size[SpotPlaceMassCancelReport](), 16},
		{"PerpMassCancelReport", layout.Size[PerpMassCancelReport](), 32},
		{"PerpChangeLeverageReport", layout.Size[PerpChangeLeverageReport](), 16},
		{"BuyMarketSeatReport", layout.Size[BuyMarketSeatReport](), 32},
		{"SellMarketSeatReport", layout.Size[SellMarketSeatReport](), 24},
		{"SwapOrderReport", layout.Size[SwapOrderReport](), 40},
		{"MoveSpotAvailFundsReport", layout.Size[MoveSpotAvailFundsReport](), 32},
		{"NewPrivateClientReport", layout.Size[NewPrivateClientReport](), 48},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s size = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestEveryLogTypeDecodes(t *testing.T) {
	for logType := uint8(1); logType <= LogNewPrivateClient; logType++ {
		dec, ok := decoders[logType]
		if !ok {
			t.Errorf("log type %d has no decoder", logType)
			continue
		}
		if strings.HasPrefix(Name(logType), "log_") {
			t.Errorf("log type %d has no name", logType)
		}
		// The length error reveals the record size.
		_, err := dec(make([]byte, 64))
		if err == nil {
			t.Errorf("log type %d decoded a 64-byte buffer", logType)
			continue
		}
		var derr *drverr.Error
		if !errors.As(err, &derr) {
			t.Fatalf("log type %d: %v", logType, err)
		}
		size := derr.Fields[0].Value.(int)
		buf := make([]byte, size)
		buf[0] = logType
		probe, err := Decode(buf)
		if err != nil {
			t.Errorf("log type %d: %v", logType, err)
			continue
		}
		if probe.LogType() != logType {
			t.Errorf("decoded %T for log type %d", probe, logType)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []Report{
		&DepositReport{ClientID: 4, TokenID: 2, Time: 1700000000, Amount: 5_000_000},
		&PerpPlaceOrderReport{IOC: 1, Side: 1, ClientID: 9, OrderID: 77, Perps: 10, Price: 1 << 20, InstrID: 3, Leverage: 5, Time: 12},
		&SpotMassCancelReport{Side: 1, OrderID: 8, Qty: 100, Crncy: 2500},
		&NewPrivateClientReport{Wallet: solana.SystemProgramID, InsertIndex: 2, CreationTime: 10, ExpirationTime: 20},
	}
	for _, in := range cases {
		data, err := Encode(in)
		if err != nil {
			t.Fatalf("encode %T: %v", in, err)
		}
		if data[0] != in.LogType() {
			t.Errorf("%T tag = %d, want %d", in, data[0], in.LogType())
		}
		out, err := Decode(data)
		if err != nil {
			t.Fatalf("decode %T: %v", in, err)
		}
		// Encode stamps the tag, so compare against a tagged copy.
		want := reflect.New(reflect.TypeOf(in).Elem())
		want.Elem().Set(reflect.ValueOf(in).Elem())
		want.Elem().Field(0).SetUint(uint64(in.LogType()))
		if !reflect.DeepEqual(out, want.Interface()) {
			t.Errorf("got %+v, want %+v", out, want.Interface())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, drverr.InvalidDataFormat) {
		t.Errorf("empty: got %v", err)
	}
	if _, err := Decode([]byte{99, 0, 0, 0}); !errors.Is(err, ErrUnknownLogType) {
		t.Errorf("type 99: got %v", err)
	}
	if _, err := Decode([]byte{LogDeposit, 0, 0}); !errors.Is(err, drverr.InvalidDataFormat) {
		t.Errorf("short deposit: got %v", err)
	}
}

func TestProgramData(t *testing.T) {
	in := &PerpChangeLeverageReport{Leverage: 7, ClientID: 1, InstrID: 2, Time: 3}
	line, err := FormatProgramData(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(line, ProgramDataPrefix) {
		t.Fatalf("line %q lacks prefix", line)
	}
	out, ok, err := ParseProgramData(line)
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}
	got, isLev := out.(*PerpChangeLeverageReport)
	if !isLev {
		t.Fatalf("got %T", out)
	}
	if got.Leverage != 7 || got.InstrID != 2 || got.Tag != LogPerpChangeLeverage {
		t.Errorf("got %+v", got)
	}

	if _, ok, err := ParseProgramData("Program log: Instruction: Deposit"); ok || err != nil {
		t.Errorf("plain log line: ok=%v err=%v", ok, err)
	}
	if _, ok, err := ParseProgramData(ProgramDataPrefix + "%%%"); !ok || err == nil {
		t.Errorf("bad base64: ok=%v err=%v", ok, err)
	}
}
