package models

import (
	"bytes"
	"errors"
	"testing"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
)

func TestAccountTypeString(t *testing.T) {
	if got := AccountCommunity.String(); got != "Community(34)" {
		t.Errorf("got %q, want %q", got, "Community(34)")
	}
	if got := AccountType(999).String(); got != "Unknown(999)" {
		t.Errorf("got %q, want %q", got, "Unknown(999)")
	}
}

func TestParseAccountType(t *testing.T) {
	for _, at := range AccountTypes() {
		got, err := ParseAccountType(at.U32())
		if err != nil {
			t.Errorf("%s: %v", at, err)
			continue
		}
		if got != at {
			t.Errorf("got %s, want %s", got, at)
		}
	}
	if _, err := ParseAccountType(999); !errors.Is(err, drverr.UnknownAccountType) {
		t.Errorf("got %v, want UnknownAccountType", err)
	}
}

func TestDiscriminator(t *testing.T) {
	d := NewDiscriminator(AccountCommunity.Tag(), NewVersion(3))
	buf := make([]byte, 12)
	if !d.Put(buf) {
		t.Fatal("Put failed on a 12-byte buffer")
	}
	if want := []byte{34, 0, 0, 0, 3, 0, 0, 0}; !bytes.Equal(buf[:8], want) {
		t.Errorf("got % x, want % x", buf[:8], want)
	}
	got, ok := ReadDiscriminator(buf)
	if !ok || got != d {
		t.Errorf("got %+v (%v), want %+v", got, ok, d)
	}
	if _, ok := ReadDiscriminator(buf[:7]); ok {
		t.Error("read 7 bytes as a discriminator")
	}
	if d.Put(buf[:4]) {
		t.Error("Put succeeded on a short buffer")
	}
	if !(Discriminator{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
	if got := TagBytes(AccountCommunity.Tag()); !bytes.Equal(got, []byte{34, 0, 0, 0}) {
		t.Errorf("TagBytes = % x", got)
	}
}

func TestSentinels(t *testing.T) {
	if !NewClientID(NullClient).IsNull() || NewClientID(0).IsNull() {
		t.Error("ClientID.IsNull mismatch")
	}
	if !NewInstrID(NullInstr).IsNull() || NewInstrID(4).IsNull() {
		t.Error("InstrID.IsNull mismatch")
	}
}

func TestOrderEnums(t *testing.T) {
	if _, err := ParseOrderSide(2); !errors.Is(err, drverr.InvalidOrderSide) {
		t.Errorf("side 2: got %v", err)
	}
	if side, err := ParseOrderSide(1); err != nil || side != SideAsk {
		t.Errorf("side 1: got %v, %v", side, err)
	}
	if _, err := ParseClientOrderType(uint8(OrderMarginCall)); !errors.Is(err, drverr.InvalidOrderType) {
		t.Errorf("margin call: got %v", err)
	}
	if got := OrderForcedClose.String(); got != "Forced Close" {
		t.Errorf("got %q", got)
	}
}

func TestSplitAssetID(t *testing.T) {
	typ, idx := SplitAssetID(0x40000007)
	if typ != AssetPerp || idx != 7 {
		t.Errorf("got %s %d, want Perp 7", typ, idx)
	}
}

func TestCandleParams(t *testing.T) {
	p, err := CandleParamsFor(AccountSpotDayCandles.U32())
	if err != nil {
		t.Fatal(err)
	}
	if p.Capacity != 5844 || p.Duration != Day {
		t.Errorf("got %+v", p)
	}
	if len(Candles()) != 3 {
		t.Errorf("got %d candle families, want 3", len(Candles()))
	}
	if _, err := CandleParamsFor(AccountRoot.U32()); !errors.Is(err, drverr.InvalidCandlesTag) {
		t.Errorf("got %v, want InvalidCandlesTag", err)
	}
}

func TestAccountTypeByName(t *testing.T) {
	got, ok := AccountTypeByName(" community ")
	if !ok || got != AccountCommunity {
		t.Errorf("got %s (%v), want Community", got, ok)
	}
	if _, ok := AccountTypeByName("Nope"); ok {
		t.Error("resolved an unknown name")
	}
}
