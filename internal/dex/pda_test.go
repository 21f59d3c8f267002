package dex

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

var testProgram = solana.MustPublicKeyFromBase58("Stake11111111111111111111111111111111111111")

func TestDerivePDAs(t *testing.T) {
	holder, bump, err := DeriveHolderPDA(testProgram)
	if err != nil {
		t.Fatal(err)
	}
	want, err := solana.CreateProgramAddress([][]byte{[]byte(models.HolderSeed), {bump}}, testProgram)
	if err != nil {
		t.Fatal(err)
	}
	if holder != want {
		t.Errorf("got %s, want %s", holder, want)
	}

	drvs, _, err := DeriveDrvsAuthorityPDA(testProgram)
	if err != nil {
		t.Fatal(err)
	}
	if drvs == holder {
		t.Error("holder and DRVS authority collide")
	}
}

func TestMintDecimals(t *testing.T) {
	data := make([]byte, 82)
	data[models.MintDecimalsOffset] = 9
	got, err := MintDecimals(data)
	if err != nil || got != 9 {
		t.Errorf("got %d, %v, want 9", got, err)
	}
	if _, err := MintDecimals(data[:44]); err == nil {
		t.Error("short mint accepted")
	}
}

func TestScaleAmount(t *testing.T) {
	cases := []struct {
		raw      int64
		decimals uint32
		want     string
	}{
		{1_500_000, 6, "1.5"},
		{-25, 2, "-0.25"},
		{7, 0, "7"},
	}
	for _, tc := range cases {
		if got := ScaleAmount(tc.raw, tc.decimals).String(); got != tc.want {
			t.Errorf("ScaleAmount(%d, %d) = %s, want %s", tc.raw, tc.decimals, got, tc.want)
		}
	}
}

func TestScalePrice(t *testing.T) {
	if got := ScalePrice(3 * models.DI1 / 2).String(); got != "1.5" {
		t.Errorf("got %s, want 1.5", got)
	}
}
