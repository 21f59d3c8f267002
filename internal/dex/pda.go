// Package dex holds address derivation and token-amount helpers shared by the
// off-chain services.
package dex

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

// DeriveHolderPDA returns the holder account that lists operators.
func DeriveHolderPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte(models.HolderSeed)}, programID)
}

// DeriveDrvsAuthorityPDA returns the authority of the DRVS mint.
func DeriveDrvsAuthorityPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte(models.DrvsSeed)}, programID)
}

// MintDecimals reads the decimals byte of an SPL mint account.
func MintDecimals(data []byte) (uint8, error) {
	if len(data) <= models.MintDecimalsOffset {
		return 0, fmt.Errorf("mint account too short: %d bytes", len(data))
	}
	return data[models.MintDecimalsOffset], nil
}

// ScaleAmount converts raw token units to a decimal amount.
func ScaleAmount(raw int64, decimals uint32) decimal.Decimal {
	return decimal.New(raw, -int32(decimals))
}

// ScalePrice converts a fixed-point engine price (DF1 units) to a decimal.
func ScalePrice(raw int64) decimal.Decimal {
	return decimal.NewFromInt(raw).Div(decimal.NewFromInt(models.DI1))
}
