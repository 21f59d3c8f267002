package instruction

import (
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

const (
	DepositDataSize       = 24
	TokenAmountDataSize   = 16
	InstrAmountDataSize   = 16
	NewInstrumentDataSize = 24
)

// DepositData moves tokens from a wallet into the client's primary account.
// With DepositAll set the whole wallet balance is moved and Amount may be 0.
type DepositData struct {
	Tag           uint8
	CompetitionID uint8
	DepositAll    uint8
	PaddingU8     uint8
	TokenID       uint32
	Amount        int64
	LutSlot       uint32
	RefID         uint32
}

func ParseDepositData(data []byte, ctx Context) (*DepositData, error) {
	return parse[DepositData](data, IxDeposit.Number, ctx)
}

func (d *DepositData) Validate(ctx Context) error {
	if err := ctx.checkToken(d.TokenID); err != nil {
		return err
	}
	if d.CompetitionID != 0 && d.CompetitionID != models.CompetitionID {
		return drverr.New(drverr.InvalidCompetitionID, d.CompetitionID)
	}
	if d.DepositAll != 0 {
		return checkAmount(d.Amount, 0)
	}
	return checkAmount(d.Amount, 1)
}

// TokenAmountData is the shared shape of token-keyed transfers.
type TokenAmountData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	TokenID    uint32
	Amount     int64
}

type (
	WithdrawData       TokenAmountData
	FeesDepositData    TokenAmountData
	FeesWithdrawData   TokenAmountData
	VMInitWithdrawData TokenAmountData
)

func (d *WithdrawData) Validate(ctx Context) error {
	if err := ctx.checkToken(d.TokenID); err != nil {
		return err
	}
	return checkAmount(d.Amount, 0)
}

func (d *FeesDepositData) Validate(ctx Context) error {
	if err := ctx.checkToken(d.TokenID); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

func (d *FeesWithdrawData) Validate(ctx Context) error {
	if err := ctx.checkToken(d.TokenID); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

// Validate accepts Amount 0, which requests the full available balance.
func (d *VMInitWithdrawData) Validate(ctx Context) error {
	if err := ctx.checkToken(d.TokenID); err != nil {
		return err
	}
	return checkAmount(d.Amount, 0)
}

func ParseWithdrawData(data []byte, ctx Context) (*WithdrawData, error) {
	return parse[WithdrawData](data, IxWithdraw.Number, ctx)
}

func ParseFeesDepositData(data []byte, ctx Context) (*FeesDepositData, error) {
	return parse[FeesDepositData](data, IxFeesDeposit.Number, ctx)
}

func ParseFeesWithdrawData(data []byte, ctx Context) (*FeesWithdrawData, error) {
	return parse[FeesWithdrawData](data, IxFeesWithdraw.Number, ctx)
}

func ParseVMInitWithdrawData(data []byte, ctx Context) (*VMInitWithdrawData, error) {
	return parse[VMInitWithdrawData](data, IxVMInitWithdraw.Number, ctx)
}

// InstrAmountData moves funds between a client and a perp instrument.
type InstrAmountData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	InstrID    uint32
	Amount     int64
}

type (
	PerpDepositData  InstrAmountData
	PerpWithdrawData InstrAmountData
)

func (d *PerpDepositData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

// Validate accepts Amount 0, which withdraws everything withdrawable.
func (d *PerpWithdrawData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	return checkAmount(d.Amount, 0)
}

func ParsePerpDepositData(data []byte, ctx Context) (*PerpDepositData, error) {
	return parse[PerpDepositData](data, IxPerpDeposit.Number, ctx)
}

func ParsePerpWithdrawData(data []byte, ctx Context) (*PerpWithdrawData, error) {
	return parse[PerpWithdrawData](data, IxPerpWithdraw.Number, ctx)
}

type NewInstrumentData struct {
	Tag          uint8
	PaddingU8    uint8
	PaddingU16   uint16
	PaddingU32   uint32
	CrncyTokenID uint32
	LutSlot      uint32
	Price        int64
}

func ParseNewInstrumentData(data []byte, ctx Context) (*NewInstrumentData, error) {
	return parse[NewInstrumentData](data, IxNewInstrument.Number, ctx)
}

func (d *NewInstrumentData) Validate(ctx Context) error {
	if err := ctx.checkToken(d.CrncyTokenID); err != nil {
		return err
	}
	return checkPrice(d.Price, models.MinInitPrice)
}
