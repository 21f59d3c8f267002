package instruction

import (
	"math"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

type NewOperatorData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	Version    uint32
}

func ParseNewOperatorData(data []byte, ctx Context) (*NewOperatorData, error) {
	return parse[NewOperatorData](data, IxNewOperator.Number, ctx)
}

func (*NewOperatorData) Validate(Context) error { return nil }

type NewRootAccountData struct {
	Tag         uint8
	PrivateMode uint8
	PaddingU16  uint16
	Version     uint32
	LutSlot     uint32
}

func ParseNewRootAccountData(data []byte, ctx Context) (*NewRootAccountData, error) {
	return parse[NewRootAccountData](data, IxNewRootAccount.Number, ctx)
}

func (*NewRootAccountData) Validate(Context) error { return nil }

type NewBaseCrncyData struct {
	Tag         uint8
	PaddingU8   uint8
	PaddingU16  uint16
	PaddingU32  uint32
	Denominator float64
}

func ParseNewBaseCrncyData(data []byte, ctx Context) (*NewBaseCrncyData, error) {
	return parse[NewBaseCrncyData](data, IxNewBaseCrncy.Number, ctx)
}

func (d *NewBaseCrncyData) Validate(Context) error {
	if !positiveFinite(d.Denominator) {
		return drverr.New(drverr.InvalidDenominator, d.Denominator)
	}
	return nil
}

type ChangeDenominatorData struct {
	Tag         uint8
	PaddingU8   uint8
	PaddingU16  uint16
	BaseCrncyID uint32
	Denominator float64
}

func ParseChangeDenominatorData(data []byte, ctx Context) (*ChangeDenominatorData, error) {
	return parse[ChangeDenominatorData](data, IxChangeDenominator.Number, ctx)
}

func (d *ChangeDenominatorData) Validate(ctx Context) error {
	if d.BaseCrncyID >= ctx.TokensCount {
		return drverr.New(drverr.InvalidCrncy, d.BaseCrncyID)
	}
	if !positiveFinite(d.Denominator) {
		return drverr.New(drverr.InvalidDenominator, d.Denominator)
	}
	return nil
}

type AirdropData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	PaddingU32 uint32
	Ratio      float64
}

func ParseAirdropData(data []byte, ctx Context) (*AirdropData, error) {
	return parse[AirdropData](data, IxAirdrop.Number, ctx)
}

func (d *AirdropData) Validate(Context) error {
	if !positiveFinite(d.Ratio) {
		return drverr.New(drverr.InvalidAirdropRatio, d.Ratio)
	}
	return nil
}

// VotingData casts a vote in the round named by VotingCounter.
type VotingData struct {
	Tag           uint8
	Choice        uint8
	PaddingU16    uint16
	VotingCounter uint32
}

func ParseVotingData(data []byte, ctx Context) (*VotingData, error) {
	return parse[VotingData](data, IxVoting.Number, ctx)
}

func (d *VotingData) Validate(ctx Context) error {
	if err := checkVote(d.Choice); err != nil {
		return err
	}
	return ctx.checkVotingCounter(d.VotingCounter)
}

type ChangeVotingData struct {
	Tag           uint8
	NewChoice     uint8
	PaddingU16    uint16
	VotingCounter uint32
}

func ParseChangeVotingData(data []byte, ctx Context) (*ChangeVotingData, error) {
	return parse[ChangeVotingData](data, IxChangeVoting.Number, ctx)
}

func (d *ChangeVotingData) Validate(ctx Context) error {
	if err := checkVote(d.NewChoice); err != nil {
		return err
	}
	return ctx.checkVotingCounter(d.VotingCounter)
}

// VarianceData carries the variance used by the perp funding model.
type VarianceData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	InstrID    uint32
	Variance   float64
}

func (d *VarianceData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if !positiveFinite(d.Variance) {
		return drverr.New(drverr.InvalidVariance, d.Variance)
	}
	return nil
}

type (
	SetInstrReadyForPerpUpgradeData VarianceData
	SetVarianceData                 VarianceData
)

func (d *SetInstrReadyForPerpUpgradeData) Validate(ctx Context) error {
	return (*VarianceData)(d).Validate(ctx)
}

func (d *SetVarianceData) Validate(ctx Context) error {
	return (*VarianceData)(d).Validate(ctx)
}

func ParseSetInstrReadyForPerpUpgradeData(data []byte, ctx Context) (*SetInstrReadyForPerpUpgradeData, error) {
	return parse[SetInstrReadyForPerpUpgradeData](data, IxSetInstrReadyForPerpUpgrade.Number, ctx)
}

func ParseSetVarianceData(data []byte, ctx Context) (*SetVarianceData, error) {
	return parse[SetVarianceData](data, IxSetVariance.Number, ctx)
}

type ChangeRefProgramData struct {
	Tag                uint8
	PaddingU8          uint8
	PaddingU16         uint16
	PaddingU32         uint32
	RefProgramDuration uint32
	RefLinkDuration    uint32
	RefDiscount        float64
	RefRatio           float64
}

func ParseChangeRefProgramData(data []byte, ctx Context) (*ChangeRefProgramData, error) {
	return parse[ChangeRefProgramData](data, IxChangeRefProgram.Number, ctx)
}

func (d *ChangeRefProgramData) Validate(Context) error {
	if !inRange(d.RefDiscount, 0, models.MaxRefDiscount) || !inRange(d.RefRatio, 0, models.MaxRefRatio) {
		return drverr.New(drverr.InvalidRefProgramParameters)
	}
	return nil
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

type SetSeatPurchasingFeeData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	PaddingU32 uint32
	Fee        float64
}

func ParseSetSeatPurchasingFeeData(data []byte, ctx Context) (*SetSeatPurchasingFeeData, error) {
	return parse[SetSeatPurchasingFeeData](data, IxSetSeatPurchasingFee.Number, ctx)
}

func (d *SetSeatPurchasingFeeData) Validate(Context) error {
	if !inRange(d.Fee, 0, math.MaxFloat64) {
		return drverr.New(drverr.InvalidSeatPurchasingFee, d.Fee)
	}
	return nil
}

// NewPrivateClientData admits a wallet to a private-mode venue until
// ExpirationTime.
type NewPrivateClientData struct {
	Tag            uint8
	PaddingU8      uint8
	PaddingU16     uint16
	ExpirationTime uint32
}

func ParseNewPrivateClientData(data []byte, ctx Context) (*NewPrivateClientData, error) {
	return parse[NewPrivateClientData](data, IxNewPrivateClient.Number, ctx)
}

func (d *NewPrivateClientData) Validate(ctx Context) error {
	return ctx.checkExpiration(d.ExpirationTime)
}

type PointsProgramExpirationData struct {
	Tag               uint8
	PaddingU8         uint8
	PaddingU16        uint16
	NewExpirationTime uint32
}

func ParsePointsProgramExpirationData(data []byte, ctx Context) (*PointsProgramExpirationData, error) {
	return parse[PointsProgramExpirationData](data, IxChangePointsProgramExpiration.Number, ctx)
}

func (d *PointsProgramExpirationData) Validate(ctx Context) error {
	return ctx.checkExpiration(d.NewExpirationTime)
}

type ActivateClientRefProgramData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	RefID      uint32
}

func ParseActivateClientRefProgramData(data []byte, ctx Context) (*ActivateClientRefProgramData, error) {
	return parse[ActivateClientRefProgramData](data, IxActivateClientRefProgram.Number, ctx)
}

func (d *ActivateClientRefProgramData) Validate(ctx Context) error {
	if d.RefID >= ctx.RefCounter {
		return drverr.New(drverr.InvalidRefID, d.RefID)
	}
	return nil
}

// VMChangeWhitelistData writes InstrID into one whitelist slot of the
// client's vault. A NullInstr id clears the slot.
type VMChangeWhitelistData struct {
	Tag        uint8
	Slot       uint8
	PaddingU16 uint16
	InstrID    uint32
}

func ParseVMChangeWhitelistData(data []byte, ctx Context) (*VMChangeWhitelistData, error) {
	return parse[VMChangeWhitelistData](data, IxVMChangeWhitelist.Number, ctx)
}

func (d *VMChangeWhitelistData) Validate(ctx Context) error {
	if int(d.Slot) >= state.VMWhitelistSlots {
		return drverr.New(drverr.InvalidVMWhitelistSlot, d.Slot, state.VMWhitelistSlots-1)
	}
	if d.InstrID == models.NullInstr {
		return nil
	}
	return ctx.checkInstr(d.InstrID)
}
