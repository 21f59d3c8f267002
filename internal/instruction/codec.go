package instruction

import (
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
)

// Payload is implemented by every instruction data struct.
type Payload interface {
	Validate(ctx Context) error
}

type payloadPtr[T any] interface {
	*T
	Payload
}

// parse decodes exactly one T from data, checks the leading opcode byte and
// validates the fields.
func parse[T any, P payloadPtr[T]](data []byte, opcode uint8, ctx Context) (*T, error) {
	v, err := layout.Decode[T](data)
	if err != nil {
		return nil, err
	}
	if data[0] != opcode {
		return nil, drverr.New(drverr.InvalidInstructionTag, opcode, data[0])
	}
	if err := P(v).Validate(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode returns the instruction data bytes of v.
func Encode[T any, P payloadPtr[T]](v *T) ([]byte, error) {
	return layout.Encode(v)
}

// EmptyData is the payload of instructions that carry only their opcode.
type EmptyData struct {
	Tag uint8
}

func (*EmptyData) Validate(Context) error { return nil }

// ParseEmptyData parses the payload of a tag-only instruction.
func ParseEmptyData(data []byte, opcode uint8) (*EmptyData, error) {
	return parse[EmptyData](data, opcode, Context{})
}

type parseFunc func(data []byte, ctx Context) (Payload, error)

func wrap[T any, P payloadPtr[T]](fn func([]byte, Context) (*T, error)) parseFunc {
	return func(data []byte, ctx Context) (Payload, error) {
		v, err := fn(data, ctx)
		if err != nil {
			return nil, err
		}
		return P(v), nil
	}
}

func empty(m Meta) parseFunc {
	return func(data []byte, _ Context) (Payload, error) {
		v, err := ParseEmptyData(data, m.Number)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var parsers = map[uint8]parseFunc{
	IxNewHolder.Number:                     empty(IxNewHolder),
	IxNewOperator.Number:                   wrap(ParseNewOperatorData),
	IxNewRootAccount.Number:                wrap(ParseNewRootAccountData),
	IxPerpWithdraw.Number:                  wrap(ParsePerpWithdrawData),
	IxNewBaseCrncy.Number:                  wrap(ParseNewBaseCrncyData),
	IxFeesDeposit.Number:                   wrap(ParseFeesDepositData),
	IxDeposit.Number:                       wrap(ParseDepositData),
	IxWithdraw.Number:                      wrap(ParseWithdrawData),
	IxNewInstrument.Number:                 wrap(ParseNewInstrumentData),
	IxUpgradeToPerp.Number:                 wrap(ParseUpgradeToPerpData),
	IxPerpDeposit.Number:                   wrap(ParsePerpDepositData),
	IxNewSpotOrder.Number:                  wrap(ParseNewSpotOrderData),
	IxSpotOrderCancel.Number:               wrap(ParseSpotOrderCancelData),
	IxSpotLp.Number:                        wrap(ParseSpotLpData),
	IxSpotMassCancel.Number:                wrap(ParseSpotMassCancelData),
	IxNextVoting.Number:                    empty(IxNextVoting),
	IxNewPerpOrder.Number:                  wrap(ParseNewPerpOrderData),
	IxDividendsAllocation.Number:           empty(IxDividendsAllocation),
	IxSwap.Number:                          wrap(ParseSwapData),
	IxAirdrop.Number:                       wrap(ParseAirdropData),
	IxDividendsClaim.Number:                empty(IxDividendsClaim),
	IxPerpOrderCancel.Number:               wrap(ParsePerpOrderCancelData),
	IxVoting.Number:                        wrap(ParseVotingData),
	IxSpotQuotesReplace.Number:             wrap(ParseSpotQuotesReplaceData),
	IxPerpMassCancel.Number:                wrap(ParsePerpMassCancelData),
	IxPerpChangeLeverage.Number:            wrap(ParsePerpChangeLeverageData),
	IxFeesWithdraw.Number:                  wrap(ParseFeesWithdrawData),
	IxSetInstrReadyForPerpUpgrade.Number:   wrap(ParseSetInstrReadyForPerpUpgradeData),
	IxPerpQuotesReplace.Number:             wrap(ParsePerpQuotesReplaceData),
	IxMoveSpotAvailFunds.Number:            wrap(ParseMoveSpotAvailFundsData),
	IxChangeRefProgram.Number:              wrap(ParseChangeRefProgramData),
	IxNewRefLink.Number:                    empty(IxNewRefLink),
	IxPerpStatisticsReset.Number:           wrap(ParsePerpStatisticsResetData),
	IxBuyMarketSeat.Number:                 wrap(ParseBuyMarketSeatData),
	IxSellMarketSeat.Number:                wrap(ParseSellMarketSeatData),
	IxNewPrivateClient.Number:              wrap(ParseNewPrivateClientData),
	IxTerminatePrivateMode.Number:          empty(IxTerminatePrivateMode),
	IxChangePointsProgramExpiration.Number: wrap(ParsePointsProgramExpirationData),
	IxChangeAirdropAuthority.Number:        empty(IxChangeAirdropAuthority),
	IxChangePrivateModeAuthority.Number:    empty(IxChangePrivateModeAuthority),
	IxSetVariance.Number:                   wrap(ParseSetVarianceData),
	IxVotingReset.Number:                   empty(IxVotingReset),
	IxChangeDenominator.Number:             wrap(ParseChangeDenominatorData),
	IxPerpClientsProcessing.Number:         wrap(ParsePerpClientsProcessingData),
	IxSetSeatPurchasingFee.Number:          wrap(ParseSetSeatPurchasingFeeData),
	IxChangeVoting.Number:                  wrap(ParseChangeVotingData),
	IxGarbageCollector.Number:              wrap(ParseGarbageCollectorData),
	IxActivateClientRefProgram.Number:      wrap(ParseActivateClientRefProgramData),
	IxCleanCandles.Number:                  wrap(ParseCleanCandlesData),
	IxVMInitActivate.Number:                empty(IxVMInitActivate),
	IxVMInitActivateCancel.Number:          empty(IxVMInitActivateCancel),
	IxVMFinalizeActivate.Number:            empty(IxVMFinalizeActivate),
	IxVMInitDeactivate.Number:              empty(IxVMInitDeactivate),
	IxVMInitDeactivateCancel.Number:        empty(IxVMInitDeactivateCancel),
	IxVMFinalizeDeactivate.Number:          empty(IxVMFinalizeDeactivate),
	IxVMInitWithdraw.Number:                wrap(ParseVMInitWithdrawData),
	IxVMInitWithdrawCancel.Number:          empty(IxVMInitWithdrawCancel),
	IxVMInitWithdrawFinalize.Number:        empty(IxVMInitWithdrawFinalize),
	IxVMChangeWhitelist.Number:             wrap(ParseVMChangeWhitelistData),
}

// Parse decodes instruction data by its leading opcode.
func Parse(data []byte, ctx Context) (Meta, Payload, error) {
	if len(data) == 0 {
		return Meta{}, nil, drverr.New(drverr.InvalidDataFormat, 1, 0)
	}
	meta, ok := Lookup(data[0])
	if !ok {
		return Meta{}, nil, drverr.New(drverr.UnknownInstruction, data[0])
	}
	payload, err := parsers[meta.Number](data, ctx)
	if err != nil {
		return meta, nil, err
	}
	return meta, payload, nil
}
