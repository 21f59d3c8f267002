// Package report defines the event records the program writes to its logs
// after each state change, and decodes them back for indexers.
package report

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
)

// Log types, the first byte of every record.
const (
	LogDeposit             uint8 = 1
	LogWithdraw            uint8 = 2
	LogPerpDeposit         uint8 = 3
	LogPerpWithdraw        uint8 = 4
	LogFeesDeposit         uint8 = 5
	LogFeesWithdraw        uint8 = 6
	LogSpotLpTrade         uint8 = 7
	LogEarnings            uint8 = 8
	LogDrvsAirdrop         uint8 = 9
	LogSpotPlaceOrder      uint8 = 10
	LogSpotFillOrder       uint8 = 11
	LogSpotNewOrder        uint8 = 12
	LogSpotOrderCancel     uint8 = 13
	LogSpotOrderRevoke     uint8 = 14
	LogSpotFees            uint8 = 15
	LogSpotPlaceMassCancel uint8 = 16
	LogSpotMassCancel      uint8 = 17
	LogPerpPlaceOrder      uint8 = 18
	LogPerpFillOrder       uint8 = 19
	LogPerpNewOrder        uint8 = 20
	LogPerpOrderCancel     uint8 = 21
	LogPerpOrderRevoke     uint8 = 22
	LogPerpFees            uint8 = 23
	LogPerpFunding         uint8 = 24
	LogPerpPlaceMassCancel uint8 = 25
	LogPerpMassCancel      uint8 = 26
	LogPerpSocLoss         uint8 = 27
	LogPerpChangeLeverage  uint8 = 28
	LogBuyMarketSeat       uint8 = 29
	LogSellMarketSeat      uint8 = 30
	LogSwapOrder           uint8 = 31
	LogMoveSpot            uint8 = 32
	LogNewPrivateClient    uint8 = 33
)

var ErrUnknownLogType = errors.New("report: unknown log type")

// ProgramDataPrefix starts every log line that carries a binary record.
const ProgramDataPrefix = "Program data: "

// Report is one log record.
type Report interface {
	LogType() uint8
}

type reportPtr[T any] interface {
	*T
	Report
}

type decodeFunc func(data []byte) (Report, error)

func decodeAs[T any, P reportPtr[T]]() decodeFunc {
	return func(data []byte) (Report, error) {
		v, err := layout.Decode[T](data)
		if err != nil {
			return nil, err
		}
		return P(v), nil
	}
}

var decoders = map[uint8]decodeFunc{
	LogDeposit:             decodeAs[DepositReport](),
	LogWithdraw:            decodeAs[WithdrawReport](),
	LogPerpDeposit:         decodeAs[PerpDepositReport](),
	LogPerpWithdraw:        decodeAs[PerpWithdrawReport](),
	LogFeesDeposit:         decodeAs[FeesDepositReport](),
	LogFeesWithdraw:        decodeAs[FeesWithdrawReport](),
	LogSpotLpTrade:         decodeAs[SpotLpTradeReport](),
	LogEarnings:            decodeAs[EarningsReport](),
	LogDrvsAirdrop:         decodeAs[DrvsAirdropReport](),
	LogSpotPlaceOrder:      decodeAs[SpotPlaceOrderReport](),
	LogSpotFillOrder:       decodeAs[SpotFillOrderReport](),
	LogSpotNewOrder:        decodeAs[SpotNewOrderReport](),
	LogSpotOrderCancel:     decodeAs[SpotOrderCancelReport](),
	LogSpotOrderRevoke:     decodeAs[SpotOrderRevokeReport](),
	LogSpotFees:            decodeAs[SpotFeesReport](),
	LogSpotPlaceMassCancel: decodeAs[SpotPlaceMassCancelReport](),
	LogSpotMassCancel:      decodeAs[SpotMassCancelReport](),
	LogPerpPlaceOrder:      decodeAs[PerpPlaceOrderReport](),
	LogPerpFillOrder:       decodeAs[PerpFillOrderReport](),
	LogPerpNewOrder:        decodeAs[PerpNewOrderReport](),
	LogPerpOrderCancel:     decodeAs[PerpOrderCancelReport](),
	LogPerpOrderRevoke:     decodeAs[PerpOrderRevokeReport](),
	LogPerpFees:            decodeAs[PerpFeesReport](),
	LogPerpFunding:         decodeAs[PerpFundingReport](),
	LogPerpPlaceMassCancel: decodeAs[PerpPlaceMassCancelReport](),
	LogPerpMassCancel:      decodeAs[PerpMassCancelReport](),
	LogPerpSocLoss:         decodeAs[PerpSocLossReport](),
	LogPerpChangeLeverage:  decodeAs[PerpChangeLeverageReport](),
	LogBuyMarketSeat:       decodeAs[BuyMarketSeatReport](),
	LogSellMarketSeat:      decodeAs[SellMarketSeatReport](),
	LogSwapOrder:           decodeAs[SwapOrderReport](),
	LogMoveSpot:            decodeAs[MoveSpotAvailFundsReport](),
	LogNewPrivateClient:    decodeAs[NewPrivateClientReport](),
}

// Encode returns the wire bytes of r, which must be a pointer to one of the
// record structs. The Tag byte is forced to r.LogType().
func Encode(r Report) ([]byte, error) {
	data, err := layout.EncodeValue(r)
	if err != nil {
		return nil, err
	}
	data[0] = r.LogType()
	return data, nil
}

// Decode reads one record, choosing the type by the leading tag byte.
func Decode(data []byte) (Report, error) {
	if len(data) == 0 {
		return nil, drverr.New(drverr.InvalidDataFormat, 1, 0)
	}
	dec, ok := decoders[data[0]]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownLogType, data[0])
	}
	return dec(data)
}

// FormatProgramData frames a record as the runtime prints it.
func FormatProgramData(r Report) (string, error) {
	data, err := Encode(r)
	if err != nil {
		return "", err
	}
	return ProgramDataPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// ParseProgramData decodes a "Program data: " log line. ok is false for
// lines that carry no record.
func ParseProgramData(line string) (r Report, ok bool, err error) {
	payload, found := strings.CutPrefix(line, ProgramDataPrefix)
	if !found {
		return nil, false, nil
	}
	// A single emit may carry several space-separated chunks; records are
	// always written as one.
	payload, _, _ = strings.Cut(strings.TrimSpace(payload), " ")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, true, fmt.Errorf("report: decode base64: %w", err)
	}
	r, err = Decode(data)
	if err != nil {
		return nil, true, err
	}
	return r, true, nil
}

// Name is the snake-case event name of a log type, used as the indexer's
// event kind.
func Name(logType uint8) string {
	if name, ok := names[logType]; ok {
		return name
	}
	return fmt.Sprintf("log_%d", logType)
}

var names = map[uint8]string{
	LogDeposit:             "deposit",
	LogWithdraw:            "withdraw",
	LogPerpDeposit:         "perp_deposit",
	LogPerpWithdraw:        "perp_withdraw",
	LogFeesDeposit:         "fees_deposit",
	LogFeesWithdraw:        "fees_withdraw",
	LogSpotLpTrade:         "spot_lp_trade",
	LogEarnings:            "earnings",
	LogDrvsAirdrop:         "drvs_airdrop",
	LogSpotPlaceOrder:      "spot_place_order",
	LogSpotFillOrder:       "spot_fill_order",
	LogSpotNewOrder:        "spot_new_order",
	LogSpotOrderCancel:     "spot_order_cancel",
	LogSpotOrderRevoke:     "spot_order_revoke",
	LogSpotFees:            "spot_fees",
	LogSpotPlaceMassCancel: "spot_place_mass_cancel",
	LogSpotMassCancel:      "spot_mass_cancel",
	LogPerpPlaceOrder:      "perp_place_order",
	LogPerpFillOrder:       "perp_fill_order",
	LogPerpNewOrder:        "perp_new_order",
	LogPerpOrderCancel:     "perp_order_cancel",
	LogPerpOrderRevoke:     "perp_order_revoke",
	LogPerpFees:            "perp_fees",
	LogPerpFunding:         "perp_funding",
	LogPerpPlaceMassCancel: "perp_place_mass_cancel",
	LogPerpMassCancel:      "perp_mass_cancel",
	LogPerpSocLoss:         "perp_soc_loss",
	LogPerpChangeLeverage:  "perp_change_leverage",
	LogBuyMarketSeat:       "buy_market_seat",
	LogSellMarketSeat:      "sell_market_seat",
	LogSwapOrder:           "swap_order",
	LogMoveSpot:            "move_spot",
	LogNewPrivateClient:    "new_private_client",
}
