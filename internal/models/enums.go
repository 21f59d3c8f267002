package models

import (
	"fmt"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
)

type OrderSide uint8

const (
	SideBid OrderSide = 0
	SideAsk OrderSide = 1
)

// ParseOrderSide accepts only the two wire values.
func ParseOrderSide(v uint8) (OrderSide, error) {
	switch OrderSide(v) {
	case SideBid, SideAsk:
		return OrderSide(v), nil
	}
	return 0, drverr.New(drverr.InvalidOrderSide, v)
}

func (s OrderSide) String() string {
	switch s {
	case SideBid:
		return "Bid"
	case SideAsk:
		return "Ask"
	}
	return fmt.Sprintf("OrderSide(%d)", uint8(s))
}

type OrderType uint8

const (
	OrderLimit      OrderType = 0
	OrderMarket     OrderType = 1
	OrderMarginCall OrderType = 2
	// OrderForcedClose only appears in reports written before the
	// forced-close instruction was retired.
	OrderForcedClose OrderType = 3
)

// ParseClientOrderType accepts the order types a client may submit.
func ParseClientOrderType(v uint8) (OrderType, error) {
	switch OrderType(v) {
	case OrderLimit, OrderMarket:
		return OrderType(v), nil
	}
	return 0, drverr.New(drverr.InvalidOrderType, v)
}

func (t OrderType) String() string {
	switch t {
	case OrderLimit:
		return "Limit"
	case OrderMarket:
		return "Market"
	case OrderMarginCall:
		return "Margin Call"
	case OrderForcedClose:
		return "Forced Close"
	}
	return fmt.Sprintf("OrderType(%d)", uint8(t))
}

type MarketSeatOrderType uint8

const (
	SeatBuy MarketSeatOrderType = iota
	SeatSell
)

func (t MarketSeatOrderType) String() string {
	if t == SeatSell {
		return "Sell"
	}
	return "Buy"
}

type TokenProgram uint8

const (
	TokenProgramOriginal TokenProgram = iota
	TokenProgram2022
)

func (p TokenProgram) String() string {
	if p == TokenProgram2022 {
		return "Token2022"
	}
	return "Original"
}

// AssetType occupies the high nibble of AssetRecord.AssetID.
type AssetType uint32

const (
	AssetToken      AssetType = 0x10000000
	AssetSpotLp     AssetType = 0x20000000
	AssetSpotOrders AssetType = 0x30000000
	AssetPerp       AssetType = 0x40000000

	assetTypeMask uint32 = 0xF0000000
)

// SplitAssetID separates an asset id into its type and the instrument or
// token index.
func SplitAssetID(id uint32) (AssetType, uint32) {
	return AssetType(id & assetTypeMask), id &^ assetTypeMask
}

func (a AssetType) String() string {
	switch a {
	case AssetToken:
		return "Token"
	case AssetSpotLp:
		return "SpotLp"
	case AssetSpotOrders:
		return "SpotOrders"
	case AssetPerp:
		return "Perp"
	}
	return fmt.Sprintf("AssetType(%#x)", uint32(a))
}

// Vote choices carried by the voting instructions.
const (
	VoteDecrement uint8 = 0
	VoteUnchange  uint8 = 1
	VoteIncrement uint8 = 2
)

func ValidVoteOption(choice uint8) bool {
	return choice <= VoteIncrement
}

const RootMaskPrivateMode uint32 = 0x1

const (
	InstrMaskDrv                uint32 = 0x10000000
	InstrMaskPerp               uint32 = 0x40000000
	InstrMaskOracle             uint32 = 0x80000000
	InstrMaskReadyToPerpUpgrade uint32 = 0x1000000
)

const (
	TokenMaskDecimals  uint32 = 0xFF
	TokenMaskBaseCrncy uint32 = 0x40000000
)

// CandleParams describes one candle account family.
type CandleParams struct {
	Tag      uint32
	Capacity uint32
	Duration uint32
}

var candles = []CandleParams{
	{Tag: uint32(AccountSpot1MCandles), Capacity: 10080, Duration: 60},
	{Tag: uint32(AccountSpot15MCandles), Capacity: 2688, Duration: 900},
	{Tag: uint32(AccountSpotDayCandles), Capacity: 5844, Duration: 86400},
}

func Candles() []CandleParams {
	out := make([]CandleParams, len(candles))
	copy(out, candles)
	return out
}

func CandleParamsFor(tag uint32) (CandleParams, error) {
	for _, p := range candles {
		if p.Tag == tag {
			return p, nil
		}
	}
	return CandleParams{}, drverr.New(drverr.InvalidCandlesTag, tag)
}
