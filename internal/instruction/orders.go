package instruction

import (
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

const (
	NewSpotOrderDataSize   = 32
	NewPerpOrderDataSize   = 40
	OrderCancelDataSize    = 16
	InstrDataSize          = 8
	QuotesReplaceDataSize  = 56
	PerpChangeLeverageSize = 8
	SpotLpDataSize         = 24
	SwapDataSize           = 24
	BuyMarketSeatDataSize  = 24
	SellMarketSeatDataSize = 16
)

type NewSpotOrderData struct {
	Tag       uint8
	IOC       uint8
	OrderType uint8
	Side      uint8
	InstrID   uint32
	Price     int64
	Amount    int64
	EdgePrice int64
}

func ParseNewSpotOrderData(data []byte, ctx Context) (*NewSpotOrderData, error) {
	return parse[NewSpotOrderData](data, IxNewSpotOrder.Number, ctx)
}

func (d *NewSpotOrderData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkSide(d.Side); err != nil {
		return err
	}
	orderType, err := models.ParseClientOrderType(d.OrderType)
	if err != nil {
		return err
	}
	if err := checkOrderPrice(d.Price, orderType); err != nil {
		return err
	}
	if err := checkPrice(d.EdgePrice, 0); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

// NewPerpOrderData places a perp order. Leverage 0 keeps the client's
// current leverage.
type NewPerpOrderData struct {
	Tag        uint8
	IOC        uint8
	Leverage   uint8
	OrderType  uint8
	Side       uint8
	PaddingU8  uint8
	PaddingU16 uint16
	PaddingU32 uint32
	InstrID    uint32
	Price      int64
	Amount     int64
	EdgePrice  int64
}

func ParseNewPerpOrderData(data []byte, ctx Context) (*NewPerpOrderData, error) {
	return parse[NewPerpOrderData](data, IxNewPerpOrder.Number, ctx)
}

func (d *NewPerpOrderData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkSide(d.Side); err != nil {
		return err
	}
	orderType, err := models.ParseClientOrderType(d.OrderType)
	if err != nil {
		return err
	}
	if err := checkLeverage(d.Leverage, 0); err != nil {
		return err
	}
	if err := checkOrderPrice(d.Price, orderType); err != nil {
		return err
	}
	if err := checkPrice(d.EdgePrice, 0); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

type OrderCancelData struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	InstrID    uint32
	OrderID    int64
}

func (d *OrderCancelData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkSide(d.Side); err != nil {
		return err
	}
	return checkOrderID(d.OrderID)
}

type (
	SpotOrderCancelData OrderCancelData
	PerpOrderCancelData OrderCancelData
)

func (d *SpotOrderCancelData) Validate(ctx Context) error {
	return (*OrderCancelData)(d).Validate(ctx)
}

func (d *PerpOrderCancelData) Validate(ctx Context) error {
	return (*OrderCancelData)(d).Validate(ctx)
}

func ParseSpotOrderCancelData(data []byte, ctx Context) (*SpotOrderCancelData, error) {
	return parse[SpotOrderCancelData](data, IxSpotOrderCancel.Number, ctx)
}

func ParsePerpOrderCancelData(data []byte, ctx Context) (*PerpOrderCancelData, error) {
	return parse[PerpOrderCancelData](data, IxPerpOrderCancel.Number, ctx)
}

// InstrData is the shared shape of payloads that only name an instrument.
type InstrData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	InstrID    uint32
}

func (d *InstrData) Validate(ctx Context) error {
	return ctx.checkInstr(d.InstrID)
}

type (
	SpotMassCancelData        InstrData
	PerpMassCancelData        InstrData
	UpgradeToPerpData         InstrData
	MoveSpotAvailFundsData    InstrData
	PerpStatisticsResetData   InstrData
	PerpClientsProcessingData InstrData
	GarbageCollectorData      InstrData
	CleanCandlesData          InstrData
)

func (d *SpotMassCancelData) Validate(ctx Context) error        { return (*InstrData)(d).Validate(ctx) }
func (d *PerpMassCancelData) Validate(ctx Context) error        { return (*InstrData)(d).Validate(ctx) }
func (d *UpgradeToPerpData) Validate(ctx Context) error         { return (*InstrData)(d).Validate(ctx) }
func (d *MoveSpotAvailFundsData) Validate(ctx Context) error    { return (*InstrData)(d).Validate(ctx) }
func (d *PerpStatisticsResetData) Validate(ctx Context) error   { return (*InstrData)(d).Validate(ctx) }
func (d *PerpClientsProcessingData) Validate(ctx Context) error { return (*InstrData)(d).Validate(ctx) }
func (d *GarbageCollectorData) Validate(ctx Context) error      { return (*InstrData)(d).Validate(ctx) }
func (d *CleanCandlesData) Validate(ctx Context) error          { return (*InstrData)(d).Validate(ctx) }

func ParseSpotMassCancelData(data []byte, ctx Context) (*SpotMassCancelData, error) {
	return parse[SpotMassCancelData](data, IxSpotMassCancel.Number, ctx)
}

func ParsePerpMassCancelData(data []byte, ctx Context) (*PerpMassCancelData, error) {
	return parse[PerpMassCancelData](data, IxPerpMassCancel.Number, ctx)
}

func ParseUpgradeToPerpData(data []byte, ctx Context) (*UpgradeToPerpData, error) {
	return parse[UpgradeToPerpData](data, IxUpgradeToPerp.Number, ctx)
}

func ParseMoveSpotAvailFundsData(data []byte, ctx Context) (*MoveSpotAvailFundsData, error) {
	return parse[MoveSpotAvailFundsData](data, IxMoveSpotAvailFunds.Number, ctx)
}

func ParsePerpStatisticsResetData(data []byte, ctx Context) (*PerpStatisticsResetData, error) {
	return parse[PerpStatisticsResetData](data, IxPerpStatisticsReset.Number, ctx)
}

func ParsePerpClientsProcessingData(data []byte, ctx Context) (*PerpClientsProcessingData, error) {
	return parse[PerpClientsProcessingData](data, IxPerpClientsProcessing.Number, ctx)
}

func ParseGarbageCollectorData(data []byte, ctx Context) (*GarbageCollectorData, error) {
	return parse[GarbageCollectorData](data, IxGarbageCollector.Number, ctx)
}

func ParseCleanCandlesData(data []byte, ctx Context) (*CleanCandlesData, error) {
	return parse[CleanCandlesData](data, IxCleanCandles.Number, ctx)
}

// QuotesReplaceData replaces a market maker's bid and ask in one step.
type QuotesReplaceData struct {
	Tag           uint8
	PaddingU8     uint8
	PaddingU16    uint16
	InstrID       uint32
	NewBidPrice   int64
	NewBidQty     int64
	OldBidOrderID int64
	NewAskPrice   int64
	NewAskQty     int64
	OldAskOrderID int64
}

func (d *QuotesReplaceData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkPrice(d.NewBidPrice, 1); err != nil {
		return err
	}
	if err := checkPrice(d.NewAskPrice, 1); err != nil {
		return err
	}
	if d.NewBidPrice >= d.NewAskPrice {
		return drverr.New(drverr.InvalidPrice, d.NewBidPrice, int64(1), d.NewAskPrice)
	}
	if err := checkAmount(d.NewBidQty, 0); err != nil {
		return err
	}
	if err := checkAmount(d.NewAskQty, 0); err != nil {
		return err
	}
	if err := checkOrderID(d.OldBidOrderID); err != nil {
		return err
	}
	return checkOrderID(d.OldAskOrderID)
}

type (
	SpotQuotesReplaceData QuotesReplaceData
	PerpQuotesReplaceData QuotesReplaceData
)

func (d *SpotQuotesReplaceData) Validate(ctx Context) error {
	return (*QuotesReplaceData)(d).Validate(ctx)
}

func (d *PerpQuotesReplaceData) Validate(ctx Context) error {
	return (*QuotesReplaceData)(d).Validate(ctx)
}

func ParseSpotQuotesReplaceData(data []byte, ctx Context) (*SpotQuotesReplaceData, error) {
	return parse[SpotQuotesReplaceData](data, IxSpotQuotesReplace.Number, ctx)
}

func ParsePerpQuotesReplaceData(data []byte, ctx Context) (*PerpQuotesReplaceData, error) {
	return parse[PerpQuotesReplaceData](data, IxPerpQuotesReplace.Number, ctx)
}

type PerpChangeLeverageData struct {
	Tag        uint8
	Leverage   uint8
	PaddingU16 uint16
	InstrID    uint32
}

func ParsePerpChangeLeverageData(data []byte, ctx Context) (*PerpChangeLeverageData, error) {
	return parse[PerpChangeLeverageData](data, IxPerpChangeLeverage.Number, ctx)
}

func (d *PerpChangeLeverageData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	return checkLeverage(d.Leverage, 1)
}

// SpotLpData adds (Side 0) or removes (Side 1) pool liquidity.
type SpotLpData struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	InstrID    uint32
	Amount     int64
	EdgePrice  int64
}

func ParseSpotLpData(data []byte, ctx Context) (*SpotLpData, error) {
	return parse[SpotLpData](data, IxSpotLp.Number, ctx)
}

func (d *SpotLpData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkSide(d.Side); err != nil {
		return err
	}
	if err := checkPrice(d.EdgePrice, 0); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

// SwapData trades against the book in one step. InputCrncy selects which
// token Amount is denominated in.
type SwapData struct {
	Tag        uint8
	InputCrncy uint8
	PaddingU16 uint16
	InstrID    uint32
	Price      int64
	Amount     int64
}

func ParseSwapData(data []byte, ctx Context) (*SwapData, error) {
	return parse[SwapData](data, IxSwap.Number, ctx)
}

func (d *SwapData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkPrice(d.Price, 0); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

type BuyMarketSeatData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	InstrID    uint32
	EdgePrice  int64
	Amount     int64
}

func ParseBuyMarketSeatData(data []byte, ctx Context) (*BuyMarketSeatData, error) {
	return parse[BuyMarketSeatData](data, IxBuyMarketSeat.Number, ctx)
}

func (d *BuyMarketSeatData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	if err := checkPrice(d.EdgePrice, 0); err != nil {
		return err
	}
	return checkAmount(d.Amount, 1)
}

type SellMarketSeatData struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	InstrID    uint32
	EdgePrice  int64
}

func ParseSellMarketSeatData(data []byte, ctx Context) (*SellMarketSeatData, error) {
	return parse[SellMarketSeatData](data, IxSellMarketSeat.Number, ctx)
}

func (d *SellMarketSeatData) Validate(ctx Context) error {
	if err := ctx.checkInstr(d.InstrID); err != nil {
		return err
	}
	return checkPrice(d.EdgePrice, 0)
}
