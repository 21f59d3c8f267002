package report

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

// TokenReport is the shared shape of token-keyed balance movements.
type TokenReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	TokenID    uint32
	Time       uint32
	Amount     int64
}

type (
	DepositReport      TokenReport
	WithdrawReport     TokenReport
	FeesDepositReport  TokenReport
	FeesWithdrawReport TokenReport
	EarningsReport     TokenReport
)

func (DepositReport) LogType() uint8      { return LogDeposit }
func (WithdrawReport) LogType() uint8     { return LogWithdraw }
func (FeesDepositReport) LogType() uint8  { return LogFeesDeposit }
func (FeesWithdrawReport) LogType() uint8 { return LogFeesWithdraw }
func (EarningsReport) LogType() uint8     { return LogEarnings }

// InstrAmountReport is the shared shape of per-instrument amounts.
type InstrAmountReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
	Amount     int64
}

type (
	PerpDepositReport  InstrAmountReport
	PerpWithdrawReport InstrAmountReport
	// PerpFundingReport carries the funding payment in Amount.
	PerpFundingReport InstrAmountReport
	// PerpSocLossReport carries the socialized loss in Amount.
	PerpSocLossReport InstrAmountReport
)

func (PerpDepositReport) LogType() uint8  { return LogPerpDeposit }
func (PerpWithdrawReport) LogType() uint8 { return LogPerpWithdraw }
func (PerpFundingReport) LogType() uint8  { return LogPerpFunding }
func (PerpSocLossReport) LogType() uint8  { return LogPerpSocLoss }

type DrvsAirdropReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	Amount     int64
	Time       uint32
	PaddingU32 uint32
}

func (DrvsAirdropReport) LogType() uint8 { return LogDrvsAirdrop }

type SpotLpTradeReport struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	Time       uint32
	InstrID    models.InstrID
	OrderID    int64
	Qty        int64
	Tokens     int64
	Crncy      int64
}

func (SpotLpTradeReport) LogType() uint8 { return LogSpotLpTrade }

type SpotPlaceOrderReport struct {
	Tag       uint8
	IOC       uint8
	Side      uint8
	OrderType uint8
	ClientID  models.ClientID
	OrderID   int64
	Qty       int64
	Price     int64
	InstrID   models.InstrID
	Time      uint32
}

func (SpotPlaceOrderReport) LogType() uint8 { return LogSpotPlaceOrder }

type PerpPlaceOrderReport struct {
	Tag        uint8
	IOC        uint8
	Side       uint8
	OrderType  uint8
	ClientID   models.ClientID
	OrderID    int64
	Perps      int64
	Price      int64
	InstrID    models.InstrID
	Leverage   uint32
	Time       uint32
	PaddingU32 uint32
}

func (PerpPlaceOrderReport) LogType() uint8 { return LogPerpPlaceOrder }

// FillOrderReport is written for the maker side of every match. Qty holds
// spot asset tokens or perp contracts.
type FillOrderReport struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	OrderID    int64
	Qty        int64
	Crncy      int64
	Price      int64
	Rebates    int64
}

type (
	SpotFillOrderReport FillOrderReport
	PerpFillOrderReport FillOrderReport
)

func (SpotFillOrderReport) LogType() uint8 { return LogSpotFillOrder }
func (PerpFillOrderReport) LogType() uint8 { return LogPerpFillOrder }

// NewOrderReport closes an order placement with what rested on the book.
type NewOrderReport struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	PaddingU32 uint32
	Qty        int64
	Crncy      int64
}

type (
	SpotNewOrderReport NewOrderReport
	PerpNewOrderReport NewOrderReport
)

func (SpotNewOrderReport) LogType() uint8 { return LogSpotNewOrder }
func (PerpNewOrderReport) LogType() uint8 { return LogPerpNewOrder }

type OrderCancelReport struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
	OrderID    int64
	Qty        int64
	Crncy      int64
}

type (
	SpotOrderCancelReport OrderCancelReport
	PerpOrderCancelReport OrderCancelReport
)

func (SpotOrderCancelReport) LogType() uint8 { return LogSpotOrderCancel }
func (PerpOrderCancelReport) LogType() uint8 { return LogPerpOrderCancel }

// OrderRevokeReport is written when the engine removes a client's order
// without a cancel instruction.
type OrderRevokeReport struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	OrderID    int64
	Qty        int64
	Crncy      int64
}

type (
	SpotOrderRevokeReport OrderRevokeReport
	PerpOrderRevokeReport OrderRevokeReport
)

func (SpotOrderRevokeReport) LogType() uint8 { return LogSpotOrderRevoke }
func (PerpOrderRevokeReport) LogType() uint8 { return LogPerpOrderRevoke }

type FeesReport struct {
	Tag         uint8
	PaddingU8   uint8
	PaddingU16  uint16
	RefClientID models.ClientID
	Fees        int64
	RefPayment  int64
}

type (
	SpotFeesReport FeesReport
	PerpFeesReport FeesReport
)

func (SpotFeesReport) LogType() uint8 { return LogSpotFees }
func (PerpFeesReport) LogType() uint8 { return LogPerpFees }

type PlaceMassCancelReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
}

type (
	SpotPlaceMassCancelReport PlaceMassCancelReport
	PerpPlaceMassCancelReport PlaceMassCancelReport
)

func (SpotPlaceMassCancelReport) LogType() uint8 { return LogSpotPlaceMassCancel }
func (PerpPlaceMassCancelReport) LogType() uint8 { return LogPerpPlaceMassCancel }

// MassCancelReport is written once per order removed by a mass cancel.
type MassCancelReport struct {
	Tag        uint8
	Side       uint8
	PaddingU16 uint16
	PaddingU32 uint32
	OrderID    int64
	Qty        int64
	Crncy      int64
}

type (
	SpotMassCancelReport MassCancelReport
	PerpMassCancelReport MassCancelReport
)

func (SpotMassCancelReport) LogType() uint8 { return LogSpotMassCancel }
func (PerpMassCancelReport) LogType() uint8 { return LogPerpMassCancel }

type PerpChangeLeverageReport struct {
	Tag        uint8
	Leverage   uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
}

func (PerpChangeLeverageReport) LogType() uint8 { return LogPerpChangeLeverage }

type BuyMarketSeatReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
	Amount     int64
	SeatPrice  int64
}

func (BuyMarketSeatReport) LogType() uint8 { return LogBuyMarketSeat }

type SellMarketSeatReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
	SeatPrice  int64
}

func (SellMarketSeatReport) LogType() uint8 { return LogSellMarketSeat }

type SwapOrderReport struct {
	Tag        uint8
	Side       uint8
	OrderType  uint8
	PaddingU8  uint8
	PaddingU32 uint32
	OrderID    int64
	Qty        int64
	Price      int64
	Time       uint32
	InstrID    models.InstrID
}

func (SwapOrderReport) LogType() uint8 { return LogSwapOrder }

type MoveSpotAvailFundsReport struct {
	Tag        uint8
	PaddingU8  uint8
	PaddingU16 uint16
	ClientID   models.ClientID
	InstrID    models.InstrID
	Time       uint32
	Qty        int64
	Crncy      int64
}

func (MoveSpotAvailFundsReport) LogType() uint8 { return LogMoveSpot }

type NewPrivateClientReport struct {
	Tag            uint8
	PaddingU8      uint8
	PaddingU16     uint16
	Wallet         solana.PublicKey
	InsertIndex    uint32
	CreationTime   uint32
	ExpirationTime uint32
}

func (NewPrivateClientReport) LogType() uint8 { return LogNewPrivateClient }
