package state

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

const InstrAccountHeaderSize = 1016

// InstrAccountHeader is the per-instrument state shared by the spot book,
// the pool and the perp market.
type InstrAccountHeader struct {
	Discriminator                   models.Discriminator
	InstrID                         models.InstrID
	AssetTokenID                    uint32
	CrncyTokenID                    uint32
	Mask                            uint32
	AssetTokens                     int64
	CrncyTokens                     int64
	Ps                              int64
	PoolFees                        int64
	LastPx                          int64
	LastClose                       int64
	AlltimeTrades                   int64
	PrevDayTrades                   int64
	DayVolatility                   float64
	PerpLastPx                      int64
	PerpLastClose                   int64
	PerpAlltimeTrades               int64
	PerpPrevDayTrades               int64
	PerpOpenInt                     int64
	MapsAddress                     solana.PublicKey
	PerpMapsAddress                 solana.PublicKey
	LutAddress                      solana.PublicKey
	DrvCount                        uint32
	AssetTokenDecsCount             uint32
	CrncyTokenDecsCount             uint32
	Slot                            uint32
	Creator                         solana.PublicKey
	LastTime                        uint32
	DistribTime                     uint32
	BaseCrncyIndex                  uint32
	InstanceCounter                 uint32
	VarianceCounter                 uint32
	BidsTreeNodesCount              uint32
	BidsTreeLinesEntry              uint32
	BidsTreeOrdersEntry             uint32
	AsksTreeNodesCount              uint32
	AsksTreeLinesEntry              uint32
	AsksTreeOrdersEntry             uint32
	BidLinesBegin                   uint32
	BidLinesEnd                     uint32
	BidLinesCount                   uint32
	AskLinesBegin                   uint32
	AskLinesEnd                     uint32
	AskLinesCount                   uint32
	BidOrdersCount                  uint32
	AskOrdersCount                  uint32
	FixingTime                      uint32
	FixingCrncyTokens               int64
	FixingAssetTokens               int64
	Counter                         int64
	ProtocolFees                    int64
	HitsCounter                     int64
	LastAssetTokens                 int64
	LastCrncyTokens                 int64
	LastTradeAssetTokens            int64
	LastTradeCrncyTokens            int64
	PerpUnderlyingPx                int64
	BestBid                         int64
	BestAsk                         int64
	FixingPx                        int64
	Variance                        float64
	AvgSpread                       float64
	LastSpread                      float64
	LastSpreadTime                  uint32
	TotalSpreadPeriod               uint32
	DayAssetTokens                  int64
	DayCrncyTokens                  int64
	DayLow                          int64
	DayHigh                         int64
	PrevDayAssetTokens              int64
	PrevDayCrncyTokens              int64
	AlltimeAssetTokens              float64
	AlltimeCrncyTokens              float64
	DayTrades                       uint32
	LpDayTrades                     uint32
	LpAlltimeFees                   float64
	LpDayFees                       int64
	LpPrevDayFees                   int64
	LpPrevDayTrades                 uint32
	LpTime                          uint32
	FeesTime                        uint32
	CreationTime                    uint32
	DayFees                         int64
	AlltimeFees                     float64
	PrevDayFees                     int64
	DecFactor                       int64
	PerpClientsCount                uint32
	PerpSlot                        uint32
	PerpTime                        uint32
	PerpFundingRateSlot             uint32
	PerpFundingRateTime             uint32
	PerpLongPxTreeNodesCount        uint32
	PerpLongPxTreeEntry             uint32
	PerpShortPxTreeNodesCount       uint32
	PerpShortPxTreeEntry            uint32
	PerpRebalanceTimeTreeNodesCount uint32
	PerpRebalanceTimeTreeEntry      uint32
	PerpBidsTreeNodesCount          uint32
	PerpBidsTreeLinesEntry          uint32
	PerpBidsTreeOrdersEntry         uint32
	PerpAsksTreeNodesCount          uint32
	PerpAsksTreeLinesEntry          uint32
	PerpAsksTreeOrdersEntry         uint32
	PerpBidLinesBegin               uint32
	PerpBidLinesEnd                 uint32
	PerpBidLinesCount               uint32
	PerpAskLinesBegin               uint32
	PerpAskLinesEnd                 uint32
	PerpAskLinesCount               uint32
	PerpBidOrdersCount              uint32
	PerpAskOrdersCount              uint32
	PerpDayTrades                   uint32
	PerpLongSpotPriceForWithdrawal  int64
	PerpShortSpotPriceForWithdrawal int64
	PerpSocLossLongRate             float64
	PerpSocLossShortRate            float64
	PerpPriceDelta                  float64
	PerpFundingRate                 float64
	PerpFundingFunds                int64
	PerpSocLossFunds                int64
	PerpInsuranceFund               int64
	PerpLastTradeAssetTokens        int64
	PerpLastTradeCrncyTokens        int64
	PerpBestBid                     int64
	PerpBestAsk                     int64
	PerpDayAssetTokens              int64
	PerpDayCrncyTokens              int64
	PerpDayLow                      int64
	PerpDayHigh                     int64
	PerpPrevDayAssetTokens          int64
	PerpPrevDayCrncyTokens          int64
	PerpAlltimeAssetTokens          float64
	PerpAlltimeCrncyTokens          float64
	MaxLeverage                     float64
	LiquidationThreshold            float64
	SeatsReserve                    int64
	ReservedValue1                  int64
	ReservedValue2                  int64
	ReservedValue3                  int64
	ReservedValue4                  int64
	ReservedValue5                  int64
	ReservedValue6                  int64
	ReservedValue7                  int64
	ReservedValue8                  int64
	ReservedValue9                  int64
	ReservedValue10                 int64
}

func DecodeInstr(data []byte) (*InstrAccountHeader, error) {
	return decodeHeader[InstrAccountHeader](data, models.AccountInstr)
}

func (h *InstrAccountHeader) WriteTo(data []byte) error {
	return layout.Put(data, h)
}

func (h *InstrAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

func (h *InstrAccountHeader) IsDrv() bool              { return h.Mask&models.InstrMaskDrv != 0 }
func (h *InstrAccountHeader) IsPerp() bool             { return h.Mask&models.InstrMaskPerp != 0 }
func (h *InstrAccountHeader) HasOracle() bool          { return h.Mask&models.InstrMaskOracle != 0 }
func (h *InstrAccountHeader) ReadyToPerpUpgrade() bool { return h.Mask&models.InstrMaskReadyToPerpUpgrade != 0 }

