package models

import "math"

// Sentinels marking "no reference" inside fixed-width records.
const (
	NullNode   uint32 = 0xFFFFFFFF
	NullOrder  uint32 = 0xFFFF
	NullThread uint32 = 0xFFFF
	NullIndex  int    = 0xFFFF
	NullClient uint32 = 0xFFFFFF
	NullInstr  uint32 = 0xFFFFFFF
	NullToken  uint32 = 0xFFFFFFF
)

// PDA seeds and SPL layout offsets.
const (
	HolderSeed         = "drvs001"
	DrvsSeed           = "ndxnt"
	MintDecimalsOffset = 44
)

const (
	Hour           uint32 = 3600
	Day            uint32 = 86400
	Week           uint32 = Day * 7
	Month          uint32 = Week * 4
	Quarter        uint32 = 365*Day + 6*Hour
	Year           uint32 = Week * 52
	FinalDuration  uint32 = 1800
	Settlement     uint32 = 28800
	FixingDuration uint32 = 300
)

const (
	DF1       float64 = 1048576
	RDF1      float64 = 1 / 1048576.0
	DI1       int64   = 1048576
	MinSigma  float64 = 0.01
	MinSigma2 float64 = 0.0001
	MaxSigma  float64 = 0.2
	DF        float64 = 1000000000.0
	RDF       float64 = 0.000000001
)

// Memory-map geometry of trading accounts.
const (
	MemoryMapUnits           = 4161
	TradeMemoryMapUnits      = 261
	SmallMemoryMapUnits      = 65
	TotalMemoryMapUnits      = MemoryMapUnits + 4*TradeMemoryMapUnits + SmallMemoryMapUnits
	TotalPerpMemoryMapUnits  = 4*MemoryMapUnits + 4*TradeMemoryMapUnits + SmallMemoryMapUnits
	tradeHeaderSizeForOffset = 24

	BidsTreePtOffset    = tradeHeaderSizeForOffset + MemoryMapUnits*8
	AsksTreePtOffset    = BidsTreePtOffset + TradeMemoryMapUnits*8
	BidOrdersPtOffset   = AsksTreePtOffset + TradeMemoryMapUnits*8
	AskOrdersPtOffset   = BidOrdersPtOffset + TradeMemoryMapUnits*8
	LinesPtOffset       = AskOrdersPtOffset + TradeMemoryMapUnits*8
	LongPxTreePtOffset  = LinesPtOffset + SmallMemoryMapUnits*8
	ShortPxTreePtOffset = LongPxTreePtOffset + MemoryMapUnits*8
	RebalancingPtOffset = ShortPxTreePtOffset + MemoryMapUnits*8
)

const (
	FuturesMaxQty         int64   = 0x40000000
	PdfSigmaWidth         float64 = 10.0
	SigmaFactor           float64 = 0.845154
	PdfWidth              float64 = PdfSigmaWidth / SigmaFactor
	MinFeeRate            uint32  = 4
	FeeRateStep           float64 = 0.000025
	StartSpotFeeRate      uint32  = 20
	StartPerpFeeRate      uint32  = 20
	StartFuturesFeeRate   uint32  = 20
	StartOptionsFeeRate   uint32  = 20
	MinPoolRatio          uint32  = 4
	MaxPoolRatio          uint32  = 36
	MinMarginCallPenalty  uint32  = 5
	PoolRatioStep         float64 = 0.025
	MarginCallPenaltyStep float64 = 0.001
	StartSpotPoolRatio    uint32  = 10
	StartPerpPoolRatio    uint32  = 10
	StartMarginCallRate   uint32  = 10
	StartOptionsPoolRatio uint32  = 10

	StartFeesPrepaymentForMaxDiscount uint32 = 50
)

const (
	MarketDepth          = 20
	StrikesCount         = 100
	MapsSize             = 42160
	PerpMapsSize         = 175312
	Fractions            = 65
	MaxLines             = 2048
	MaxDuration          = 28
	OptionsPoolTokenDecs = 6
)

const MaxOrders uint32 = 14336

// Numeric limits enforced by the instruction decoders.
const (
	MaxSum          float64 = 1_000_000_000_000_000_000.0
	SpotPoolUnit    float64 = 0.0001
	MaxPrice        int64   = math.MaxInt64 >> 4
	MinInitPrice    int64   = 1000
	SpotMaxAmount   int64   = math.MaxInt64 >> 8
	MaxOrderID      int64   = math.MaxInt64 >> 1
	PerpRebate      int64   = 15
	MaxFeesDiscount float64 = 0.75
	RebatesRatio    float64 = 0.125

	FeesPrepaymentStep              float64 = 1000.0
	MinFeesPrepaymentForMaxDiscount uint32  = 10
	Dec30                           float64 = 1 << 30

	MarginCallLevel         int64   = 32
	LongMarginCallRatio     float64 = 1.0 + 1.0/32
	ShortMarginCallRatio    float64 = 1.0 - 1.0/32
	MaxMarginCallTrades     int64   = 10
	MaxRebalancingCalls     int64   = 25
	RebalancingDelay        uint32  = 300
	MaxPerpClientsCount     uint32  = 250000
	MaxPerpClientsThreshold uint32  = MaxPerpClientsCount - 1000
	MaxPerpLeverage         uint8   = 15
	MinLiquidationThreshold float64 = 0.5 / 15

	FeesPrepaymentLockupPeriod uint32  = 91 * Day
	SpreadThreshold            float64 = 0.005
	TradesThreshold            int64   = 100000
	MaxRefDiscount             float64 = 0.1
	MaxRefRatio                float64 = 0.5
	MaxSupply                  int64   = 250_000
	InitSeatPrice              float64 = 1.0
	MinMaxDiscountRate         uint32  = 10
	MaxMaxDiscountRate         uint32  = 30
	MaxDiscountStep            float64 = 0.025
	StartMaxDiscount           uint32  = 30
)

// Trading competition parameters.
const (
	CompetitionID      uint8  = 3
	CompetitionStart   uint32 = 1753948800
	CompetitionEnd     uint32 = 1755158400
	CompetitionCrncyID uint32 = 1
	CompetitionSum     int64  = 10_000_000_000
)
