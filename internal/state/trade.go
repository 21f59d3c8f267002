package state

import (
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

const (
	SpotTradeAccountHeaderSize = 24
	PerpTradeAccountHeaderSize = 24
	CandlesAccountHeaderSize   = 24
	CandleSize                 = 56
	SpotClientInfoSize         = 32
	SpotClientInfo2Size        = 32
	PerpClientInfoSize         = 32
	PerpClientInfo2Size        = 32
	PerpClientInfo3Size        = 32
	PerpClientInfo4Size        = 32
	PerpClientInfo5Size        = 32
	OrderSize                  = 64
	PxOrdersSize               = 40
	LineQuotesSize             = 16
)

// SpotTradeAccountHeader opens every spot order-book and client-info account.
type SpotTradeAccountHeader struct {
	Discriminator models.Discriminator
	InstrID       models.InstrID
	Slot          uint32
	AssetTokenID  uint32
	CrncyTokenID  uint32
}

func (h *SpotTradeAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

// PerpTradeAccountHeader opens every perp account.
type PerpTradeAccountHeader struct {
	Discriminator models.Discriminator
	ID            models.InstrID
	Slot          uint32
	AssetTokenID  uint32
	CrncyTokenID  uint32
}

func (h *PerpTradeAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

type CandlesAccountHeader struct {
	Discriminator models.Discriminator
	ID            models.InstrID
	Slot          uint32
	Count         uint32
	Last          uint32
}

func (h *CandlesAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

type Candle struct {
	Open        int64
	Close       int64
	Max         int64
	Min         int64
	AssetTokens int64
	CrncyTokens int64
	Time        uint32
	Counter     uint32
}

// DecodeCandles reads the header of any of the three candle accounts and
// returns the parameters registered for its tag.
func DecodeCandles(data []byte) (*CandlesAccountHeader, models.CandleParams, error) {
	d, ok := models.ReadDiscriminator(data)
	if !ok {
		return nil, models.CandleParams{}, drverr.New(drverr.InvalidDataFormat, models.DiscriminatorSize, len(data))
	}
	params, err := models.CandleParamsFor(d.Tag.U32())
	if err != nil {
		return nil, models.CandleParams{}, err
	}
	h, err := decodeHeader[CandlesAccountHeader](data, models.AccountType(params.Tag))
	if err != nil {
		return nil, models.CandleParams{}, err
	}
	return h, params, nil
}

func Candles(data []byte) layout.Records[Candle] {
	return layout.NewRecords[Candle](data, CandlesAccountHeaderSize)
}

type SpotClientInfo struct {
	Client           models.ClientID
	FilledOrders     uint32
	BidsEntry        uint32
	AsksEntry        uint32
	AvailAssetTokens int64
	AvailCrncyTokens int64
}

// ClientRef is unset for a vacant slot.
func (i *SpotClientInfo) ClientRef() (models.ClientID, bool) {
	return i.Client, !i.Client.IsNull()
}

type SpotClientInfo2 struct {
	InOrdersAssetTokens int64
	InOrdersCrncyTokens int64
	BidSlot             uint32
	AskSlot             uint32
	Reserved            int64
}

func (i *SpotClientInfo2) SetSlot(slot uint32, side models.OrderSide) {
	if side == models.SideBid {
		i.BidSlot = slot
	} else {
		i.AskSlot = slot
	}
}

type PerpClientInfo struct {
	Funds         int64
	Perps         int64
	InOrdersFunds int64
	InOrdersPerps int64
}

type PerpClientInfo2 struct {
	Cost    int64
	Result  int64
	BidSlot uint32
	AskSlot uint32
	PxNode  uint32
	Mask    uint32
}

func (i *PerpClientInfo2) SetSlot(slot uint32, side models.OrderSide) {
	if side == models.SideBid {
		i.BidSlot = slot
	} else {
		i.AskSlot = slot
	}
}

// Leverage is kept in the low byte of Mask.
func (i *PerpClientInfo2) Leverage() int64 {
	return int64(i.Mask & 0xFF)
}

func (i *PerpClientInfo2) PxNodeRef() (uint32, bool) {
	return i.PxNode, i.PxNode != models.NullNode
}

type PerpClientInfo3 struct {
	Client       models.ClientID
	FilledOrders uint32
	BidsEntry    uint32
	AsksEntry    uint32
	Fees         int64
	Rebates      int64
}

func (i *PerpClientInfo3) ClientRef() (models.ClientID, bool) {
	return i.Client, !i.Client.IsNull()
}

type PerpClientInfo4 struct {
	LastSocLossRate  float64
	LastSocLossPerps int64
	SocLossFunds     int64
	LossCoverage     int64
}

type PerpClientInfo5 struct {
	FundingFunds    int64
	LastFundingRate float64
	Reserved        int64
	RebalanceTime   uint32
	FundingNode     uint32
}

func (i *PerpClientInfo5) FundingNodeRef() (uint32, bool) {
	return i.FundingNode, i.FundingNode != models.NullNode
}

// SpotInfos is the client-info array of a spot client-info account.
func SpotInfos[T any](data []byte) layout.Records[T] {
	return layout.NewRecords[T](data, SpotTradeAccountHeaderSize)
}

// SpotInfo reads the record of client id from a spot client-info account.
func SpotInfo[T any](data []byte, id models.ClientID) (*T, error) {
	return SpotInfos[T](data).At(int(id))
}

func PutSpotInfo[T any](data []byte, id models.ClientID, v *T) error {
	return SpotInfos[T](data).Set(int(id), v)
}

func PerpInfos[T any](data []byte) layout.Records[T] {
	return layout.NewRecords[T](data, PerpTradeAccountHeaderSize)
}

func PerpInfo[T any](data []byte, id models.ClientID) (*T, error) {
	return PerpInfos[T](data).At(int(id))
}

func PutPerpInfo[T any](data []byte, id models.ClientID, v *T) error {
	return PerpInfos[T](data).Set(int(id), v)
}

// Order is one resting order. Link fields hold NullOrder when empty.
type Order struct {
	Qty          int64
	Sum          int64
	OrderID      int64
	OrigClientID models.ClientID
	ClientID     models.ClientID
	Line         uint32
	Prev         uint32
	Next         uint32
	Sref         uint32
	Link         uint32
	ClPrev       uint32
	ClNext       uint32
	Time         uint32
}

func (o *Order) NextOrder() (uint32, bool)  { return o.Next, o.Next != models.NullOrder }
func (o *Order) PrevOrder() (uint32, bool)  { return o.Prev, o.Prev != models.NullOrder }
func (o *Order) ClientNext() (uint32, bool) { return o.ClNext, o.ClNext != models.NullOrder }
func (o *Order) ClientPrev() (uint32, bool) { return o.ClPrev, o.ClPrev != models.NullOrder }
func (o *Order) TreeNode() (uint32, bool)   { return o.Link, o.Link != models.NullNode }

// PxOrders is one price line of a book.
type PxOrders struct {
	Price int64
	Qty   int64
	Next  uint32
	Prev  uint32
	Sref  uint32
	Link  uint32
	Begin uint32
	End   uint32
}

func (p *PxOrders) NextLine() (uint32, bool)   { return p.Next, p.Next != models.NullOrder }
func (p *PxOrders) PrevLine() (uint32, bool)   { return p.Prev, p.Prev != models.NullOrder }
func (p *PxOrders) TreeNode() (uint32, bool)   { return p.Link, p.Link != models.NullNode }
func (p *PxOrders) FirstOrder() (uint32, bool) { return p.Begin, p.Begin != models.NullOrder }
func (p *PxOrders) LastOrder() (uint32, bool)  { return p.End, p.End != models.NullOrder }

// LineQuotes is one level of an aggregated depth snapshot.
type LineQuotes struct {
	Px  int64
	Qty int64
}
