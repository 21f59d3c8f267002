// Package state holds the byte-exact layouts of the program's accounts and
// the typed views used to read and write them in place.
package state

import (
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

// AnyVersion disables the version half of CheckDiscriminator.
const AnyVersion models.Version = 0

// CheckDiscriminator validates the leading header of an account buffer.
func CheckDiscriminator(data []byte, tag models.AccountType, version models.Version) error {
	d, ok := models.ReadDiscriminator(data)
	if !ok {
		return drverr.New(drverr.InvalidDataFormat, models.DiscriminatorSize, len(data))
	}
	if d.IsZero() {
		return drverr.New(drverr.AccountNotInitialized, tag.String())
	}
	if d.Tag != tag.Tag() {
		return drverr.New(drverr.InvalidAccountTag, tag.U32(), d.Tag.U32())
	}
	if version != AnyVersion && d.Version != version {
		return drverr.New(drverr.InvalidVersion, version.U32(), d.Version.U32())
	}
	return nil
}

// Identify reports the account type of a buffer from its tag alone.
func Identify(data []byte) (models.AccountType, error) {
	d, ok := models.ReadDiscriminator(data)
	if !ok {
		return 0, drverr.New(drverr.InvalidDataFormat, models.DiscriminatorSize, len(data))
	}
	if d.IsZero() {
		return 0, drverr.New(drverr.AccountNotInitialized, "unknown")
	}
	return models.ParseAccountType(d.Tag.U32())
}

func decodeHeader[T any](data []byte, tag models.AccountType) (*T, error) {
	if err := CheckDiscriminator(data, tag, AnyVersion); err != nil {
		return nil, err
	}
	return layout.DecodePrefix[T](data)
}

// Kind is implemented by the zero-size markers that pin a shared header
// shape to one account tag.
type Kind interface {
	AccountType() models.AccountType
}

// Tagged is a header shape S bound at compile time to the tag of K. It
// occupies exactly the bytes of S.
type Tagged[K Kind, S any] struct {
	Header S
}

func (Tagged[K, S]) AccountType() models.AccountType {
	var k K
	return k.AccountType()
}

// DecodeTagged checks the tag of K before decoding the shape.
func DecodeTagged[K Kind, S any](data []byte) (*Tagged[K, S], error) {
	var k K
	header, err := decodeHeader[S](data, k.AccountType())
	if err != nil {
		return nil, err
	}
	return &Tagged[K, S]{Header: *header}, nil
}

// WriteTo writes the header back over the start of data.
func (t *Tagged[K, S]) WriteTo(data []byte) error {
	return layout.Put(data, &t.Header)
}

// Markers for accounts that share the trade and candles header shapes.
type (
	SpotMaps              struct{}
	SpotClientAccounts    struct{}
	SpotClientInfos       struct{}
	SpotClientInfos2      struct{}
	SpotBidsTree          struct{}
	SpotAsksTree          struct{}
	SpotBidOrders         struct{}
	SpotAskOrders         struct{}
	SpotLines             struct{}
	Spot1MCandles         struct{}
	Spot15MCandles        struct{}
	SpotDayCandles        struct{}
	PerpMaps              struct{}
	PerpClientAccounts    struct{}
	PerpClientInfos       struct{}
	PerpClientInfos2      struct{}
	PerpClientInfos3      struct{}
	PerpClientInfos4      struct{}
	PerpClientInfos5      struct{}
	PerpBidsTree          struct{}
	PerpAsksTree          struct{}
	PerpBidOrders         struct{}
	PerpAskOrders         struct{}
	PerpLines             struct{}
	PerpLongPxTree        struct{}
	PerpShortPxTree       struct{}
	PerpRebalanceTimeTree struct{}
)

func (SpotMaps) AccountType() models.AccountType              { return models.AccountSpotMaps }
func (SpotClientAccounts) AccountType() models.AccountType    { return models.AccountSpotClientAccounts }
func (SpotClientInfos) AccountType() models.AccountType       { return models.AccountSpotClientInfos }
func (SpotClientInfos2) AccountType() models.AccountType      { return models.AccountSpotClientInfos2 }
func (SpotBidsTree) AccountType() models.AccountType          { return models.AccountSpotBidsTree }
func (SpotAsksTree) AccountType() models.AccountType          { return models.AccountSpotAsksTree }
func (SpotBidOrders) AccountType() models.AccountType         { return models.AccountSpotBidOrders }
func (SpotAskOrders) AccountType() models.AccountType         { return models.AccountSpotAskOrders }
func (SpotLines) AccountType() models.AccountType             { return models.AccountSpotLines }
func (Spot1MCandles) AccountType() models.AccountType         { return models.AccountSpot1MCandles }
func (Spot15MCandles) AccountType() models.AccountType        { return models.AccountSpot15MCandles }
func (SpotDayCandles) AccountType() models.AccountType        { return models.AccountSpotDayCandles }
func (PerpMaps) AccountType() models.AccountType              { return models.AccountPerpMaps }
func (PerpClientAccounts) AccountType() models.AccountType    { return models.AccountPerpClientAccounts }
func (PerpClientInfos) AccountType() models.AccountType       { return models.AccountPerpClientInfos }
func (PerpClientInfos2) AccountType() models.AccountType      { return models.AccountPerpClientInfos2 }
func (PerpClientInfos3) AccountType() models.AccountType      { return models.AccountPerpClientInfos3 }
func (PerpClientInfos4) AccountType() models.AccountType      { return models.AccountPerpClientInfos4 }
func (PerpClientInfos5) AccountType() models.AccountType      { return models.AccountPerpClientInfos5 }
func (PerpBidsTree) AccountType() models.AccountType          { return models.AccountPerpBidsTree }
func (PerpAsksTree) AccountType() models.AccountType          { return models.AccountPerpAsksTree }
func (PerpBidOrders) AccountType() models.AccountType         { return models.AccountPerpBidOrders }
func (PerpAskOrders) AccountType() models.AccountType         { return models.AccountPerpAskOrders }
func (PerpLines) AccountType() models.AccountType             { return models.AccountPerpLines }
func (PerpLongPxTree) AccountType() models.AccountType        { return models.AccountPerpLongPxTree }
func (PerpShortPxTree) AccountType() models.AccountType       { return models.AccountPerpShortPxTree }
func (PerpRebalanceTimeTree) AccountType() models.AccountType { return models.AccountPerpRebalanceTimeTree }

type (
	SpotClientInfosAccount  = Tagged[SpotClientInfos, SpotTradeAccountHeader]
	SpotClientInfos2Account = Tagged[SpotClientInfos2, SpotTradeAccountHeader]
	SpotBidOrdersAccount    = Tagged[SpotBidOrders, SpotTradeAccountHeader]
	SpotAskOrdersAccount    = Tagged[SpotAskOrders, SpotTradeAccountHeader]
	SpotLinesAccount        = Tagged[SpotLines, SpotTradeAccountHeader]
	PerpClientInfosAccount  = Tagged[PerpClientInfos, PerpTradeAccountHeader]
	PerpClientInfos2Account = Tagged[PerpClientInfos2, PerpTradeAccountHeader]
	PerpClientInfos3Account = Tagged[PerpClientInfos3, PerpTradeAccountHeader]
	PerpClientInfos4Account = Tagged[PerpClientInfos4, PerpTradeAccountHeader]
	PerpClientInfos5Account = Tagged[PerpClientInfos5, PerpTradeAccountHeader]
	Spot1MCandlesAccount    = Tagged[Spot1MCandles, CandlesAccountHeader]
	Spot15MCandlesAccount   = Tagged[Spot15MCandles, CandlesAccountHeader]
	SpotDayCandlesAccount   = Tagged[SpotDayCandles, CandlesAccountHeader]
)

func tagMismatch(expected models.AccountType, actual uint32) error {
	return drverr.New(drverr.InvalidAccountTag, expected.U32(), actual)
}
