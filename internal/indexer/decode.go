package indexer

import (
	"fmt"

	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

// AccountSnapshot is the decoded header of one program account.
type AccountSnapshot struct {
	Type    models.AccountType
	Version uint32
	Header  any
	// Records counts the fixed-size records after the header, where the
	// account type has them.
	Records int
}

type accountDecoder func(data []byte) (any, int, error)

func headerOnly[T any](decode func([]byte) (*T, error)) accountDecoder {
	return func(data []byte) (any, int, error) {
		h, err := decode(data)
		if err != nil {
			return nil, 0, err
		}
		return h, 0, nil
	}
}

func tagged[K state.Kind, S any]() accountDecoder {
	return func(data []byte) (any, int, error) {
		v, err := state.DecodeTagged[K, S](data)
		if err != nil {
			return nil, 0, err
		}
		return &v.Header, 0, nil
	}
}

type (
	spotHeader = state.SpotTradeAccountHeader
	perpHeader = state.PerpTradeAccountHeader
)

var accountDecoders = map[models.AccountType]accountDecoder{
	models.AccountHolder: func(data []byte) (any, int, error) {
		h, err := state.DecodeHolder(data)
		if err != nil {
			return nil, 0, err
		}
		return h, h.Operators(data).Len(), nil
	},
	models.AccountRoot:  headerOnly(state.DecodeRoot),
	models.AccountToken: headerOnly(state.DecodeToken),
	models.AccountInstr: headerOnly(state.DecodeInstr),
	models.AccountClientPrimary: func(data []byte) (any, int, error) {
		h, err := state.DecodeClientPrimary(data)
		if err != nil {
			return nil, 0, err
		}
		return h, h.Assets(data).Len(), nil
	},
	models.AccountClientDrv: headerOnly(state.DecodeClientDrv),
	models.AccountCommunity: func(data []byte) (any, int, error) {
		h, err := state.DecodeCommunity(data)
		if err != nil {
			return nil, 0, err
		}
		return h, h.BaseCrncy(data).Len(), nil
	},
	models.AccountClientCommunity: func(data []byte) (any, int, error) {
		h, err := state.DecodeClientCommunity(data)
		if err != nil {
			return nil, 0, err
		}
		return h, h.Records(data).Len(), nil
	},
	models.AccountPrivateClients: func(data []byte) (any, int, error) {
		records, err := state.PrivateClients(data)
		if err != nil {
			return nil, 0, err
		}
		d, _ := models.ReadDiscriminator(data)
		return &state.PrivateClientHeader{Discriminator: d}, records.Len(), nil
	},

	models.AccountSpotMaps:           tagged[state.SpotMaps, spotHeader](),
	models.AccountSpotClientAccounts: tagged[state.SpotClientAccounts, spotHeader](),
	models.AccountSpotClientInfos:    tagged[state.SpotClientInfos, spotHeader](),
	models.AccountSpotClientInfos2:   tagged[state.SpotClientInfos2, spotHeader](),
	models.AccountSpotBidsTree:       tagged[state.SpotBidsTree, spotHeader](),
	models.AccountSpotAsksTree:       tagged[state.SpotAsksTree, spotHeader](),
	models.AccountSpotBidOrders:      tagged[state.SpotBidOrders, spotHeader](),
	models.AccountSpotAskOrders:      tagged[state.SpotAskOrders, spotHeader](),
	models.AccountSpotLines:          tagged[state.SpotLines, spotHeader](),

	models.AccountPerpMaps:              tagged[state.PerpMaps, perpHeader](),
	models.AccountPerpClientAccounts:    tagged[state.PerpClientAccounts, perpHeader](),
	models.AccountPerpClientInfos:       tagged[state.PerpClientInfos, perpHeader](),
	models.AccountPerpClientInfos2:      tagged[state.PerpClientInfos2, perpHeader](),
	models.AccountPerpClientInfos3:      tagged[state.PerpClientInfos3, perpHeader](),
	models.AccountPerpClientInfos4:      tagged[state.PerpClientInfos4, perpHeader](),
	models.AccountPerpClientInfos5:      tagged[state.PerpClientInfos5, perpHeader](),
	models.AccountPerpBidsTree:          tagged[state.PerpBidsTree, perpHeader](),
	models.AccountPerpAsksTree:          tagged[state.PerpAsksTree, perpHeader](),
	models.AccountPerpBidOrders:         tagged[state.PerpBidOrders, perpHeader](),
	models.AccountPerpAskOrders:         tagged[state.PerpAskOrders, perpHeader](),
	models.AccountPerpLines:             tagged[state.PerpLines, perpHeader](),
	models.AccountPerpLongPxTree:        tagged[state.PerpLongPxTree, perpHeader](),
	models.AccountPerpShortPxTree:       tagged[state.PerpShortPxTree, perpHeader](),
	models.AccountPerpRebalanceTimeTree: tagged[state.PerpRebalanceTimeTree, perpHeader](),
}

func init() {
	candles := func(data []byte) (any, int, error) {
		h, _, err := state.DecodeCandles(data)
		if err != nil {
			return nil, 0, err
		}
		return h, state.Candles(data).Len(), nil
	}
	for _, p := range models.Candles() {
		accountDecoders[models.AccountType(p.Tag)] = candles
	}
}

// DecodeAccount identifies an account by its tag and decodes its header.
func DecodeAccount(data []byte) (*AccountSnapshot, error) {
	accountType, err := state.Identify(data)
	if err != nil {
		return nil, err
	}
	decode, ok := accountDecoders[accountType]
	if !ok {
		return nil, fmt.Errorf("no decoder for %s", accountType)
	}
	header, records, err := decode(data)
	if err != nil {
		return nil, err
	}
	snapshot := &AccountSnapshot{Type: accountType, Header: header, Records: records}
	if d, ok := models.ReadDiscriminator(data); ok && accountType != models.AccountHolder {
		snapshot.Version = d.Version.U32()
	}
	return snapshot, nil
}

// ResolveAccountTypes maps configured names to account types. An empty list
// selects every type.
func ResolveAccountTypes(names []string) ([]models.AccountType, error) {
	if len(names) == 0 {
		return models.AccountTypes(), nil
	}
	out := make([]models.AccountType, 0, len(names))
	for _, name := range names {
		t, ok := models.AccountTypeByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown account type %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}
