package models

import (
	"fmt"
	"strings"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
)

// AccountType enumerates the discriminator tags of program-owned accounts.
type AccountType uint32

const (
	AccountHolder                AccountType = 1
	AccountRoot                  AccountType = 2
	AccountToken                 AccountType = 4
	AccountInstr                 AccountType = 7
	AccountSpotMaps              AccountType = 10
	AccountSpotClientAccounts    AccountType = 11
	AccountSpotClientInfos       AccountType = 12
	AccountSpotClientInfos2      AccountType = 13
	AccountSpotBidsTree          AccountType = 14
	AccountSpotAsksTree          AccountType = 15
	AccountSpotBidOrders         AccountType = 16
	AccountSpotAskOrders         AccountType = 17
	AccountSpotLines             AccountType = 18
	AccountSpot1MCandles         AccountType = 19
	AccountSpot15MCandles        AccountType = 20
	AccountSpotDayCandles        AccountType = 21
	AccountClientPrimary         AccountType = 31
	AccountClientDrv             AccountType = 32
	AccountCommunity             AccountType = 34
	AccountClientCommunity       AccountType = 35
	AccountPerpAskOrders         AccountType = 36
	AccountPerpAsksTree          AccountType = 37
	AccountPerpBidOrders         AccountType = 38
	AccountPerpBidsTree          AccountType = 39
	AccountPerpClientAccounts    AccountType = 40
	AccountPerpClientInfos       AccountType = 41
	AccountPerpClientInfos2      AccountType = 42
	AccountPerpClientInfos3      AccountType = 43
	AccountPerpClientInfos4      AccountType = 44
	AccountPerpClientInfos5      AccountType = 45
	AccountPerpLines             AccountType = 46
	AccountPerpMaps              AccountType = 47
	AccountPerpLongPxTree        AccountType = 48
	AccountPerpShortPxTree       AccountType = 49
	AccountPerpRebalanceTimeTree AccountType = 50
	AccountPrivateClients        AccountType = 51
)

var accountTypeNames = map[AccountType]string{
	AccountHolder:                "Holder",
	AccountRoot:                  "Root",
	AccountToken:                 "Token",
	AccountInstr:                 "Instr",
	AccountSpotMaps:              "SpotMaps",
	AccountSpotClientAccounts:    "SpotClientAccounts",
	AccountSpotClientInfos:       "SpotClientInfos",
	AccountSpotClientInfos2:      "SpotClientInfos2",
	AccountSpotBidsTree:          "SpotBidsTree",
	AccountSpotAsksTree:          "SpotAsksTree",
	AccountSpotBidOrders:         "SpotBidOrders",
	AccountSpotAskOrders:         "SpotAskOrders",
	AccountSpotLines:             "SpotLines",
	AccountSpot1MCandles:         "Spot1MCandles",
	AccountSpot15MCandles:        "Spot15MCandles",
	AccountSpotDayCandles:        "SpotDayCandles",
	AccountClientPrimary:         "ClientPrimary",
	AccountClientDrv:             "ClientDrv",
	AccountCommunity:             "Community",
	AccountClientCommunity:       "ClientCommunity",
	AccountPerpAskOrders:         "PerpAskOrders",
	AccountPerpAsksTree:          "PerpAsksTree",
	AccountPerpBidOrders:         "PerpBidOrders",
	AccountPerpBidsTree:          "PerpBidsTree",
	AccountPerpClientAccounts:    "PerpClientAccounts",
	AccountPerpClientInfos:       "PerpClientInfos",
	AccountPerpClientInfos2:      "PerpClientInfos2",
	AccountPerpClientInfos3:      "PerpClientInfos3",
	AccountPerpClientInfos4:      "PerpClientInfos4",
	AccountPerpClientInfos5:      "PerpClientInfos5",
	AccountPerpLines:             "PerpLines",
	AccountPerpMaps:              "PerpMaps",
	AccountPerpLongPxTree:        "PerpLongPxTree",
	AccountPerpShortPxTree:       "PerpShortPxTree",
	AccountPerpRebalanceTimeTree: "PerpRebalanceTimeTree",
	AccountPrivateClients:        "PrivateClients",
}

// ParseAccountType converts a raw tag, rejecting values that are not a
// declared account type.
func ParseAccountType(value uint32) (AccountType, error) {
	t := AccountType(value)
	if _, ok := accountTypeNames[t]; !ok {
		return 0, drverr.New(drverr.UnknownAccountType, value)
	}
	return t, nil
}

// AccountTypes lists every declared account type in tag order.
func AccountTypes() []AccountType {
	out := make([]AccountType, 0, len(accountTypeNames))
	for t := AccountType(0); t <= AccountPrivateClients; t++ {
		if _, ok := accountTypeNames[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (t AccountType) Tag() Tag {
	return Tag(t)
}

func (t AccountType) U32() uint32 {
	return uint32(t)
}

// Name is the bare variant name, e.g. "Community".
func (t AccountType) Name() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// String renders "Name(tag)", e.g. "Community(34)".
func (t AccountType) String() string {
	return fmt.Sprintf("%s(%d)", t.Name(), uint32(t))
}

// AccountTypeByName resolves a bare variant name, case-insensitively.
func AccountTypeByName(name string) (AccountType, bool) {
	name = strings.TrimSpace(name)
	for t, n := range accountTypeNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}
