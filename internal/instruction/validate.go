package instruction

import (
	"math"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
	"github.com/deriverse/drv-smart-contract-common/internal/state"
)

// Context carries the program state that payload validation reads.
type Context struct {
	TokensCount   uint32
	InstrCount    uint32
	RefCounter    uint32
	VotingCounter uint32
	// Now is the cluster unix time; zero skips expiration checks.
	Now uint32
}

// ContextFromRoot builds a Context from the root account.
func ContextFromRoot(root *state.RootState) Context {
	return Context{
		TokensCount: root.TokensCount,
		InstrCount:  root.InstrCount,
		RefCounter:  root.RefCounter,
	}
}

// WithCommunity adds the current voting round of the community account.
func (c Context) WithCommunity(community *state.CommunityAccountHeader) Context {
	c.VotingCounter = community.VotingCounter
	return c
}

func (c Context) checkInstr(id uint32) error {
	if id >= c.InstrCount {
		return drverr.New(drverr.InvalidInstrID, id, c.InstrCount)
	}
	return nil
}

func (c Context) checkToken(id uint32) error {
	if id >= c.TokensCount {
		return drverr.New(drverr.InvalidTokenID, id, c.TokensCount)
	}
	return nil
}

func (c Context) checkVotingCounter(counter uint32) error {
	if counter != c.VotingCounter {
		return drverr.New(drverr.InvalidVotingCounter, counter, c.VotingCounter)
	}
	return nil
}

func (c Context) checkExpiration(at uint32) error {
	if c.Now != 0 && at <= c.Now {
		return drverr.New(drverr.InvalidExpirationTime, at)
	}
	return nil
}

func checkPrice(price, min int64) error {
	if price < min || price >= models.MaxPrice {
		return drverr.New(drverr.InvalidPrice, price, min, models.MaxPrice)
	}
	return nil
}

// checkOrderPrice applies the limit-order floor only to limit orders.
func checkOrderPrice(price int64, orderType models.OrderType) error {
	if orderType == models.OrderLimit {
		return checkPrice(price, 1)
	}
	return checkPrice(price, 0)
}

func checkAmount(amount, min int64) error {
	if amount < min || amount >= models.SpotMaxAmount {
		return drverr.New(drverr.InvalidQuantity, amount, min, models.SpotMaxAmount)
	}
	return nil
}

func checkOrderID(id int64) error {
	if id < 0 || id >= models.MaxOrderID {
		return drverr.New(drverr.InvalidOrderID, id)
	}
	return nil
}

func checkLeverage(leverage uint8, min uint8) error {
	if leverage < min || leverage > models.MaxPerpLeverage {
		return drverr.New(drverr.InvalidLeverage, leverage, models.MaxPerpLeverage)
	}
	return nil
}

func checkSide(side uint8) error {
	_, err := models.ParseOrderSide(side)
	return err
}

func checkVote(choice uint8) error {
	if !models.ValidVoteOption(choice) {
		return drverr.New(drverr.InvalidVoteOption, choice)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
