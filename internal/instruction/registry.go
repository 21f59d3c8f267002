// Package instruction decodes and validates instruction data and maps
// opcodes to their minimum account footprint.
package instruction

import "sort"

// Meta describes one instruction: its opcode and the fewest accounts it
// can be invoked with.
type Meta struct {
	Number      uint8
	MinAccounts int
	Name        string
}

var (
	IxNewHolder                     = Meta{Number: 0, MinAccounts: 3, Name: "new_holder"}
	IxNewOperator                   = Meta{Number: 1, MinAccounts: 4, Name: "new_operator"}
	IxNewRootAccount                = Meta{Number: 2, MinAccounts: 12, Name: "new_root_account"}
	IxPerpWithdraw                  = Meta{Number: 3, MinAccounts: 20, Name: "perp_withdraw"}
	IxNewBaseCrncy                  = Meta{Number: 4, MinAccounts: 9, Name: "new_base_crncy"}
	IxFeesDeposit                   = Meta{Number: 5, MinAccounts: 6, Name: "fees_deposit"}
	IxDeposit                       = Meta{Number: 7, MinAccounts: 9, Name: "deposit"}
	IxWithdraw                      = Meta{Number: 8, MinAccounts: 11, Name: "withdraw"}
	IxNewInstrument                 = Meta{Number: 9, MinAccounts: 23, Name: "new_instrument"}
	IxUpgradeToPerp                 = Meta{Number: 10, MinAccounts: 21, Name: "upgrade_to_perp"}
	IxPerpDeposit                   = Meta{Number: 11, MinAccounts: 19, Name: "perp_deposit"}
	IxNewSpotOrder                  = Meta{Number: 12, MinAccounts: 18, Name: "new_spot_order"}
	IxSpotOrderCancel               = Meta{Number: 13, MinAccounts: 14, Name: "spot_order_cancel"}
	IxSpotLp                        = Meta{Number: 14, MinAccounts: 5, Name: "spot_lp"}
	IxSpotMassCancel                = Meta{Number: 15, MinAccounts: 14, Name: "spot_mass_cancel"}
	IxNextVoting                    = Meta{Number: 16, MinAccounts: 3, Name: "next_voting"}
	IxNewPerpOrder                  = Meta{Number: 19, MinAccounts: 21, Name: "new_perp_order"}
	IxDividendsAllocation           = Meta{Number: 25, MinAccounts: 4, Name: "dividends_allocation"}
	IxSwap                          = Meta{Number: 26, MinAccounts: 28, Name: "swap"}
	IxAirdrop                       = Meta{Number: 27, MinAccounts: 12, Name: "airdrop"}
	IxDividendsClaim                = Meta{Number: 28, MinAccounts: 6, Name: "dividends_claim"}
	IxPerpOrderCancel               = Meta{Number: 30, MinAccounts: 20, Name: "perp_order_cancel"}
	IxVoting                        = Meta{Number: 32, MinAccounts: 6, Name: "voting"}
	IxSpotQuotesReplace             = Meta{Number: 34, MinAccounts: 18, Name: "spot_quotes_replace"}
	IxPerpMassCancel                = Meta{Number: 36, MinAccounts: 20, Name: "perp_mass_cancel"}
	IxPerpChangeLeverage            = Meta{Number: 37, MinAccounts: 20, Name: "perp_change_leverage"}
	IxFeesWithdraw                  = Meta{Number: 39, MinAccounts: 6, Name: "fees_withdraw"}
	IxSetInstrReadyForPerpUpgrade   = Meta{Number: 41, MinAccounts: 3, Name: "set_instr_ready_for_perp_upgrade"}
	IxPerpQuotesReplace             = Meta{Number: 42, MinAccounts: 21, Name: "perp_quotes_replace"}
	IxMoveSpotAvailFunds            = Meta{Number: 43, MinAccounts: 6, Name: "move_spot_avail_funds"}
	IxChangeRefProgram              = Meta{Number: 44, MinAccounts: 2, Name: "change_ref_program"}
	IxNewRefLink                    = Meta{Number: 45, MinAccounts: 3, Name: "new_ref_link"}
	IxPerpStatisticsReset           = Meta{Number: 46, MinAccounts: 20, Name: "perp_statistics_reset"}
	IxBuyMarketSeat                 = Meta{Number: 47, MinAccounts: 20, Name: "buy_market_seat"}
	IxSellMarketSeat                = Meta{Number: 48, MinAccounts: 20, Name: "sell_market_seat"}
	IxNewPrivateClient              = Meta{Number: 49, MinAccounts: 6, Name: "new_private_client"}
	IxTerminatePrivateMode          = Meta{Number: 50, MinAccounts: 3, Name: "terminate_private_mode"}
	IxChangePointsProgramExpiration = Meta{Number: 51, MinAccounts: 2, Name: "change_points_program_expiration"}
	IxChangeAirdropAuthority        = Meta{Number: 52, MinAccounts: 3, Name: "change_airdrop_authority"}
	IxChangePrivateModeAuthority    = Meta{Number: 53, MinAccounts: 3, Name: "change_private_mode_authority"}
	IxSetVariance                   = Meta{Number: 54, MinAccounts: 3, Name: "set_variance"}
	IxVotingReset                   = Meta{Number: 55, MinAccounts: 3, Name: "voting_reset"}
	IxChangeDenominator             = Meta{Number: 56, MinAccounts: 3, Name: "change_denominator"}
	IxPerpClientsProcessing         = Meta{Number: 57, MinAccounts: 19, Name: "perp_clients_processing"}
	IxSetSeatPurchasingFee          = Meta{Number: 58, MinAccounts: 2, Name: "set_seat_purchasing_fee"}
	IxChangeVoting                  = Meta{Number: 59, MinAccounts: 6, Name: "change_voting"}
	IxGarbageCollector              = Meta{Number: 60, MinAccounts: 6, Name: "garbage_collector"}
	IxActivateClientRefProgram      = Meta{Number: 61, MinAccounts: 4, Name: "activate_client_ref_program"}
	IxCleanCandles                  = Meta{Number: 62, MinAccounts: 6, Name: "clean_candles"}
	IxVMInitActivate                = Meta{Number: 63, MinAccounts: 5, Name: "vm_init_activate"}
	IxVMInitActivateCancel          = Meta{Number: 64, MinAccounts: 4, Name: "vm_init_activate_cancel"}
	IxVMFinalizeActivate            = Meta{Number: 65, MinAccounts: 4, Name: "vm_finalize_activate"}
	IxVMInitDeactivate              = Meta{Number: 66, MinAccounts: 4, Name: "vm_init_deactivate"}
	IxVMInitDeactivateCancel        = Meta{Number: 67, MinAccounts: 4, Name: "vm_init_deactivate_cancel"}
	IxVMFinalizeDeactivate          = Meta{Number: 68, MinAccounts: 4, Name: "vm_finalize_deactivate"}
	IxVMInitWithdraw                = Meta{Number: 69, MinAccounts: 4, Name: "vm_init_withdraw"}
	IxVMInitWithdrawCancel          = Meta{Number: 70, MinAccounts: 4, Name: "vm_init_withdraw_cancel"}
	IxVMInitWithdrawFinalize        = Meta{Number: 71, MinAccounts: 4, Name: "vm_init_withdraw_finalize"}
	IxVMChangeWhitelist             = Meta{Number: 72, MinAccounts: 4, Name: "vm_change_whitelist"}
)

// Opcodes that existed in earlier program builds and are rejected now.
const (
	retiredPerpForcedClose    uint8 = 38
	retiredSetInstrOracleFeed uint8 = 40
)

var registry = func() map[uint8]Meta {
	all := []Meta{
		IxNewHolder,
		IxNewOperator,
		IxNewRootAccount,
		IxPerpWithdraw,
		IxNewBaseCrncy,
		IxFeesDeposit,
		IxDeposit,
		IxWithdraw,
		IxNewInstrument,
		IxUpgradeToPerp,
		IxPerpDeposit,
		IxNewSpotOrder,
		IxSpotOrderCancel,
		IxSpotLp,
		IxSpotMassCancel,
		IxNextVoting,
		IxNewPerpOrder,
		IxDividendsAllocation,
		IxSwap,
		IxAirdrop,
		IxDividendsClaim,
		IxPerpOrderCancel,
		IxVoting,
		IxSpotQuotesReplace,
		IxPerpMassCancel,
		IxPerpChangeLeverage,
		IxFeesWithdraw,
		IxSetInstrReadyForPerpUpgrade,
		IxPerpQuotesReplace,
		IxMoveSpotAvailFunds,
		IxChangeRefProgram,
		IxNewRefLink,
		IxPerpStatisticsReset,
		IxBuyMarketSeat,
		IxSellMarketSeat,
		IxNewPrivateClient,
		IxTerminatePrivateMode,
		IxChangePointsProgramExpiration,
		IxChangeAirdropAuthority,
		IxChangePrivateModeAuthority,
		IxSetVariance,
		IxVotingReset,
		IxChangeDenominator,
		IxPerpClientsProcessing,
		IxSetSeatPurchasingFee,
		IxChangeVoting,
		IxGarbageCollector,
		IxActivateClientRefProgram,
		IxCleanCandles,
		IxVMInitActivate,
		IxVMInitActivateCancel,
		IxVMFinalizeActivate,
		IxVMInitDeactivate,
		IxVMInitDeactivateCancel,
		IxVMFinalizeDeactivate,
		IxVMInitWithdraw,
		IxVMInitWithdrawCancel,
		IxVMInitWithdrawFinalize,
		IxVMChangeWhitelist,
	}
	out := make(map[uint8]Meta, len(all))
	for _, m := range all {
		if _, dup := out[m.Number]; dup {
			panic("instruction: duplicate opcode " + m.Name)
		}
		out[m.Number] = m
	}
	return out
}()

// Lookup returns the registered instruction for opcode.
func Lookup(opcode uint8) (Meta, bool) {
	m, ok := registry[opcode]
	return m, ok
}

// IsRetired reports opcodes kept only for decoding historical transactions.
func IsRetired(opcode uint8) bool {
	return opcode == retiredPerpForcedClose || opcode == retiredSetInstrOracleFeed
}

// All lists the registered instructions ordered by opcode.
func All() []Meta {
	out := make([]Meta, 0, len(registry))
	for _, m := range registry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
