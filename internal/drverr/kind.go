package drverr

// Kind identifies one error variant. The numeric code of a Kind is part of the
// program's public interface and never changes once released.
type Kind uint16

const (
	kindUnknown Kind = iota
	InvalidAccountsNumber
	InvalidDataLength
	InvalidRootAccount
	InvalidSignerAccount
	InvalidClientPrimaryAccount
	InvalidClientDerivativesAccount
	InvalidInstrStaticAccount
	InvalidInstrTraceAccount
	InvalidInstrAccount
	InvalidSpotBidsTreeAccount
	InvalidSpotAsksTreeAccount
	InvalidSpotBidOrdersAccount
	InvalidSpotAskOrdersAccount
	InvalidSpotLinesAccount
	InvalidSpotMapsAccount
	InvalidSpotClientInfosAccount
	InvalidSpotClientInfos2Account
	InvalidSpotClientAccountsAccount
	InvalidCandlesAccount
	InvalidTokensAccount
	InvalidBaseTokensAccount
	InvalidPDFAccount
	InvalidTokenProgramID
	InvalidToken2022ProgramID
	InvalidMintAccount
	InvalidTokenAddress
	InvalidTokenProgramAddress
	InvalidLUTProgramID
	InvalidLUTAccount
	InvalidSystemProgramID
	InvalidQuantity
	InvalidPrice
	InsufficientFunds
	InstrIsNotActive
	TooMuchLines
	AllocatorFailed
	CrossOrder
	MatchingEngineFailed
	PoolTradeFailed
	InvalidPDA
	InvalidNewProgramAccount
	InvalidNewAccount
	InvalidHolderAccount
	InvalidHolderAdminAccount
	InvalidAdminAccount
	InvalidNewOperatorAccount
	InvalidNewAccountPDA
	InvalidOperatorAccount
	InvalidTokenID
	InstrIsActive
	MintIsNotInitialized
	SPLTokenAccountIsNotInitialized
	InvalidTokenAccount
	PoolAlreadyExists
	InvalidFuturesBidsTreeAccount
	InvalidFuturesAsksTreeAccount
	InvalidFuturesBidOrdersAccount
	InvalidFuturesAskOrdersAccount
	InvalidFuturesLinesAccount
	InvalidFuturesMapsAccount
	InvalidFuturesClientInfosAccount
	InvalidFuturesClientInfos2Account
	InvalidFuturesClientAccountsAccount
	InvalidInstrID
	InvalidTaskID
	InvalidPoolInstrID
	MaxNumberOfTasksExceeded
	TaskIsNotStarted
	InvalidTaskIsAlreadyStarted
	InvalidTokensAmount
	InsufficientProgramFunds
	SpotPoolIsEmpty
	OrderNotFound
	InvalidVanillaTradesCount
	InvalidOptionsAmount
	InvalidStrikeID
	MaxCostDiffExceeded
	InsufficientPoolFunds
	TradingIsNotAvailable
	TradingForThisStrikeIsNotAvailable
	ClientDataDestruction
	InvalidOptionsPoolMintSupply
	InvalidCrncy
	InvalidTask
	InvalidTime
	InvalidSigma
	ImpossibleToUpgrade
	InvalidBidOrdersCount
	InvalidAskOrdersCount
	InvalidBidLinesCount
	InvalidAskLinesCount
	ImpossibleToPayoff
	TooSmallAmountToWithdraw
	InvalidAssociatedTokenAddress
	InvalidInstanceID
	CollateralReductionUnavailable
	BaseCrncyNotFound
	TooEarlyToDistribFunds
	InsufficientDeriverseTokens
	InsufficientDeriverseTokensSupply
	InvalidClientCommunityAccount
	InvalidVotingCounter
	AlreadyVoted
	AirdropFailed
	InvalidDrvsAuthAccount
	InvalidCommunityAccount
	NoTradeIOC
	InvalidAssetType
	AssetNotFound
	InvalidSpotAccount
	NullPointer
	InvalidClientBidsCount
	InvalidClientAsksCount
	CommunityAccountHasToBeReadOnly
	InvalidTokenType
	NullIndex
	InvalidFuturesAccount
	ClientDerivativeNotFound
	DebugBreakingPoint
	ArithmeticOverflow
	InvalidDataFormat
	InvalidOrderID
	PerpIsNotAvailable
	InvalidPerpAccount
	InvalidPerpMapsAccount
	ImpossibleToWithdrawFundsDuringMarginCall
	InvalidPerpClientsCount
	MaxPerpClientsCountReached
	InvalidLeverage
	InvalidSocializedLossOpenInterest
	ImpossibleToClosePerpPosition
	TooEarlyToWithdrawFees
	FeesWithdrawalIsTooLarge
	InvalidOracleFeed
	InvalidRefProgramParameters
	RefProgramInactive
	InvalidRefLinkID
	RefLinkExpired
	InvalidRefAddress
	OperationRejected
	MemoryMapFailed
	MemoryMapFreeFailed
	InvalidWritePermission
	InvalidAccountTag
	InvalidAccountOwner
	InvalidRootAccountVersion
	InvalidDataAlignment
	InvalidAccountsAmount
	LegacyNativeMintNotSupported
	IdenticalTokensInPair
	InvokeFailed
	Token2022NativeMintNotSupported
	InvalidMapsAccountAddress
	TradeIsTooSmall
	PerpAlreadyAllocated
	InvalidSupply
	InvalidVersion
	InvalidOrderSide
	InvalidOrderType
	UnknownInstruction
	AccountNotInitialized
	RecordOutOfBounds
	InvalidInstructionTag
	InvalidCandlesTag
	InvalidVoteOption
	InvalidDenominator
	InvalidVariance
	InvalidAirdropRatio
	InvalidExpirationTime
	InvalidSeatPurchasingFee
	InvalidVMWhitelistSlot
	VMIsNotActive
	VMIsActive
	InvalidVMWalletAccount
	InvalidPrivateClientsAccount
	PrivateClientNotFound
	PrivateClientExpired
	InvalidAccountAddress
	InsufficientAccountSpace
	InvalidRefID
	InvalidCompetitionID
	UnknownAccountType
	kindCount
)

type kindSpec struct {
	code   uint32
	name   string
	msg    string
	fields []string
}

var kinds = [kindCount]kindSpec{
	kindUnknown: {code: 0, name: "Unknown", msg: "Unknown error"},
	InvalidAccountsNumber: {code: 101, name: "InvalidAccountsNumber", msg: "Invalid accounts number: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	InvalidDataLength: {code: 102, name: "InvalidDataLength", msg: "Invalid data length: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	InvalidRootAccount: {code: 103, name: "InvalidRootAccount", msg: "Invalid root account {account}", fields: []string{"account"}},
	InvalidSignerAccount: {code: 104, name: "InvalidSignerAccount", msg: "Invalid signer account {account}, expected {expected_signer}", fields: []string{"account", "expected_signer"}},
	InvalidClientPrimaryAccount: {code: 133, name: "InvalidClientPrimaryAccount", msg: "Invalid Client Primary Account", fields: nil},
	InvalidClientDerivativesAccount: {code: 134, name: "InvalidClientDerivativesAccount", msg: "Invalid Client Derivatives Account", fields: nil},
	InvalidInstrStaticAccount: {code: 105, name: "InvalidInstrStaticAccount", msg: "Invalid Instrument Static Account", fields: nil},
	InvalidInstrTraceAccount: {code: 106, name: "InvalidInstrTraceAccount", msg: "Invalid Instrument Trace Account", fields: nil},
	InvalidInstrAccount: {code: 107, name: "InvalidInstrAccount", msg: "Invalid Instrument Account", fields: nil},
	InvalidSpotBidsTreeAccount: {code: 108, name: "InvalidSpotBidsTreeAccount", msg: "Invalid Spot Bids Tree Account", fields: nil},
	InvalidSpotAsksTreeAccount: {code: 109, name: "InvalidSpotAsksTreeAccount", msg: "Invalid Spot Asks Tree Account", fields: nil},
	InvalidSpotBidOrdersAccount: {code: 110, name: "InvalidSpotBidOrdersAccount", msg: "Invalid Spot Bid Orders Account", fields: nil},
	InvalidSpotAskOrdersAccount: {code: 111, name: "InvalidSpotAskOrdersAccount", msg: "Invalid Spot Ask Orders Account", fields: nil},
	InvalidSpotLinesAccount: {code: 112, name: "InvalidSpotLinesAccount", msg: "Invalid Spot Lines Account", fields: nil},
	InvalidSpotMapsAccount: {code: 113, name: "InvalidSpotMapsAccount", msg: "Invalid Spot Maps Account", fields: nil},
	InvalidSpotClientInfosAccount: {code: 114, name: "InvalidSpotClientInfosAccount", msg: "Invalid Spot Client Infos Account", fields: nil},
	InvalidSpotClientInfos2Account: {code: 115, name: "InvalidSpotClientInfos2Account", msg: "Invalid Spot Client Infos2 Account", fields: nil},
	InvalidSpotClientAccountsAccount: {code: 116, name: "InvalidSpotClientAccountsAccount", msg: "Invalid Spot Client Accounts Account", fields: nil},
	InvalidCandlesAccount: {code: 117, name: "InvalidCandlesAccount", msg: "Invalid Candles Account", fields: nil},
	InvalidTokensAccount: {code: 120, name: "InvalidTokensAccount", msg: "Invalid Tokens Account", fields: nil},
	InvalidBaseTokensAccount: {code: 121, name: "InvalidBaseTokensAccount", msg: "Invalid Base Tokens Account", fields: nil},
	InvalidPDFAccount: {code: 142, name: "InvalidPDFAccount", msg: "Invalid PDF Account", fields: nil},
	InvalidTokenProgramID: {code: 122, name: "InvalidTokenProgramID", msg: "Invalid Token Program ID", fields: nil},
	InvalidToken2022ProgramID: {code: 123, name: "InvalidToken2022ProgramID", msg: "Invalid Token 2022 Program ID", fields: nil},
	InvalidMintAccount: {code: 124, name: "InvalidMintAccount", msg: "Invalid Mint Address", fields: nil},
	InvalidTokenAddress: {code: 125, name: "InvalidTokenAddress", msg: "Invalid Token Address", fields: nil},
	InvalidTokenProgramAddress: {code: 126, name: "InvalidTokenProgramAddress", msg: "Invalid Token Program Address", fields: nil},
	InvalidLUTProgramID: {code: 127, name: "InvalidLUTProgramID", msg: "Invalid LUT Program ID", fields: nil},
	InvalidLUTAccount: {code: 128, name: "InvalidLUTAccount", msg: "Invalid LUT Account", fields: nil},
	InvalidSystemProgramID: {code: 129, name: "InvalidSystemProgramID", msg: "Invalid System Program ID", fields: nil},
	InvalidQuantity: {code: 130, name: "InvalidQuantity", msg: "Invalid Quantity {value}, expected range [{min}, {max})", fields: []string{"value", "min", "max"}},
	InvalidPrice: {code: 131, name: "InvalidPrice", msg: "Invalid Price {price}, expected range [{min}, {max})", fields: []string{"price", "min", "max"}},
	InsufficientFunds: {code: 132, name: "InsufficientFunds", msg: "Insufficient Funds", fields: nil},
	InstrIsNotActive: {code: 135, name: "InstrIsNotActive", msg: "Instrument Is Not Active", fields: nil},
	TooMuchLines: {code: 136, name: "TooMuchLines", msg: "Too Much Lines", fields: nil},
	AllocatorFailed: {code: 137, name: "AllocatorFailed", msg: "Allocator Failed", fields: nil},
	CrossOrder: {code: 138, name: "CrossOrder", msg: "You Try To Trade With Yourself", fields: nil},
	MatchingEngineFailed: {code: 139, name: "MatchingEngineFailed", msg: "Matching Engine Failed", fields: nil},
	PoolTradeFailed: {code: 140, name: "PoolTradeFailed", msg: "Pool Trade Failed", fields: nil},
	InvalidPDA: {code: 141, name: "InvalidPDA", msg: "Invalid PDA", fields: nil},
	InvalidNewProgramAccount: {code: 143, name: "InvalidNewProgramAccount", msg: "Invalid New Program Account", fields: nil},
	InvalidNewAccount: {code: 144, name: "InvalidNewAccount", msg: "Invalid New Account", fields: nil},
	InvalidHolderAccount: {code: 145, name: "InvalidHolderAccount", msg: "Invalid Holder Account", fields: nil},
	InvalidHolderAdminAccount: {code: 146, name: "InvalidHolderAdminAccount", msg: "Invalid Holder Admin Account", fields: nil},
	InvalidAdminAccount: {code: 147, name: "InvalidAdminAccount", msg: "Invalid Admin Account", fields: nil},
	InvalidNewOperatorAccount: {code: 148, name: "InvalidNewOperatorAccount", msg: "Invalid New Operator Account", fields: nil},
	InvalidNewAccountPDA: {code: 149, name: "InvalidNewAccountPDA", msg: "Invalid New Account PDA", fields: nil},
	InvalidOperatorAccount: {code: 150, name: "InvalidOperatorAccount", msg: "Invalid Operator Account", fields: nil},
	InvalidTokenID: {code: 151, name: "InvalidTokenID", msg: "Invalid Token ID {token_id}, tokens count {count}", fields: []string{"token_id", "count"}},
	InstrIsActive: {code: 152, name: "InstrIsActive", msg: "Instrument Is Active", fields: nil},
	MintIsNotInitialized: {code: 153, name: "MintIsNotInitialized", msg: "Mint Is Not Initialized", fields: nil},
	SPLTokenAccountIsNotInitialized: {code: 154, name: "SPLTokenAccountIsNotInitialized", msg: "SPL Token Account Is Not Initialized", fields: nil},
	InvalidTokenAccount: {code: 155, name: "InvalidTokenAccount", msg: "Invalid Token Account", fields: nil},
	PoolAlreadyExists: {code: 156, name: "PoolAlreadyExists", msg: "Pool Already Exists", fields: nil},
	InvalidFuturesBidsTreeAccount: {code: 157, name: "InvalidFuturesBidsTreeAccount", msg: "Invalid Futures Bids Tree Account", fields: nil},
	InvalidFuturesAsksTreeAccount: {code: 158, name: "InvalidFuturesAsksTreeAccount", msg: "Invalid Futures Asks Tree Account", fields: nil},
	InvalidFuturesBidOrdersAccount: {code: 159, name: "InvalidFuturesBidOrdersAccount", msg: "Invalid Futures Bid Orders Account", fields: nil},
	InvalidFuturesAskOrdersAccount: {code: 160, name: "InvalidFuturesAskOrdersAccount", msg: "Invalid Futures Ask Orders Account", fields: nil},
	InvalidFuturesLinesAccount: {code: 161, name: "InvalidFuturesLinesAccount", msg: "Invalid Futures Lines Account", fields: nil},
	InvalidFuturesMapsAccount: {code: 162, name: "InvalidFuturesMapsAccount", msg: "Invalid Futures Maps Account", fields: nil},
	InvalidFuturesClientInfosAccount: {code: 163, name: "InvalidFuturesClientInfosAccount", msg: "Invalid Futures Client Infos Account", fields: nil},
	InvalidFuturesClientInfos2Account: {code: 164, name: "InvalidFuturesClientInfos2Account", msg: "Invalid Futures Client Infos2 Account", fields: nil},
	InvalidFuturesClientAccountsAccount: {code: 165, name: "InvalidFuturesClientAccountsAccount", msg: "Invalid Futures Client Accounts Account", fields: nil},
	InvalidInstrID: {code: 166, name: "InvalidInstrID", msg: "Invalid Instr ID {instr_id}, instruments count {count}", fields: []string{"instr_id", "count"}},
	InvalidTaskID: {code: 167, name: "InvalidTaskID", msg: "Invalid Task ID", fields: nil},
	InvalidPoolInstrID: {code: 168, name: "InvalidPoolInstrID", msg: "Invalid Pool Instr ID", fields: nil},
	MaxNumberOfTasksExceeded: {code: 169, name: "MaxNumberOfTasksExceeded", msg: "Max Number Of Tasks Exceeded", fields: nil},
	TaskIsNotStarted: {code: 170, name: "TaskIsNotStarted", msg: "Task Is Not Started", fields: nil},
	InvalidTaskIsAlreadyStarted: {code: 171, name: "InvalidTaskIsAlreadyStarted", msg: "Task Is Already Started", fields: nil},
	InvalidTokensAmount: {code: 172, name: "InvalidTokensAmount", msg: "Invalid Tokens Amount", fields: nil},
	InsufficientProgramFunds: {code: 173, name: "InsufficientProgramFunds", msg: "Insufficient Program Funds", fields: nil},
	SpotPoolIsEmpty: {code: 174, name: "SpotPoolIsEmpty", msg: "Spot Pool Is Empty", fields: nil},
	OrderNotFound: {code: 175, name: "OrderNotFound", msg: "Order Not Found", fields: nil},
	InvalidVanillaTradesCount: {code: 176, name: "InvalidVanillaTradesCount", msg: "Invalid Vanilla Trades Count", fields: nil},
	InvalidOptionsAmount: {code: 177, name: "InvalidOptionsAmount", msg: "Invalid Options Amount", fields: nil},
	InvalidStrikeID: {code: 178, name: "InvalidStrikeID", msg: "Invalid Strike ID", fields: nil},
	MaxCostDiffExceeded: {code: 179, name: "MaxCostDiffExceeded", msg: "Max Cost Difference Exceeded", fields: nil},
	InsufficientPoolFunds: {code: 180, name: "InsufficientPoolFunds", msg: "Insufficient Pool Funds", fields: nil},
	TradingIsNotAvailable: {code: 181, name: "TradingIsNotAvailable", msg: "Trading Is Not Available", fields: nil},
	TradingForThisStrikeIsNotAvailable: {code: 182, name: "TradingForThisStrikeIsNotAvailable", msg: "Trading For This Strike Is Not Available", fields: nil},
	ClientDataDestruction: {code: 183, name: "ClientDataDestruction", msg: "Client Data Destruction", fields: nil},
	InvalidOptionsPoolMintSupply: {code: 184, name: "InvalidOptionsPoolMintSupply", msg: "Invalid Options Pool Mint Supply", fields: nil},
	InvalidCrncy: {code: 185, name: "InvalidCrncy", msg: "Invalid Base Currency {crncy_token_id}", fields: []string{"crncy_token_id"}},
	InvalidTask: {code: 186, name: "InvalidTask", msg: "Invalid Task", fields: nil},
	InvalidTime: {code: 187, name: "InvalidTime", msg: "Invalid Time", fields: nil},
	InvalidSigma: {code: 188, name: "InvalidSigma", msg: "Invalid Sigma", fields: nil},
	ImpossibleToUpgrade: {code: 189, name: "ImpossibleToUpgrade", msg: "Impossible To Upgrade", fields: nil},
	InvalidBidOrdersCount: {code: 190, name: "InvalidBidOrdersCount", msg: "Invalid Bid Orders Count", fields: nil},
	InvalidAskOrdersCount: {code: 191, name: "InvalidAskOrdersCount", msg: "Invalid Ask Orders Count", fields: nil},
	InvalidBidLinesCount: {code: 192, name: "InvalidBidLinesCount", msg: "Invalid Bid Lines Count", fields: nil},
	InvalidAskLinesCount: {code: 193, name: "InvalidAskLinesCount", msg: "Invalid Ask Lines Count", fields: nil},
	ImpossibleToPayoff: {code: 194, name: "ImpossibleToPayoff", msg: "Impossible To Payoff", fields: nil},
	TooSmallAmountToWithdraw: {code: 195, name: "TooSmallAmountToWithdraw", msg: "Too Small Amount To Withdraw", fields: nil},
	InvalidAssociatedTokenAddress: {code: 196, name: "InvalidAssociatedTokenAddress", msg: "Invalid Associated Token Address", fields: nil},
	InvalidInstanceID: {code: 197, name: "InvalidInstanceID", msg: "Invalid Instance ID", fields: nil},
	CollateralReductionUnavailable: {code: 198, name: "CollateralReductionUnavailable", msg: "Collateral Reduction Unavailable", fields: nil},
	BaseCrncyNotFound: {code: 200, name: "BaseCrncyNotFound", msg: "Base Currency Token Not Found", fields: nil},
	TooEarlyToDistribFunds: {code: 201, name: "TooEarlyToDistribFunds", msg: "Too Early To Distrib Funds", fields: nil},
	InsufficientDeriverseTokens: {code: 202, name: "InsufficientDeriverseTokens", msg: "Insufficient Deriverse Tokens", fields: nil},
	InsufficientDeriverseTokensSupply: {code: 203, name: "InsufficientDeriverseTokensSupply", msg: "Insufficient Deriverse Tokens Supply", fields: nil},
	InvalidClientCommunityAccount: {code: 204, name: "InvalidClientCommunityAccount", msg: "Invalid Client Community Account", fields: nil},
	InvalidVotingCounter: {code: 205, name: "InvalidVotingCounter", msg: "Invalid Voting Counter {voting_counter}, current {current}", fields: []string{"voting_counter", "current"}},
	AlreadyVoted: {code: 206, name: "AlreadyVoted", msg: "Already Voted", fields: nil},
	AirdropFailed: {code: 207, name: "AirdropFailed", msg: "Airdrop Failed", fields: nil},
	InvalidDrvsAuthAccount: {code: 208, name: "InvalidDrvsAuthAccount", msg: "Invalid Deriverse Authority Account", fields: nil},
	InvalidCommunityAccount: {code: 209, name: "InvalidCommunityAccount", msg: "Invalid Community Account", fields: nil},
	NoTradeIOC: {code: 210, name: "NoTradeIOC", msg: "No Trade (IOC)", fields: nil},
	InvalidAssetType: {code: 211, name: "InvalidAssetType", msg: "Invalid Asset Type", fields: nil},
	AssetNotFound: {code: 212, name: "AssetNotFound", msg: "Asset Not Found", fields: nil},
	InvalidSpotAccount: {code: 213, name: "InvalidSpotAccount", msg: "Invalid Spot Account", fields: nil},
	NullPointer: {code: 214, name: "NullPointer", msg: "Null Pointer", fields: nil},
	InvalidClientBidsCount: {code: 215, name: "InvalidClientBidsCount", msg: "Invalid Client Bids Count", fields: nil},
	InvalidClientAsksCount: {code: 216, name: "InvalidClientAsksCount", msg: "Invalid Client Asks Count", fields: nil},
	CommunityAccountHasToBeReadOnly: {code: 217, name: "CommunityAccountHasToBeReadOnly", msg: "Community Account Has To Be Read Only", fields: nil},
	InvalidTokenType: {code: 218, name: "InvalidTokenType", msg: "Invalid Token Type", fields: nil},
	NullIndex: {code: 219, name: "NullIndex", msg: "Null Index", fields: nil},
	InvalidFuturesAccount: {code: 220, name: "InvalidFuturesAccount", msg: "Invalid Futures Account", fields: nil},
	ClientDerivativeNotFound: {code: 221, name: "ClientDerivativeNotFound", msg: "Client Derivative Not Found", fields: nil},
	DebugBreakingPoint: {code: 222, name: "DebugBreakingPoint", msg: "Debug Breaking Point", fields: nil},
	ArithmeticOverflow: {code: 223, name: "ArithmeticOverflow", msg: "Arithmetic Overflow", fields: nil},
	InvalidDataFormat: {code: 224, name: "InvalidDataFormat", msg: "Invalid Data Format: expected {expected} bytes, got {actual}", fields: []string{"expected", "actual"}},
	InvalidOrderID: {code: 225, name: "InvalidOrderID", msg: "Invalid Order ID {order_id}", fields: []string{"order_id"}},
	PerpIsNotAvailable: {code: 226, name: "PerpIsNotAvailable", msg: "Perp Is Not Available", fields: nil},
	InvalidPerpAccount: {code: 227, name: "InvalidPerpAccount", msg: "Invalid Perp Account", fields: nil},
	InvalidPerpMapsAccount: {code: 228, name: "InvalidPerpMapsAccount", msg: "Invalid Perp Maps Account", fields: nil},
	ImpossibleToWithdrawFundsDuringMarginCall: {code: 229, name: "ImpossibleToWithdrawFundsDuringMarginCall", msg: "Impossible To Withdraw Funds During Margin Call", fields: nil},
	InvalidPerpClientsCount: {code: 230, name: "InvalidPerpClientsCount", msg: "Invalid Perp Clients Count", fields: nil},
	MaxPerpClientsCountReached: {code: 231, name: "MaxPerpClientsCountReached", msg: "Max Perp Clients Count Reached", fields: nil},
	InvalidLeverage: {code: 232, name: "InvalidLeverage", msg: "Invalid Leverage {leverage}, expected range [1, {max}]", fields: []string{"leverage", "max"}},
	InvalidSocializedLossOpenInterest: {code: 233, name: "InvalidSocializedLossOpenInterest", msg: "Invalid Socialized Loss Open Interest", fields: nil},
	ImpossibleToClosePerpPosition: {code: 234, name: "ImpossibleToClosePerpPosition", msg: "Impossible To Close Perp Position", fields: nil},
	TooEarlyToWithdrawFees: {code: 235, name: "TooEarlyToWithdrawFees", msg: "Too Early To Withdraw Fees", fields: nil},
	FeesWithdrawalIsTooLarge: {code: 236, name: "FeesWithdrawalIsTooLarge", msg: "Fees Withdrawal Is Too Large", fields: nil},
	InvalidOracleFeed: {code: 237, name: "InvalidOracleFeed", msg: "Invalid Oracle Feed", fields: nil},
	InvalidRefProgramParameters: {code: 238, name: "InvalidRefProgramParameters", msg: "Invalid Ref Program Parameters", fields: nil},
	RefProgramInactive: {code: 239, name: "RefProgramInactive", msg: "Ref Program Inactive", fields: nil},
	InvalidRefLinkID: {code: 240, name: "InvalidRefLinkID", msg: "Invalid Ref Link ID", fields: nil},
	RefLinkExpired: {code: 241, name: "RefLinkExpired", msg: "Ref Link Expired", fields: nil},
	InvalidRefAddress: {code: 242, name: "InvalidRefAddress", msg: "Invalid Ref Address", fields: nil},
	OperationRejected: {code: 243, name: "OperationRejected", msg: "Operation Rejected", fields: nil},
	MemoryMapFailed: {code: 244, name: "MemoryMapFailed", msg: "Memory map creation or general error", fields: nil},
	MemoryMapFreeFailed: {code: 245, name: "MemoryMapFreeFailed", msg: "Memory map deallocation error", fields: nil},
	InvalidWritePermission: {code: 246, name: "InvalidWritePermission", msg: "Invalid Write Permission", fields: nil},
	InvalidAccountTag: {code: 247, name: "InvalidAccountTag", msg: "Invalid Account Tag: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	InvalidAccountOwner: {code: 248, name: "InvalidAccountOwner", msg: "Invalid Account Owner {owner} for account {account}", fields: []string{"account", "owner"}},
	InvalidRootAccountVersion: {code: 249, name: "InvalidRootAccountVersion", msg: "Incompatible version in the RootState: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	InvalidDataAlignment: {code: 250, name: "InvalidDataAlignment", msg: "Invalid data alignment", fields: nil},
	InvalidAccountsAmount: {code: 251, name: "InvalidAccountsAmount", msg: "Invalid amount of provided accounts: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	LegacyNativeMintNotSupported: {code: 252, name: "LegacyNativeMintNotSupported", msg: "wSOL minting at legacy solana_native address is not supported", fields: nil},
	IdenticalTokensInPair: {code: 253, name: "IdenticalTokensInPair", msg: "Identical tokens not allowed in trading pair", fields: nil},
	InvokeFailed: {code: 254, name: "InvokeFailed", msg: "Failed to call invoke or invoke signed", fields: nil},
	Token2022NativeMintNotSupported: {code: 255, name: "Token2022NativeMintNotSupported", msg: "wSOL minting at solana_native address is not supported", fields: nil},
	InvalidMapsAccountAddress: {code: 256, name: "InvalidMapsAccountAddress", msg: "Invalid Maps account address", fields: nil},
	TradeIsTooSmall: {code: 257, name: "TradeIsTooSmall", msg: "Trade is too small", fields: nil},
	PerpAlreadyAllocated: {code: 258, name: "PerpAlreadyAllocated", msg: "Perp was already allocated", fields: nil},
	InvalidSupply: {code: 259, name: "InvalidSupply", msg: "Invalid Supply", fields: nil},
	InvalidVersion: {code: 260, name: "InvalidVersion", msg: "Invalid account version: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	InvalidOrderSide: {code: 261, name: "InvalidOrderSide", msg: "Invalid Order Side {side}", fields: []string{"side"}},
	InvalidOrderType: {code: 262, name: "InvalidOrderType", msg: "Invalid Order Type {order_type}", fields: []string{"order_type"}},
	UnknownInstruction: {code: 263, name: "UnknownInstruction", msg: "Unknown instruction {opcode}", fields: []string{"opcode"}},
	AccountNotInitialized: {code: 264, name: "AccountNotInitialized", msg: "Account {account} is not initialized", fields: []string{"account"}},
	RecordOutOfBounds: {code: 265, name: "RecordOutOfBounds", msg: "Record index {index} out of bounds, capacity {capacity}", fields: []string{"index", "capacity"}},
	InvalidInstructionTag: {code: 266, name: "InvalidInstructionTag", msg: "Invalid instruction tag: expected {expected}, got {actual}", fields: []string{"expected", "actual"}},
	InvalidCandlesTag: {code: 267, name: "InvalidCandlesTag", msg: "Unknown candles account tag {tag}", fields: []string{"tag"}},
	InvalidVoteOption: {code: 268, name: "InvalidVoteOption", msg: "Invalid vote option {choice}", fields: []string{"choice"}},
	InvalidDenominator: {code: 269, name: "InvalidDenominator", msg: "Invalid denominator {denominator}", fields: []string{"denominator"}},
	InvalidVariance: {code: 270, name: "InvalidVariance", msg: "Invalid variance {variance}", fields: []string{"variance"}},
	InvalidAirdropRatio: {code: 271, name: "InvalidAirdropRatio", msg: "Invalid airdrop ratio {ratio}", fields: []string{"ratio"}},
	InvalidExpirationTime: {code: 272, name: "InvalidExpirationTime", msg: "Invalid expiration time {expiration_time}", fields: []string{"expiration_time"}},
	InvalidSeatPurchasingFee: {code: 273, name: "InvalidSeatPurchasingFee", msg: "Invalid seat purchasing fee {fee}", fields: []string{"fee"}},
	InvalidVMWhitelistSlot: {code: 274, name: "InvalidVMWhitelistSlot", msg: "Invalid VM whitelist slot {slot}, max {max}", fields: []string{"slot", "max"}},
	VMIsNotActive: {code: 275, name: "VMIsNotActive", msg: "VM Is Not Active", fields: nil},
	VMIsActive: {code: 276, name: "VMIsActive", msg: "VM Is Active", fields: nil},
	InvalidVMWalletAccount: {code: 277, name: "InvalidVMWalletAccount", msg: "Invalid VM wallet account {account}", fields: []string{"account"}},
	InvalidPrivateClientsAccount: {code: 278, name: "InvalidPrivateClientsAccount", msg: "Invalid Private Clients Account", fields: nil},
	PrivateClientNotFound: {code: 279, name: "PrivateClientNotFound", msg: "Private client {wallet_address} not found", fields: []string{"wallet_address"}},
	PrivateClientExpired: {code: 280, name: "PrivateClientExpired", msg: "Private client {wallet_address} expired at {expiration_time}", fields: []string{"wallet_address", "expiration_time"}},
	InvalidAccountAddress: {code: 281, name: "InvalidAccountAddress", msg: "Invalid account address {account}, expected {expected_address}", fields: []string{"account", "expected_address"}},
	InsufficientAccountSpace: {code: 282, name: "InsufficientAccountSpace", msg: "Insufficient account space: required {required} bytes, got {actual}", fields: []string{"required", "actual"}},
	InvalidRefID: {code: 283, name: "InvalidRefID", msg: "Invalid ref id {ref_id}", fields: []string{"ref_id"}},
	InvalidCompetitionID: {code: 284, name: "InvalidCompetitionID", msg: "Invalid competition id {competition_id}", fields: []string{"competition_id"}},
	UnknownAccountType: {code: 285, name: "UnknownAccountType", msg: "Unknown account type {tag}", fields: []string{"tag"}},
}
