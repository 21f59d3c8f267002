package state

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

const (
	ClientPrimaryAccountHeaderSize   = 352
	ClientPrimaryVMAccountHeaderSize = 376
	AssetRecordSize                  = 16
	ClientCommunityAccountHeaderSize = 64
	ClientCommunityRecordSize        = 56
	CommunityAccountHeaderSize       = 160
	BaseCrncyRecordSize              = 56
	ClientDrvAccountHeaderSize       = 24
	PdfAccountHeaderSize             = 8
)

// ClientPrimaryAccountHeader is the root account of a client. Asset records
// follow the header.
type ClientPrimaryAccountHeader struct {
	Discriminator           models.Discriminator
	WalletAddress           solana.PublicKey
	DrvAddress              solana.PublicKey
	CommunityAddress        solana.PublicKey
	LutAddress              solana.PublicKey
	RefAddress              solana.PublicKey
	FirstRefLinkDiscount    float64
	SecondRefLinkDiscount   float64
	FirstRefLinkRatio       float64
	SecondRefLinkRatio      float64
	RefProgramDiscount      float64
	RefProgramRatio         float64
	Reserved                int64
	Mask                    int64
	ID                      models.ClientID
	RefClientID             models.ClientID
	RefCounter              uint32
	FirstRefLinkID          uint32
	SecondRefLinkID         uint32
	FirstRefLinkExpiration  uint32
	SecondRefLinkExpiration uint32
	RefProgramExpiration    uint32
	SpotTrades              uint32
	PerpTrades              uint32
	LpTrades                uint32
	Points                  uint32
	Slot                    uint32
	AssetsCount             uint32
	ReservedValue1          int64
	ReservedValue2          int64
	ReservedValue3          int64
	ReservedValue4          int64
	ReservedValue5          int64
	ReservedValue6          int64
	ReservedValue7          int64
	ReservedValue8          int64
}

func DecodeClientPrimary(data []byte) (*ClientPrimaryAccountHeader, error) {
	return decodeHeader[ClientPrimaryAccountHeader](data, models.AccountClientPrimary)
}

func (h *ClientPrimaryAccountHeader) WriteTo(data []byte) error {
	return layout.Put(data, h)
}

func (h *ClientPrimaryAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

// Assets is the asset table of the client, sized by AssetsCount.
func (h *ClientPrimaryAccountHeader) Assets(data []byte) layout.Records[AssetRecord] {
	end := ClientPrimaryAccountHeaderSize + int(h.AssetsCount)*AssetRecordSize
	if end > len(data) {
		end = len(data)
	}
	return layout.NewRecords[AssetRecord](data[:end], ClientPrimaryAccountHeaderSize)
}

// RefClient is unset for clients that joined without a referral.
func (h *ClientPrimaryAccountHeader) RefClient() (models.ClientID, bool) {
	return h.RefClientID, !h.RefAddress.IsZero() && !h.RefClientID.IsNull()
}

// ClientPrimaryVMAccountHeader is the client header as written by program
// builds that carry the vault manager (VM) extension.
type ClientPrimaryVMAccountHeader struct {
	Discriminator           models.Discriminator
	WalletAddress           solana.PublicKey
	LutAddress              solana.PublicKey
	RefAddress              solana.PublicKey
	VMWalletAddress         solana.PublicKey
	VMInstr0                uint32
	VMInstr1                uint32
	VMInstr2                uint32
	VMInstr3                uint32
	VMInstr4                uint32
	VMInstr5                uint32
	VMInstr6                uint32
	VMInstr7                uint32
	VMWithdrawTokenID       uint32
	VMMask                  uint32
	VMWithdrawAmount        int64
	FirstRefLinkDiscount    float64
	SecondRefLinkDiscount   float64
	FirstRefLinkRatio       float64
	SecondRefLinkRatio      float64
	RefProgramDiscount      float64
	RefProgramRatio         float64
	Reserved                int64
	Mask                    int64
	ID                      models.ClientID
	RefClientID             models.ClientID
	RefCounter              uint32
	FirstRefLinkID          uint32
	SecondRefLinkID         uint32
	FirstRefLinkExpiration  uint32
	SecondRefLinkExpiration uint32
	RefProgramExpiration    uint32
	SpotTrades              uint32
	PerpTrades              uint32
	LpTrades                uint32
	Points                  uint32
	Slot                    uint32
	AssetsCount             uint32
	SpotFilledOrders        uint32
	PerpFilledOrders        uint32
	ReservedValue1          int64
	ReservedValue2          int64
	ReservedValue3          int64
	ReservedValue4          int64
	ReservedValue5          int64
	ReservedValue6          int64
	ReservedValue7          int64
	ReservedValue8          int64
}

func DecodeClientPrimaryVM(data []byte) (*ClientPrimaryVMAccountHeader, error) {
	return decodeHeader[ClientPrimaryVMAccountHeader](data, models.AccountClientPrimary)
}

func (h *ClientPrimaryVMAccountHeader) WriteTo(data []byte) error {
	return layout.Put(data, h)
}

// VMWhitelistSlots is the number of instrument slots a VM wallet may trade.
const VMWhitelistSlots = 8

func (h *ClientPrimaryVMAccountHeader) VMWhitelist() [VMWhitelistSlots]uint32 {
	return [VMWhitelistSlots]uint32{
		h.VMInstr0, h.VMInstr1, h.VMInstr2, h.VMInstr3,
		h.VMInstr4, h.VMInstr5, h.VMInstr6, h.VMInstr7,
	}
}

// SetVMWhitelist stores instrID in one of the whitelist slots.
func (h *ClientPrimaryVMAccountHeader) SetVMWhitelist(slot uint8, instrID uint32) error {
	targets := [VMWhitelistSlots]*uint32{
		&h.VMInstr0, &h.VMInstr1, &h.VMInstr2, &h.VMInstr3,
		&h.VMInstr4, &h.VMInstr5, &h.VMInstr6, &h.VMInstr7,
	}
	if int(slot) >= VMWhitelistSlots {
		return drverr.New(drverr.InvalidVMWhitelistSlot, slot, VMWhitelistSlots-1)
	}
	*targets[slot] = instrID
	return nil
}

func (h *ClientPrimaryVMAccountHeader) HasVM() bool {
	return !h.VMWalletAddress.IsZero()
}

// AssetRecord is one entry of a client's asset table. AssetID packs the
// AssetType in its high nibble.
type AssetRecord struct {
	AssetID uint32
	TempID  uint32
	Value   int64
}

func (a *AssetRecord) Type() (models.AssetType, uint32) {
	return models.SplitAssetID(a.AssetID)
}

// ClientCommunityAccountHeader tracks a client's governance state. One
// ClientCommunityRecord per base currency follows.
type ClientCommunityAccountHeader struct {
	Discriminator        models.Discriminator
	ID                   models.ClientID
	LastVotingTime       uint32
	LastVotingCounter    uint32
	CurrentVotingCounter uint32
	CurrentVotingTokens  int64
	LastVotingTokens     int64
	LastChoice           uint32
	Slot                 uint32
	DrvsTokens           int64
	Count                uint32
	Reserved             uint32
}

func DecodeClientCommunity(data []byte) (*ClientCommunityAccountHeader, error) {
	return decodeHeader[ClientCommunityAccountHeader](data, models.AccountClientCommunity)
}

func (h *ClientCommunityAccountHeader) WriteTo(data []byte) error {
	return layout.Put(data, h)
}

func (h *ClientCommunityAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

func (h *ClientCommunityAccountHeader) Records(data []byte) layout.Records[ClientCommunityRecord] {
	return layout.NewRecords[ClientCommunityRecord](data, ClientCommunityAccountHeaderSize)
}

type ClientCommunityRecord struct {
	DividendsRate          float64
	DividendsValue         int64
	FeesPrepayment         int64
	FeesRatio              float64
	RefRewards             int64
	RefPayments            int64
	LastFeesPrepaymentTime uint32
	CrncyTokenID           uint32
}

// CommunityAccountHeader holds the protocol-wide voting and fee parameters.
// BaseCrncyRecord entries follow.
type CommunityAccountHeader struct {
	Discriminator                models.Discriminator
	DrvsTokens                   int64
	MinAmount                    int64
	VotingSupply                 int64
	PrevVotingSupply             int64
	VotingDecr                   int64
	PrevVotingDecr               int64
	VotingUnchange               int64
	PrevVotingUnchange           int64
	VotingIncr                   int64
	PrevVotingIncr               int64
	VotingCounter                uint32
	VotingStartSlot              uint32
	VotingEndTime                uint32
	SpotFeeRate                  uint32
	PerpFeeRate                  uint32
	SpotPoolRatio                uint32
	MarginCallPenaltyRate        uint32
	FeesPrepaymentForMaxDiscount uint32
	MaxDiscount                  uint32
	ReservedValue1               uint32
	ReservedValue2               uint32
	ReservedValue3               uint32
	ReservedValue4               uint32
	ReservedValue5               uint32
	ReservedValue6               uint32
	ReservedValue7               uint32
	ReservedValue8               uint32
	Count                        uint32
}

func DecodeCommunity(data []byte) (*CommunityAccountHeader, error) {
	return decodeHeader[CommunityAccountHeader](data, models.AccountCommunity)
}

func (h *CommunityAccountHeader) WriteTo(data []byte) error {
	return layout.Put(data, h)
}

func (h *CommunityAccountHeader) BaseCrncy(data []byte) layout.Records[BaseCrncyRecord] {
	return layout.NewRecords[BaseCrncyRecord](data, CommunityAccountHeaderSize)
}

type BaseCrncyRecord struct {
	CrncyTokenID             uint32
	DecsCount                uint32
	Funds                    int64
	Rate                     float64
	Denominator              float64
	LockedDrvsAmount         int64
	LockedDrvsDividendsValue int64
	Mask                     int64
}

type ClientDrvAccountHeader struct {
	Discriminator models.Discriminator
	ID            models.ClientID
	Count         uint32
	Slot          uint32
	Reserved      uint32
}

func DecodeClientDrv(data []byte) (*ClientDrvAccountHeader, error) {
	return decodeHeader[ClientDrvAccountHeader](data, models.AccountClientDrv)
}

func (h *ClientDrvAccountHeader) Touch(slot uint32) {
	h.Slot = slot
}

func (h *ClientDrvAccountHeader) WriteTo(data []byte) error {
	return layout.Put(data, h)
}

// PdfAccountHeader has no declared account type; Tag is checked by callers.
type PdfAccountHeader struct {
	Tag     uint32
	Version models.Version
}
