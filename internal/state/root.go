package state

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/layout"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

const (
	RootStateSize           = 256
	HolderAccountHeaderSize = 8
	OperatorSize            = 40
	TokenStateSize          = 88
	PrivateClientHeaderSize = 8
	PrivateClientSize       = 40
)

// RootState is the program-wide singleton.
type RootState struct {
	Discriminator               models.Discriminator
	OperatorAddress             solana.PublicKey
	HolderAddress               solana.PublicKey
	DrvsMintAddress             solana.PublicKey
	LutAddress                  solana.PublicKey
	AirdropAuthorityAddress     solana.PublicKey
	PrivateModeAuthorityAddress solana.PublicKey
	RefProgramDuration          uint32
	RefLinkDuration             uint32
	RefDiscount                 float64
	RefRatio                    float64
	ClientsCount                uint32
	TokensCount                 uint32
	InstrCount                  uint32
	RefCounter                  uint32
	Mask                        uint32
	PointsProgramExpiration     uint32
	PurchasingPerpSeatFee       float64
}

func DecodeRoot(data []byte) (*RootState, error) {
	return decodeHeader[RootState](data, models.AccountRoot)
}

// DecodeRootVersion additionally pins the schema version.
func DecodeRootVersion(data []byte, version models.Version) (*RootState, error) {
	if err := CheckDiscriminator(data, models.AccountRoot, version); err != nil {
		return nil, err
	}
	return layout.DecodePrefix[RootState](data)
}

func (r *RootState) WriteTo(data []byte) error {
	return layout.Put(data, r)
}

func (r *RootState) PrivateMode() bool {
	return r.Mask&models.RootMaskPrivateMode != 0
}

// HolderAccountHeader carries a bare tag and no version.
type HolderAccountHeader struct {
	Tag            uint32
	OperatorsCount uint32
}

func DecodeHolder(data []byte) (*HolderAccountHeader, error) {
	h, err := layout.DecodePrefix[HolderAccountHeader](data)
	if err != nil {
		return nil, err
	}
	if h.Tag != models.AccountHolder.U32() {
		return nil, tagMismatch(models.AccountHolder, h.Tag)
	}
	return h, nil
}

// Operators lists the operator records following the holder header.
func (h *HolderAccountHeader) Operators(data []byte) layout.Records[Operator] {
	return layout.NewRecords[Operator](data, HolderAccountHeaderSize)
}

type Operator struct {
	OperatorAddress solana.PublicKey
	Version         models.Version
	Reserved        uint32
}

type TokenState struct {
	Discriminator  models.Discriminator
	Address        solana.PublicKey
	ProgramAddress solana.PublicKey
	ID             uint32
	Mask           uint32
	Reserved       uint32
	BaseCrncyIndex uint32
}

func DecodeToken(data []byte) (*TokenState, error) {
	return decodeHeader[TokenState](data, models.AccountToken)
}

func (t *TokenState) WriteTo(data []byte) error {
	return layout.Put(data, t)
}

func (t *TokenState) Decimals() uint32 {
	return t.Mask & models.TokenMaskDecimals
}

func (t *TokenState) IsBaseCrncy() bool {
	return t.Mask&models.TokenMaskBaseCrncy != 0
}

// Program reports which SPL token program owns the mint.
func (t *TokenState) Program() models.TokenProgram {
	if t.ProgramAddress.Equals(solana.Token2022ProgramID) {
		return models.TokenProgram2022
	}
	return models.TokenProgramOriginal
}

type PrivateClientHeader struct {
	Discriminator models.Discriminator
}

type PrivateClient struct {
	CreationTime   uint32
	ExpirationTime uint32
	Wallet         solana.PublicKey
}

// IsVacant reports a slot that was never used or has expired.
func (p *PrivateClient) IsVacant(now uint32) bool {
	return p.CreationTime == 0 || now > p.ExpirationTime
}

// PrivateClients is the whitelist stored in the private-clients account.
func PrivateClients(data []byte) (layout.Records[PrivateClient], error) {
	if err := CheckDiscriminator(data, models.AccountPrivateClients, AnyVersion); err != nil {
		return layout.Records[PrivateClient]{}, err
	}
	return layout.NewRecords[PrivateClient](data, PrivateClientHeaderSize), nil
}
