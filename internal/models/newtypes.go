package models

import "fmt"

// Tag is the account-kind half of a Discriminator.
type Tag uint32

// Version is the schema-version half of a Discriminator.
type Version uint32

// ClientID is a program-wide client identifier.
type ClientID uint32

// InstrID is an instrument index in Root's instrument table.
type InstrID uint32

func NewTag(v uint32) Tag           { return Tag(v) }
func NewVersion(v uint32) Version   { return Version(v) }
func NewClientID(v uint32) ClientID { return ClientID(v) }
func NewInstrID(v uint32) InstrID   { return InstrID(v) }

func (t Tag) U32() uint32      { return uint32(t) }
func (v Version) U32() uint32  { return uint32(v) }
func (c ClientID) U32() uint32 { return uint32(c) }
func (i InstrID) U32() uint32  { return uint32(i) }

func (c ClientID) String() string {
	return fmt.Sprintf("Client %d", uint32(c))
}

// IsNull reports whether the id is the NullClient sentinel.
func (c ClientID) IsNull() bool {
	return uint32(c) == NullClient
}

// IsNull reports whether the id is the NullInstr sentinel.
func (i InstrID) IsNull() bool {
	return uint32(i) == NullInstr
}
