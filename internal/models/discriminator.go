package models

import "encoding/binary"

// DiscriminatorSize is the width of the header every account starts with.
const DiscriminatorSize = 8

// Discriminator identifies an account's kind and schema version.
type Discriminator struct {
	Tag     Tag
	Version Version
}

func NewDiscriminator(tag Tag, version Version) Discriminator {
	return Discriminator{Tag: tag, Version: version}
}

// ReadDiscriminator reads the leading discriminator of an account buffer.
// ok is false when data is shorter than DiscriminatorSize.
func ReadDiscriminator(data []byte) (Discriminator, bool) {
	if len(data) < DiscriminatorSize {
		return Discriminator{}, false
	}
	return Discriminator{
		Tag:     Tag(binary.LittleEndian.Uint32(data[0:4])),
		Version: Version(binary.LittleEndian.Uint32(data[4:8])),
	}, true
}

// Put writes d into the first DiscriminatorSize bytes of dst.
func (d Discriminator) Put(dst []byte) bool {
	if len(dst) < DiscriminatorSize {
		return false
	}
	binary.LittleEndian.PutUint32(dst[0:4], uint32(d.Tag))
	binary.LittleEndian.PutUint32(dst[4:8], uint32(d.Version))
	return true
}

// IsZero reports an uninitialized account.
func (d Discriminator) IsZero() bool {
	return d.Tag == 0 && d.Version == 0
}

// TagBytes is the little-endian encoding of a tag, used for memcmp filters.
func TagBytes(tag Tag) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(tag))
	return out
}
