// Package layout reads and writes fixed-size little-endian records laid out
// the way the on-chain program stores them.
package layout

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
)

// Size is the encoded width of T. T must be built from fixed-size fields.
func Size[T any]() int {
	var zero T
	return binary.Size(zero)
}

// Decode reads a T from data, which must be exactly Size[T]() bytes long.
func Decode[T any](data []byte) (*T, error) {
	size := Size[T]()
	if size < 0 {
		panic(fmt.Sprintf("layout: %T is not fixed-size", *new(T)))
	}
	if len(data) != size {
		return nil, drverr.New(drverr.InvalidDataFormat, size, len(data))
	}
	return decode[T](data, size)
}

// DecodePrefix reads a T from the first Size[T]() bytes of data.
func DecodePrefix[T any](data []byte) (*T, error) {
	size := Size[T]()
	if len(data) < size {
		return nil, drverr.New(drverr.InvalidDataFormat, size, len(data))
	}
	return decode[T](data[:size], size)
}

// DecodeAt reads a T starting at offset.
func DecodeAt[T any](data []byte, offset int) (*T, error) {
	size := Size[T]()
	if offset < 0 || offset+size > len(data) {
		return nil, drverr.New(drverr.InvalidDataFormat, offset+size, len(data))
	}
	return decode[T](data[offset:offset+size], size)
}

func decode[T any](data []byte, size int) (*T, error) {
	out := new(T)
	if err := bin.NewBinDecoder(data).Decode(out); err != nil {
		return nil, drverr.Context(err, drverr.InvalidDataFormat, size, len(data))
	}
	return out, nil
}

// Encode returns the wire bytes of v.
func Encode[T any](v *T) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, Size[T]()))
	if err := bin.NewBinEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return buf.Bytes(), nil
}

// EncodeValue encodes a pointer to a fixed-size struct whose type is only
// known at run time.
func EncodeValue(v any) ([]byte, error) {
	size := binary.Size(v)
	if size < 0 {
		return nil, fmt.Errorf("layout: %T is not fixed-size", v)
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if err := bin.NewBinEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return buf.Bytes(), nil
}

// Put writes v over the first Size[T]() bytes of dst.
func Put[T any](dst []byte, v *T) error {
	return PutAt(dst, 0, v)
}

// PutAt writes v into dst at offset without growing dst.
func PutAt[T any](dst []byte, offset int, v *T) error {
	size := Size[T]()
	if offset < 0 || offset+size > len(dst) {
		return drverr.New(drverr.InsufficientAccountSpace, offset+size, len(dst))
	}
	raw, err := Encode(v)
	if err != nil {
		return err
	}
	copy(dst[offset:offset+size], raw)
	return nil
}
