package layout

import "github.com/deriverse/drv-smart-contract-common/internal/drverr"

// Records is a bounds-checked view over an array of T that starts at offset
// inside an account buffer. Writes go straight into the buffer.
type Records[T any] struct {
	data   []byte
	offset int
	size   int
}

func NewRecords[T any](data []byte, offset int) Records[T] {
	if offset < 0 || offset > len(data) {
		offset = len(data)
	}
	return Records[T]{data: data, offset: offset, size: Size[T]()}
}

// Len is the number of whole records that fit after offset.
func (r Records[T]) Len() int {
	if r.size <= 0 {
		return 0
	}
	return (len(r.data) - r.offset) / r.size
}

func (r Records[T]) At(i int) (*T, error) {
	if i < 0 || i >= r.Len() {
		return nil, drverr.New(drverr.RecordOutOfBounds, i, r.Len())
	}
	start := r.offset + i*r.size
	return decode[T](r.data[start:start+r.size], r.size)
}

func (r Records[T]) Set(i int, v *T) error {
	if i < 0 || i >= r.Len() {
		return drverr.New(drverr.RecordOutOfBounds, i, r.Len())
	}
	return PutAt(r.data, r.offset+i*r.size, v)
}

// Each calls fn for every record until fn returns false or an error occurs.
func (r Records[T]) Each(fn func(i int, v *T) bool) error {
	for i := 0; i < r.Len(); i++ {
		v, err := r.At(i)
		if err != nil {
			return err
		}
		if !fn(i, v) {
			return nil
		}
	}
	return nil
}
