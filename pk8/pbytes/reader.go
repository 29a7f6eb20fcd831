package pbytes

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

func NewReader(bs []byte) *Reader {
	return &Reader{bs: bs}
}

func (r *Reader) Len() int {
	return len(r.bs)
}

func (r *Reader) bytesAt(offset int, n int) ([]byte, error) {
	if offset < 0 || offset+n > len(r.bs) {
		return nil, errors.Errorf(
			"read of %d bytes at offset 0x%X past the end of a %d-byte buffer",
			n, offset, len(r.bs),
		)
	}
	return r.bs[offset : offset+n], nil
}

func (r *Reader) ByteAt(offset int) (byte, error) {
	bs, err := r.bytesAt(offset, 1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (r *Reader) Uint16At(offset int) (uint16, error) {
	bs, err := r.bytesAt(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (r *Reader) Uint32At(offset int) (uint32, error) {
	bs, err := r.bytesAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (r *Reader) BytesAt(offset int, n int) ([]byte, error) {
	bs, err := r.bytesAt(offset, n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, bs)
	return out, nil
}

// StringAt reads an n-byte NUL-padded string span. Trailing zero bytes are
// stripped and invalid UTF-8 sequences are dropped, which mirrors how the
// external consumer lays names out on the wire.
func (r *Reader) StringAt(offset int, n int) (string, error) {
	bs, err := r.bytesAt(offset, n)
	if err != nil {
		return "", err
	}
	return CutString(bs), nil
}
