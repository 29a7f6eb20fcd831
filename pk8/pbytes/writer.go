package pbytes

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

func NewWriter(size int) *Writer {
	return &Writer{bs: make([]byte, size)}
}

func (r *Writer) PutByteAt(offset int, value byte) {
	r.bs[offset] = value
}

func (r *Writer) PutUint16At(offset int, value uint16) {
	binary.LittleEndian.PutUint16(r.bs[offset:], value)
}

func (r *Writer) PutUint32At(offset int, value uint32) {
	binary.LittleEndian.PutUint32(r.bs[offset:], value)
}

// PutStringAt writes value into an n-byte span, NUL-padded. Oversized input
// is truncated, never rejected.
func (r *Writer) PutStringAt(offset int, n int, value string) {
	fitted := FitString(value, n)
	copy(r.bs[offset:offset+n], fitted)
	for i := offset + len(fitted); i < offset+n; i++ {
		r.bs[i] = 0
	}
}

func (r *Writer) Bytes() []byte {
	return r.bs
}

// FitString replaces invalid UTF-8 sequences and truncates the result to at
// most n bytes without splitting a rune.
func FitString(value string, n int) string {
	value = strings.ToValidUTF8(value, string(utf8.RuneError))
	if len(value) <= n {
		return value
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

// CutString strips trailing zero bytes from a fixed-size string span and
// drops whatever does not decode as UTF-8.
func CutString(bs []byte) string {
	s := strings.TrimRight(string(bs), "\x00")
	return strings.ToValidUTF8(s, "")
}
