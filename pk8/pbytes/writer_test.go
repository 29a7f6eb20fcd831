package pbytes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_LittleEndian(t *testing.T) {
	writer := NewWriter(8)
	writer.PutUint16At(0, 0x1234)
	writer.PutUint32At(2, 0xDEADBEEF)
	writer.PutByteAt(6, 0x7F)

	assert.Equal(t, []byte{0x34, 0x12, 0xEF, 0xBE, 0xAD, 0xDE, 0x7F, 0x00}, writer.Bytes())
}

func TestWriter_PutStringAt_Pads(t *testing.T) {
	writer := NewWriter(12)
	writer.PutStringAt(0, 12, "Ash")

	bs := writer.Bytes()
	assert.Equal(t, byte('A'), bs[0])
	assert.Equal(t, byte('h'), bs[2])
	for i := 3; i < 12; i++ {
		assert.Equal(t, byte(0), bs[i])
	}
}

func TestWriter_PutStringAt_Overwrite(t *testing.T) {
	writer := NewWriter(12)
	writer.PutStringAt(0, 12, "Charmander")
	writer.PutStringAt(0, 12, "Mew")

	assert.Equal(t, "Mew", CutString(writer.Bytes()))
}

func TestFitString_Truncation(t *testing.T) {
	// 20 characters truncate to exactly 12 bytes.
	long := strings.Repeat("ab", 10)
	assert.Equal(t, "abababababab", FitString(long, 12))
	assert.Equal(t, "Pikachu", FitString("Pikachu", 12))
}

func TestFitString_RuneBoundary(t *testing.T) {
	// Five 3-byte runes occupy 15 bytes; the cut lands on the previous
	// rune boundary instead of splitting the fifth rune.
	fitted := FitString("ポケモンズ", 12)
	assert.Equal(t, "ポケモン", fitted)
	assert.Equal(t, 12, len(fitted))
}

func TestCutString_TrailingZeroes(t *testing.T) {
	bs := make([]byte, 12)
	copy(bs, "Eevee")
	assert.Equal(t, "Eevee", CutString(bs))
	assert.Equal(t, "", CutString(make([]byte, 12)))
}
