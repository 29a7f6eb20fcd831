package pk8

import (
	"encoding/binary"

	"pkm-forge/pk8/playout"
)

// ComputeChecksum sums every little-endian 16-bit word of the record's
// payload (bytes 8 through 343), truncated to 16 bits. The encryption
// constant, sanity, and checksum slots sit before the span and are never
// part of the sum. bs must hold at least one full record.
func ComputeChecksum(bs []byte) uint16 {
	sum := uint16(0)
	for offset := playout.ChecksumSpanStart; offset+2 <= playout.RecordSize; offset += 2 {
		sum += binary.LittleEndian.Uint16(bs[offset:])
	}
	return sum
}

// VerifyChecksum recomputes the payload word sum and compares it against the
// stored checksum. Decoding never does this on its own; callers that need
// integrity assurance opt in here.
func VerifyChecksum(bs []byte) (bool, error) {
	if len(bs) < playout.RecordSize {
		return false, ErrMalformedInput{Length: len(bs)}
	}
	stored := binary.LittleEndian.Uint16(bs[playout.Checksum.Offset:])
	return stored == ComputeChecksum(bs), nil
}
