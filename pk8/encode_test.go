package pk8

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkm-forge/pk8/playout"
)

func ptr[T any](value T) *T {
	return &value
}

func TestEncode_FixedSize(t *testing.T) {
	bs, err := Encode(Partial{}, NewDefaults())
	require.NoError(t, err)
	assert.Len(t, bs, playout.RecordSize)

	bs, err = EncodeRecord(Record{})
	require.NoError(t, err)
	assert.Len(t, bs, playout.RecordSize)
}

func TestEncode_DefaultsFillOmittedFields(t *testing.T) {
	bs, err := Encode(Partial{}, NewDefaults())
	require.NoError(t, err)

	assert.Equal(t, uint16(25), binary.LittleEndian.Uint16(bs[playout.Species.Offset:]))
	assert.Equal(t, uint16(12345), binary.LittleEndian.Uint16(bs[playout.TID.Offset:]))
	assert.Equal(t, uint16(54321), binary.LittleEndian.Uint16(bs[playout.SID.Offset:]))
	assert.Equal(t, uint32(1000), binary.LittleEndian.Uint32(bs[playout.EXP.Offset:]))
	assert.Equal(t, uint32(0x12345678), binary.LittleEndian.Uint32(bs[playout.PID.Offset:]))
	assert.Equal(t, byte(15), bs[playout.Nature.Offset])
	assert.Equal(t, byte(4), bs[playout.Ball.Offset])
	assert.Equal(t, byte(5), bs[playout.Level.Offset])
	assert.Equal(t, uint16(5), binary.LittleEndian.Uint16(bs[playout.Language.Offset:]))
}

func TestEncode_PartialOverridesDefaults(t *testing.T) {
	partial := Partial{
		Species: ptr(uint16(133)),
		Level:   ptr(uint8(50)),
	}
	bs, err := Encode(partial, NewDefaults())
	require.NoError(t, err)

	assert.Equal(t, uint16(133), binary.LittleEndian.Uint16(bs[playout.Species.Offset:]))
	assert.Equal(t, byte(50), bs[playout.Level.Offset])
	// untouched fields still come from defaults
	assert.Equal(t, uint16(12345), binary.LittleEndian.Uint16(bs[playout.TID.Offset:]))
}

func TestEncode_IVWordPacking(t *testing.T) {
	bs, err := Encode(Partial{IVs: ptr([6]uint8{31, 31, 31, 31, 31, 31})}, NewDefaults())
	require.NoError(t, err)

	word := binary.LittleEndian.Uint32(bs[playout.IVWord.Offset:])
	assert.Equal(t, uint32(0x3FFFFFFF), word)
}

func TestEncode_PlaceholderSlotsStayZero(t *testing.T) {
	bs, err := Encode(Partial{}, NewDefaults())
	require.NoError(t, err)

	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(bs[playout.EncryptionConstant.Offset:]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(bs[playout.Sanity.Offset:]))
}

func TestEncode_ChecksumCoversPayload(t *testing.T) {
	bs, err := Encode(Partial{}, NewDefaults())
	require.NoError(t, err)

	stored := binary.LittleEndian.Uint16(bs[playout.Checksum.Offset:])
	assert.Equal(t, ComputeChecksum(bs), stored)

	// the checksum slot itself reads as part of neither the span nor the sum
	ok, err := VerifyChecksum(bs)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEncode_ChecksumDeterminism(t *testing.T) {
	first, err := Encode(Partial{}, NewDefaults())
	require.NoError(t, err)
	second, err := Encode(Partial{}, NewDefaults())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// altering any single payload byte changes the expected sum
	second[playout.Level.Offset]++
	assert.NotEqual(t, ComputeChecksum(first), ComputeChecksum(second))
}

func TestEncode_GenderBitIsolation(t *testing.T) {
	male, err := Encode(Partial{Gender: ptr(uint8(GenderMale))}, NewDefaults())
	require.NoError(t, err)
	genderless, err := Encode(Partial{Gender: ptr(uint8(GenderGenderless))}, NewDefaults())
	require.NoError(t, err)

	assert.Equal(t, byte(0), male[playout.Gender.Offset])
	assert.Equal(t, byte(8), genderless[playout.Gender.Offset])
	// only the gender byte and the checksum may differ
	for i := range male {
		if i == playout.Gender.Offset ||
			i == playout.Checksum.Offset || i == playout.Checksum.Offset+1 {
			continue
		}
		assert.Equalf(t, male[i], genderless[i], "byte 0x%X", i)
	}
	assert.Equal(t, male[playout.Form.Offset], genderless[playout.Form.Offset])
}

func TestEncode_NicknameTruncation(t *testing.T) {
	bs, err := Encode(Partial{Nickname: ptr("AbsolutelyOversized!")}, NewDefaults())
	require.NoError(t, err)

	span := bs[playout.Nickname.Offset : playout.Nickname.Offset+playout.NameSize]
	assert.Equal(t, []byte("AbsolutelyOv"), span)
}

func TestEncode_PermissiveTruncation(t *testing.T) {
	bs, err := EncodeRecord(Record{IVs: [6]uint8{32, 0, 0, 0, 0, 0}, MetLevel: 200})
	require.NoError(t, err)

	// 32 wraps to 0 in a 5-bit field; 200 loses its top bit
	word := binary.LittleEndian.Uint32(bs[playout.IVWord.Offset:])
	assert.Equal(t, uint32(0), word)
	assert.Equal(t, byte(200&0x7F), bs[playout.MetLevel.Offset])
}

func TestEncodeStrict_OutOfRange(t *testing.T) {
	_, err := EncodeRecordStrict(Record{IVs: [6]uint8{32, 0, 0, 0, 0, 0}})
	require.Error(t, err)
	outOfRange := ErrOutOfRange{}
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, "iv_hp", outOfRange.Field)
	assert.Equal(t, uint32(32), outOfRange.Value)

	_, err = EncodeRecordStrict(Record{Gender: 4})
	require.Error(t, err)
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, "gender", outOfRange.Field)

	_, err = EncodeRecordStrict(Record{MetLevel: 128})
	require.Error(t, err)

	_, err = EncodeRecordStrict(Record{IVs: [6]uint8{31, 31, 31, 31, 31, 31}, Gender: 2, MetLevel: 127})
	assert.NoError(t, err)
}

func TestResolve_DecoderOnlyFieldsStayZero(t *testing.T) {
	record := Resolve(Partial{}, NewDefaults())

	assert.Equal(t, uint8(0), record.AbilityNumber)
	assert.False(t, record.CanGigantamax)
	assert.Equal(t, uint8(0), record.StatNature)
	assert.Equal(t, [4]uint8{}, record.MovePPs)
	assert.Equal(t, "", record.HandlingTrainerName)
	assert.Equal(t, [6]uint16{}, record.Stats)
	assert.Equal(t, uint32(0), record.ID32)
}
