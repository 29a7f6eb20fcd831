package pk8

import (
	"github.com/pkg/errors"

	"pkm-forge/pk8/pbytes"
	"pkm-forge/pk8/playout"
)

// Decode parses the first 344 bytes of bs into a fully-populated Record.
// Buffers longer than one record are accepted; anything shorter fails with
// ErrMalformedInput. No semantic validation happens here: implausible
// numeric values decode fine, and the stored checksum and sanity are
// surfaced as-is. Use VerifyChecksum for integrity checking.
func Decode(bs []byte) (*Record, error) {
	if len(bs) < playout.RecordSize {
		return nil, ErrMalformedInput{Length: len(bs)}
	}
	reader := pbytes.NewReader(bs[:playout.RecordSize])

	readByte := func(field playout.Field) pbytes.ReadFunction {
		return pbytes.CreateByteReadFunction(reader, field.Offset)
	}
	readUint16 := func(field playout.Field) pbytes.ReadFunction {
		return pbytes.CreateUint16ReadFunction(reader, field.Offset)
	}
	readUint32 := func(field playout.Field) pbytes.ReadFunction {
		return pbytes.CreateUint32ReadFunction(reader, field.Offset)
	}
	readName := func(field playout.Field) pbytes.ReadFunction {
		return pbytes.CreateStringReadFunction(reader, field.Offset, field.Size)
	}
	readPacked := func(field playout.Field) pbytes.ReadFunction {
		return func() (any, error) {
			word, err := readSlot(reader, field)
			if err != nil {
				return nil, err
			}
			return field.Extract(word), nil
		}
	}
	readFlag := func(field playout.Field) pbytes.ReadFunction {
		return func() (any, error) {
			word, err := readSlot(reader, field)
			if err != nil {
				return nil, err
			}
			return field.Extract(word) != 0, nil
		}
	}
	// byte groups come back as fixed arrays, not slices: a []uint8 would
	// round-trip through ExecuteInstructions as base64 text instead of a
	// JSON number array
	readByteGroup := func(fields [6]playout.Field) pbytes.ReadFunction {
		return func() (any, error) {
			values := [6]uint8{}
			for i, field := range fields {
				value, err := reader.ByteAt(field.Offset)
				if err != nil {
					return nil, err
				}
				values[i] = value
			}
			return values, nil
		}
	}
	readIVs := func() (any, error) {
		word, err := reader.Uint32At(playout.IVWord.Offset)
		if err != nil {
			return nil, err
		}
		values := [6]uint8{}
		for i := range values {
			values[i] = uint8(playout.IV(i).Extract(word))
		}
		return values, nil
	}
	readMoves := func() (any, error) {
		values := [4]uint16{}
		for i, field := range playout.Moves {
			value, err := reader.Uint16At(field.Offset)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}
	readPPs := func() (any, error) {
		values := [4]uint8{}
		for i, field := range playout.MovePPs {
			value, err := reader.ByteAt(field.Offset)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}
	readStats := func() (any, error) {
		values := [6]uint16{}
		for i, field := range playout.Stats {
			value, err := reader.Uint16At(field.Offset)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}

	instructions := []pbytes.Instruction{
		{Key: "encryption_constant", ReadFunction: readUint32(playout.EncryptionConstant)},
		{Key: "sanity", ReadFunction: readUint16(playout.Sanity)},
		{Key: "checksum", ReadFunction: readUint16(playout.Checksum)},
		{Key: "species", ReadFunction: readUint16(playout.Species)},
		{Key: "held_item", ReadFunction: readUint16(playout.HeldItem)},
		{Key: "tid", ReadFunction: readUint16(playout.TID)},
		{Key: "sid", ReadFunction: readUint16(playout.SID)},
		{Key: "id32", ReadFunction: readUint32(playout.ID32)},
		{Key: "exp", ReadFunction: readUint32(playout.EXP)},
		{Key: "ability", ReadFunction: readUint16(playout.Ability)},
		{Key: "ability_number", ReadFunction: readPacked(playout.AbilityNumber)},
		{Key: "can_gigantamax", ReadFunction: readFlag(playout.CanGigantamax)},
		{Key: "pid", ReadFunction: readUint32(playout.PID)},
		{Key: "nature", ReadFunction: readByte(playout.Nature)},
		{Key: "stat_nature", ReadFunction: readByte(playout.StatNature)},
		{Key: "gender", ReadFunction: readPacked(playout.Gender)},
		{Key: "form", ReadFunction: readByte(playout.Form)},
		{Key: "evs", ReadFunction: readByteGroup(playout.EVs)},
		{Key: "ivs", ReadFunction: readIVs},
		{Key: "is_egg", ReadFunction: readFlag(playout.IsEgg)},
		{Key: "is_nicknamed", ReadFunction: readFlag(playout.IsNicknamed)},
		{Key: "moves", ReadFunction: readMoves},
		{Key: "move_pps", ReadFunction: readPPs},
		{Key: "nickname", ReadFunction: readName(playout.Nickname)},
		{Key: "original_trainer_name", ReadFunction: readName(playout.OriginalTrainerName)},
		{Key: "handling_trainer_name", ReadFunction: readName(playout.HandlingTrainerName)},
		{Key: "egg_location", ReadFunction: readUint16(playout.EggLocation)},
		{Key: "met_location", ReadFunction: readUint16(playout.MetLocation)},
		{Key: "ball", ReadFunction: readByte(playout.Ball)},
		{Key: "met_level", ReadFunction: readPacked(playout.MetLevel)},
		{Key: "original_trainer_gender", ReadFunction: readPacked(playout.OriginalTrainerGender)},
		{Key: "language", ReadFunction: readUint16(playout.Language)},
		{Key: "level", ReadFunction: readByte(playout.Level)},
		{Key: "stats", ReadFunction: readStats},
	}

	record, err := pbytes.ExecuteInstructions[Record](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "Decode error")
	}
	return record, nil
}

func readSlot(reader *pbytes.Reader, field playout.Field) (uint32, error) {
	if field.Size == 1 {
		value, err := reader.ByteAt(field.Offset)
		return uint32(value), err
	}
	return reader.Uint32At(field.Offset)
}
