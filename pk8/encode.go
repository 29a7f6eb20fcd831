package pk8

import (
	"pkm-forge/pk8/pbytes"
	"pkm-forge/pk8/playout"
)

// Resolve fills every omitted field of partial from defaults, producing the
// complete record the encoder writes. Decoder-only fields stay at their
// zero state, which keeps the read/write asymmetry visible in the type
// instead of hidden in behavior.
func Resolve(partial Partial, defaults Defaults) Record {
	return Record{
		Species:             valueOr(partial.Species, defaults.Species),
		HeldItem:            valueOr(partial.HeldItem, defaults.HeldItem),
		TID:                 valueOr(partial.TID, defaults.TID),
		SID:                 valueOr(partial.SID, defaults.SID),
		EXP:                 valueOr(partial.EXP, defaults.EXP),
		Ability:             valueOr(partial.Ability, defaults.Ability),
		PID:                 valueOr(partial.PID, defaults.PID),
		Nature:              valueOr(partial.Nature, defaults.Nature),
		Gender:              valueOr(partial.Gender, defaults.Gender),
		Form:                valueOr(partial.Form, defaults.Form),
		MetLevel:            valueOr(partial.MetLevel, defaults.MetLevel),
		MetLocation:         valueOr(partial.MetLocation, defaults.MetLocation),
		EggLocation:         valueOr(partial.EggLocation, defaults.EggLocation),
		Ball:                valueOr(partial.Ball, defaults.Ball),
		Nickname:            valueOr(partial.Nickname, defaults.Nickname),
		OriginalTrainerName: valueOr(partial.OriginalTrainerName, defaults.OriginalTrainerName),
		Level:               valueOr(partial.Level, defaults.Level),
		IVs:                 valueOr(partial.IVs, defaults.IVs),
		EVs:                 valueOr(partial.EVs, defaults.EVs),
		Moves:               valueOr(partial.Moves, defaults.Moves),
		Language:            valueOr(partial.Language, defaults.Language),
	}
}

// Encode resolves partial against defaults and serializes the result into
// exactly 344 bytes.
func Encode(partial Partial, defaults Defaults) ([]byte, error) {
	return EncodeRecord(Resolve(partial, defaults))
}

// EncodeRecord serializes record into exactly 344 bytes, computing the
// checksum last so it covers the fully populated payload. Values wider than
// their field are truncated to the field's width.
func EncodeRecord(record Record) ([]byte, error) {
	return encodeRecord(record, false)
}

// EncodeRecordStrict is EncodeRecord, except values that do not fit their
// bit width are rejected with ErrOutOfRange instead of silently truncated.
func EncodeRecordStrict(record Record) ([]byte, error) {
	return encodeRecord(record, true)
}

func encodeRecord(record Record, strict bool) ([]byte, error) {
	if strict {
		if err := checkWidths(record); err != nil {
			return nil, err
		}
	}

	writer := pbytes.NewWriter(playout.RecordSize)

	// The encryption constant and sanity slots are placeholders in this
	// format revision; the checksum slot stays zero until the very end.
	writer.PutUint32At(playout.EncryptionConstant.Offset, 0)
	writer.PutUint16At(playout.Sanity.Offset, 0)

	writer.PutUint16At(playout.Species.Offset, record.Species)
	writer.PutUint16At(playout.HeldItem.Offset, record.HeldItem)
	writer.PutUint16At(playout.TID.Offset, record.TID)
	writer.PutUint16At(playout.SID.Offset, record.SID)
	writer.PutUint32At(playout.EXP.Offset, record.EXP)
	writer.PutUint16At(playout.Ability.Offset, record.Ability)
	writer.PutUint32At(playout.PID.Offset, record.PID)
	writer.PutUint16At(playout.Language.Offset, record.Language)

	writer.PutByteAt(playout.Nature.Offset, record.Nature)
	writer.PutByteAt(playout.Gender.Offset, byte(playout.Gender.Insert(0, uint32(record.Gender))))
	writer.PutByteAt(playout.Form.Offset, record.Form)

	for i, field := range playout.EVs {
		writer.PutByteAt(field.Offset, record.EVs[i])
	}

	ivWord := uint32(0)
	for i := range record.IVs {
		ivWord = playout.IV(i).Insert(ivWord, uint32(record.IVs[i]))
	}
	ivWord = playout.IsEgg.Insert(ivWord, flagBit(record.IsEgg))
	ivWord = playout.IsNicknamed.Insert(ivWord, flagBit(record.IsNicknamed))
	writer.PutUint32At(playout.IVWord.Offset, ivWord)

	for i, field := range playout.Moves {
		writer.PutUint16At(field.Offset, record.Moves[i])
	}

	writer.PutStringAt(playout.Nickname.Offset, playout.NameSize, record.Nickname)
	writer.PutStringAt(playout.OriginalTrainerName.Offset, playout.NameSize, record.OriginalTrainerName)

	writer.PutUint16At(playout.EggLocation.Offset, record.EggLocation)
	writer.PutUint16At(playout.MetLocation.Offset, record.MetLocation)
	writer.PutByteAt(playout.Ball.Offset, record.Ball)
	writer.PutByteAt(playout.MetLevel.Offset, byte(playout.MetLevel.Insert(0, uint32(record.MetLevel))))

	writer.PutByteAt(playout.Level.Offset, record.Level)

	bs := writer.Bytes()
	writer.PutUint16At(playout.Checksum.Offset, ComputeChecksum(bs))
	return bs, nil
}

func checkWidths(record Record) error {
	statKeys := [6]string{"iv_hp", "iv_atk", "iv_def", "iv_spe", "iv_spa", "iv_spd"}
	for i, iv := range record.IVs {
		field := playout.IV(i)
		if !field.Fits(uint32(iv)) {
			return ErrOutOfRange{Field: statKeys[i], Value: uint32(iv), Bits: field.Bits}
		}
	}
	if !playout.Gender.Fits(uint32(record.Gender)) {
		return ErrOutOfRange{Field: "gender", Value: uint32(record.Gender), Bits: playout.Gender.Bits}
	}
	if !playout.MetLevel.Fits(uint32(record.MetLevel)) {
		return ErrOutOfRange{Field: "met_level", Value: uint32(record.MetLevel), Bits: playout.MetLevel.Bits}
	}
	return nil
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}

func flagBit(set bool) uint32 {
	if set {
		return 1
	}
	return 0
}
