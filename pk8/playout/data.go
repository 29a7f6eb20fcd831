package playout

type (
	// Field maps one record attribute to its location inside the 344-byte span.
	// Size is the width in bytes of the containing slot; Shift and Bits describe
	// a packed sub-field inside that slot. Bits of 0 means the field occupies
	// the whole slot.
	Field struct {
		Offset int
		Size   int
		Shift  uint
		Bits   uint
	}
)

const (
	// RecordSize is the exact on-wire size of one stored record.
	RecordSize = 344
	// ChecksumSpanStart is the first byte covered by the checksum; everything
	// before it (encryption constant, sanity, checksum) is excluded.
	ChecksumSpanStart = 8
	// NameSize is the on-wire size of every name string, NUL-padded.
	NameSize = 12
	// IVBits is the width of one individual value inside the IV word.
	IVBits = 5
)

var (
	EncryptionConstant = Field{Offset: 0x00, Size: 4}
	Sanity             = Field{Offset: 0x04, Size: 2}
	Checksum           = Field{Offset: 0x06, Size: 2}
	Species            = Field{Offset: 0x08, Size: 2}
	HeldItem           = Field{Offset: 0x0A, Size: 2}
	TID                = Field{Offset: 0x0C, Size: 2}
	SID                = Field{Offset: 0x0E, Size: 2}
	ID32               = Field{Offset: 0x0C, Size: 4}
	EXP                = Field{Offset: 0x10, Size: 4}
	Ability            = Field{Offset: 0x14, Size: 2}
	AbilityNumber      = Field{Offset: 0x16, Size: 1, Shift: 0, Bits: 3}
	CanGigantamax      = Field{Offset: 0x16, Size: 1, Shift: 4, Bits: 1}
	PID                = Field{Offset: 0x1C, Size: 4}
	Nature             = Field{Offset: 0x20, Size: 1}
	StatNature         = Field{Offset: 0x21, Size: 1}
	Gender             = Field{Offset: 0x22, Size: 1, Shift: 2, Bits: 2}
	Form               = Field{Offset: 0x24, Size: 1}

	// Stat order everywhere: HP, ATK, DEF, SPE, SPA, SPD.
	EVs = [6]Field{
		{Offset: 0x26, Size: 1},
		{Offset: 0x27, Size: 1},
		{Offset: 0x28, Size: 1},
		{Offset: 0x29, Size: 1},
		{Offset: 0x2A, Size: 1},
		{Offset: 0x2B, Size: 1},
	}

	Nickname = Field{Offset: 0x58, Size: NameSize}

	Moves = [4]Field{
		{Offset: 0x72, Size: 2},
		{Offset: 0x74, Size: 2},
		{Offset: 0x76, Size: 2},
		{Offset: 0x78, Size: 2},
	}
	MovePPs = [4]Field{
		{Offset: 0x7A, Size: 1},
		{Offset: 0x7B, Size: 1},
		{Offset: 0x7C, Size: 1},
		{Offset: 0x7D, Size: 1},
	}

	// IVWord packs the six 5-bit IVs at shifts 0, 5, 10, 15, 20, 25,
	// the is-egg flag at bit 30, and the is-nicknamed flag at bit 31.
	IVWord      = Field{Offset: 0x8C, Size: 4}
	IsEgg       = Field{Offset: 0x8C, Size: 4, Shift: 30, Bits: 1}
	IsNicknamed = Field{Offset: 0x8C, Size: 4, Shift: 31, Bits: 1}

	HandlingTrainerName = Field{Offset: 0xA8, Size: NameSize}
	Language            = Field{Offset: 0xE2, Size: 2}
	OriginalTrainerName = Field{Offset: 0xF8, Size: NameSize}

	EggLocation           = Field{Offset: 0x120, Size: 2}
	MetLocation           = Field{Offset: 0x122, Size: 2}
	Ball                  = Field{Offset: 0x124, Size: 1}
	MetLevel              = Field{Offset: 0x125, Size: 1, Shift: 0, Bits: 7}
	OriginalTrainerGender = Field{Offset: 0x125, Size: 1, Shift: 7, Bits: 1}

	Level = Field{Offset: 0x148, Size: 1}

	Stats = [6]Field{
		{Offset: 0x14A, Size: 2},
		{Offset: 0x14C, Size: 2},
		{Offset: 0x14E, Size: 2},
		{Offset: 0x150, Size: 2},
		{Offset: 0x152, Size: 2},
		{Offset: 0x154, Size: 2},
	}
)

// IV returns the packed location of the i-th individual value inside IVWord.
func IV(i int) Field {
	return Field{
		Offset: IVWord.Offset,
		Size:   IVWord.Size,
		Shift:  uint(i * IVBits),
		Bits:   IVBits,
	}
}

// Mask returns the unshifted bit mask of the field inside its slot.
func (r Field) Mask() uint32 {
	if r.Bits == 0 {
		if r.Size >= 4 {
			return 0xFFFFFFFF
		}
		return 1<<(uint(r.Size)*8) - 1
	}
	return 1<<r.Bits - 1
}

// Extract pulls the field value out of the containing slot word.
func (r Field) Extract(word uint32) uint32 {
	return (word >> r.Shift) & r.Mask()
}

// Insert places value into the containing slot word, truncated to the
// field's width, leaving neighboring bits untouched.
func (r Field) Insert(word uint32, value uint32) uint32 {
	word &^= r.Mask() << r.Shift
	word |= (value & r.Mask()) << r.Shift
	return word
}

// Fits reports whether value is representable within the field's width.
func (r Field) Fits(value uint32) bool {
	return value&^r.Mask() == 0
}
