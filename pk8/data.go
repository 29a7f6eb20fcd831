package pk8

type (
	// Record is the full structured view of one 344-byte stored creature.
	// The decoder populates every field; the encoder writes only a subset and
	// leaves the rest at their zero state (battle stats, PP values, the
	// handling-trainer name, stat nature, ability number, the gigantamax flag
	// and the original-trainer gender are one-way inspection fields).
	//
	// All six-element arrays follow the stat order HP, ATK, DEF, SPE, SPA, SPD.
	Record struct {
		EncryptionConstant uint32 `json:"encryption_constant"`
		Sanity             uint16 `json:"sanity"`
		Checksum           uint16 `json:"checksum"`

		Species  uint16 `json:"species"`
		HeldItem uint16 `json:"held_item"`
		TID      uint16 `json:"tid"`
		SID      uint16 `json:"sid"`
		// ID32 is a read-only view over the TID and SID bytes; the encoder
		// never writes it directly.
		ID32 uint32 `json:"id32"`

		EXP           uint32 `json:"exp"`
		Ability       uint16 `json:"ability"`
		AbilityNumber uint8  `json:"ability_number"`
		CanGigantamax bool   `json:"can_gigantamax"`

		PID        uint32 `json:"pid"`
		Nature     uint8  `json:"nature"`
		StatNature uint8  `json:"stat_nature"`
		Gender     uint8  `json:"gender"`
		Form       uint8  `json:"form"`

		EVs [6]uint8 `json:"evs"`
		IVs [6]uint8 `json:"ivs"`

		IsEgg       bool `json:"is_egg"`
		IsNicknamed bool `json:"is_nicknamed"`

		Moves   [4]uint16 `json:"moves"`
		MovePPs [4]uint8  `json:"move_pps"`

		Nickname            string `json:"nickname"`
		OriginalTrainerName string `json:"original_trainer_name"`
		HandlingTrainerName string `json:"handling_trainer_name"`

		EggLocation           uint16 `json:"egg_location"`
		MetLocation           uint16 `json:"met_location"`
		Ball                  uint8  `json:"ball"`
		MetLevel              uint8  `json:"met_level"`
		OriginalTrainerGender uint8  `json:"original_trainer_gender"`

		Language uint16 `json:"language"`

		Level uint8     `json:"level"`
		Stats [6]uint16 `json:"stats"`
	}

	// Partial is a caller-specified record where every field is optional;
	// nil fields are filled from Defaults before encoding.
	Partial struct {
		Species             *uint16
		HeldItem            *uint16
		TID                 *uint16
		SID                 *uint16
		EXP                 *uint32
		Ability             *uint16
		PID                 *uint32
		Nature              *uint8
		Gender              *uint8
		Form                *uint8
		MetLevel            *uint8
		MetLocation         *uint16
		EggLocation         *uint16
		Ball                *uint8
		Nickname            *string
		OriginalTrainerName *string
		Level               *uint8
		IVs                 *[6]uint8
		EVs                 *[6]uint8
		Moves               *[4]uint16
		Language            *uint16
	}

	// Defaults enumerates the fallback value of every encoder-written field.
	Defaults struct {
		Species             uint16
		HeldItem            uint16
		TID                 uint16
		SID                 uint16
		EXP                 uint32
		Ability             uint16
		PID                 uint32
		Nature              uint8
		Gender              uint8
		Form                uint8
		MetLevel            uint8
		MetLocation         uint16
		EggLocation         uint16
		Ball                uint8
		Nickname            string
		OriginalTrainerName string
		Level               uint8
		IVs                 [6]uint8
		EVs                 [6]uint8
		Moves               [4]uint16
		Language            uint16
	}
)

const (
	GenderMale       = 0
	GenderFemale     = 1
	GenderGenderless = 2
)

// NewDefaults returns the stock defaults: a level 5 Modest Pikachu in a
// Poke Ball with perfect IVs.
func NewDefaults() Defaults {
	return Defaults{
		Species:             25,
		HeldItem:            0,
		TID:                 12345,
		SID:                 54321,
		EXP:                 1000,
		Ability:             0,
		PID:                 0x12345678,
		Nature:              15,
		Gender:              GenderMale,
		Form:                0,
		MetLevel:            5,
		MetLocation:         30,
		EggLocation:         0,
		Ball:                4,
		Nickname:            "Pikachu",
		OriginalTrainerName: "Ash",
		Level:               5,
		IVs:                 [6]uint8{31, 31, 31, 31, 31, 31},
		EVs:                 [6]uint8{0, 0, 0, 0, 0, 0},
		Moves:               [4]uint16{5, 5, 5, 5},
		Language:            5,
	}
}
