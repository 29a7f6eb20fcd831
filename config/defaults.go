// Package config loads encoder defaults profiles from TOML files. A profile
// overrides only the keys it names; everything else keeps the stock value.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"pkm-forge/pk8"
)

type (
	Profile struct {
		Species             *uint16 `toml:"species"`
		HeldItem            *uint16 `toml:"held_item"`
		TID                 *uint16 `toml:"tid"`
		SID                 *uint16 `toml:"sid"`
		EXP                 *uint32 `toml:"exp"`
		Ability             *uint16 `toml:"ability"`
		PID                 *uint32 `toml:"pid"`
		Nature              *uint8  `toml:"nature"`
		Gender              *uint8  `toml:"gender"`
		Form                *uint8  `toml:"form"`
		MetLevel            *uint8  `toml:"met_level"`
		MetLocation         *uint16 `toml:"met_location"`
		EggLocation         *uint16 `toml:"egg_location"`
		Ball                *uint8  `toml:"ball"`
		Nickname            *string `toml:"nickname"`
		OriginalTrainerName *string `toml:"ot_name"`
		Level               *uint8  `toml:"level"`
		IVs                 []uint8 `toml:"ivs"`
		EVs                 []uint8 `toml:"evs"`
		Moves               []uint16 `toml:"moves"`
		Language            *uint16 `toml:"language"`
	}
)

// LoadDefaults reads a profile and applies it on top of the stock defaults.
func LoadDefaults(path string) (pk8.Defaults, error) {
	defaults := pk8.NewDefaults()
	bs, err := os.ReadFile(path)
	if err != nil {
		return defaults, errors.Wrapf(err, `LoadDefaults error reading "%s"`, path)
	}
	profile := Profile{}
	if err := toml.Unmarshal(bs, &profile); err != nil {
		return defaults, errors.Wrapf(err, `LoadDefaults error parsing "%s"`, path)
	}
	if err := profile.Apply(&defaults); err != nil {
		return defaults, errors.Wrapf(err, `LoadDefaults error applying "%s"`, path)
	}
	return defaults, nil
}

// Apply overrides the named keys of defaults in place.
func (r Profile) Apply(defaults *pk8.Defaults) error {
	setUint8 := func(dst *uint8, src *uint8) {
		if src != nil {
			*dst = *src
		}
	}
	setUint16 := func(dst *uint16, src *uint16) {
		if src != nil {
			*dst = *src
		}
	}
	setUint32 := func(dst *uint32, src *uint32) {
		if src != nil {
			*dst = *src
		}
	}

	setUint16(&defaults.Species, r.Species)
	setUint16(&defaults.HeldItem, r.HeldItem)
	setUint16(&defaults.TID, r.TID)
	setUint16(&defaults.SID, r.SID)
	setUint32(&defaults.EXP, r.EXP)
	setUint16(&defaults.Ability, r.Ability)
	setUint32(&defaults.PID, r.PID)
	setUint8(&defaults.Nature, r.Nature)
	setUint8(&defaults.Gender, r.Gender)
	setUint8(&defaults.Form, r.Form)
	setUint8(&defaults.MetLevel, r.MetLevel)
	setUint16(&defaults.MetLocation, r.MetLocation)
	setUint16(&defaults.EggLocation, r.EggLocation)
	setUint8(&defaults.Ball, r.Ball)
	if r.Nickname != nil {
		defaults.Nickname = *r.Nickname
	}
	if r.OriginalTrainerName != nil {
		defaults.OriginalTrainerName = *r.OriginalTrainerName
	}
	setUint8(&defaults.Level, r.Level)
	setUint16(&defaults.Language, r.Language)

	if r.IVs != nil {
		if len(r.IVs) != 6 {
			return errors.Errorf(`"ivs" needs 6 values, got %d`, len(r.IVs))
		}
		copy(defaults.IVs[:], r.IVs)
	}
	if r.EVs != nil {
		if len(r.EVs) != 6 {
			return errors.Errorf(`"evs" needs 6 values, got %d`, len(r.EVs))
		}
		copy(defaults.EVs[:], r.EVs)
	}
	if r.Moves != nil {
		if len(r.Moves) != 4 {
			return errors.Errorf(`"moves" needs 4 values, got %d`, len(r.Moves))
		}
		copy(defaults.Moves[:], r.Moves)
	}
	return nil
}
