// Package form turns user-entered text into a partially-specified record.
// It is stateless: both the command line flags and the interactive surface
// feed strings through the same resolution path, with every name already
// resolvable through the injected dex tables.
package form

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"pkm-forge/dex"
	"pkm-forge/pk8"
)

type (
	Entry struct {
		Key   string
		Label string
		Value string
	}
)

const (
	KeyOut         = "out"
	KeySpecies     = "species"
	KeyHeldItem    = "held_item"
	KeyTID         = "tid"
	KeySID         = "sid"
	KeyEXP         = "exp"
	KeyAbility     = "ability"
	KeyPID         = "pid"
	KeyNature      = "nature"
	KeyGender      = "gender"
	KeyForm        = "form"
	KeyMetLevel    = "met_level"
	KeyMetLocation = "met_location"
	KeyEggLocation = "egg_location"
	KeyBall        = "ball"
	KeyNickname    = "nickname"
	KeyOTName      = "ot_name"
	KeyLevel       = "level"
	KeyIVs         = "ivs"
	KeyEVs         = "evs"
	KeyMoves       = "moves"
	KeyLanguage    = "language"
)

// Entries returns the full prompt list prefilled from defaults, with codes
// rendered back to names where the dex knows them.
func Entries(defaults pk8.Defaults, d *dex.Dex) []Entry {
	name := func(code uint16, lookup func(uint16) (string, bool)) string {
		if s, ok := lookup(code); ok {
			return s
		}
		return strconv.Itoa(int(code))
	}
	joinStats := func(values [6]uint8) string {
		parts := lo.Map(values[:], func(v uint8, _ int) string {
			return strconv.Itoa(int(v))
		})
		return strings.Join(parts, ",")
	}
	joinMoves := func(values [4]uint16) string {
		parts := lo.Map(values[:], func(v uint16, _ int) string {
			return name(v, d.MoveName)
		})
		return strings.Join(parts, ",")
	}
	return []Entry{
		{Key: KeyOut, Label: "Output file", Value: "output"},
		{Key: KeySpecies, Label: "Species", Value: name(defaults.Species, d.SpeciesName)},
		{Key: KeyHeldItem, Label: "Held item", Value: name(defaults.HeldItem, d.ItemName)},
		{Key: KeyTID, Label: "TID", Value: strconv.Itoa(int(defaults.TID))},
		{Key: KeySID, Label: "SID", Value: strconv.Itoa(int(defaults.SID))},
		{Key: KeyEXP, Label: "EXP", Value: strconv.Itoa(int(defaults.EXP))},
		{Key: KeyAbility, Label: "Ability", Value: name(defaults.Ability, d.AbilityName)},
		{Key: KeyPID, Label: "PID (hex or int)", Value: "0x" + strconv.FormatUint(uint64(defaults.PID), 16)},
		{Key: KeyNature, Label: "Nature", Value: name(uint16(defaults.Nature), d.NatureName)},
		{Key: KeyGender, Label: "Gender (0=Male, 1=Female, 2=Genderless)", Value: strconv.Itoa(int(defaults.Gender))},
		{Key: KeyForm, Label: "Form", Value: strconv.Itoa(int(defaults.Form))},
		{Key: KeyMetLevel, Label: "Met level", Value: strconv.Itoa(int(defaults.MetLevel))},
		{Key: KeyMetLocation, Label: "Met location", Value: strconv.Itoa(int(defaults.MetLocation))},
		{Key: KeyEggLocation, Label: "Egg location", Value: strconv.Itoa(int(defaults.EggLocation))},
		{Key: KeyBall, Label: "Ball", Value: name(uint16(defaults.Ball), d.ItemName)},
		{Key: KeyNickname, Label: "Nickname", Value: defaults.Nickname},
		{Key: KeyOTName, Label: "Original trainer name", Value: defaults.OriginalTrainerName},
		{Key: KeyLevel, Label: "Level", Value: strconv.Itoa(int(defaults.Level))},
		{Key: KeyIVs, Label: "IVs (6 comma-separated values)", Value: joinStats(defaults.IVs)},
		{Key: KeyEVs, Label: "EVs (6 comma-separated values)", Value: joinStats(defaults.EVs)},
		{Key: KeyMoves, Label: "Moves (4 comma-separated names or numbers)", Value: joinMoves(defaults.Moves)},
		{Key: KeyLanguage, Label: "Language", Value: strconv.Itoa(int(defaults.Language))},
	}
}

// Resolve parses the entry list into the output path and a partial record.
// Empty values stay unset so the encoder's defaults apply.
func Resolve(entries []Entry, d *dex.Dex) (string, pk8.Partial, error) {
	out := ""
	partial := pk8.Partial{}
	for _, entry := range entries {
		if entry.Value == "" {
			continue
		}
		err := error(nil)
		switch entry.Key {
		case KeyOut:
			out = entry.Value
		case KeySpecies:
			partial.Species, err = resolveUint16(entry.Value, d.SpeciesCode)
		case KeyHeldItem:
			partial.HeldItem, err = resolveUint16(entry.Value, d.ItemCode)
		case KeyTID:
			partial.TID, err = parseUint16(entry.Value)
		case KeySID:
			partial.SID, err = parseUint16(entry.Value)
		case KeyEXP:
			partial.EXP, err = parseUint32(entry.Value)
		case KeyAbility:
			partial.Ability, err = resolveUint16(entry.Value, d.AbilityCode)
		case KeyPID:
			partial.PID, err = parsePID(entry.Value)
		case KeyNature:
			partial.Nature, err = resolveUint8(entry.Value, d.NatureCode)
		case KeyGender:
			partial.Gender, err = parseUint8(entry.Value)
		case KeyForm:
			partial.Form, err = parseUint8(entry.Value)
		case KeyMetLevel:
			partial.MetLevel, err = parseUint8(entry.Value)
		case KeyMetLocation:
			partial.MetLocation, err = parseUint16(entry.Value)
		case KeyEggLocation:
			partial.EggLocation, err = parseUint16(entry.Value)
		case KeyBall:
			partial.Ball, err = resolveUint8(entry.Value, d.ItemCode)
		case KeyNickname:
			value := entry.Value
			partial.Nickname = &value
		case KeyOTName:
			value := entry.Value
			partial.OriginalTrainerName = &value
		case KeyLevel:
			partial.Level, err = parseUint8(entry.Value)
		case KeyIVs:
			partial.IVs, err = ParseStatList(entry.Value)
		case KeyEVs:
			partial.EVs, err = ParseStatList(entry.Value)
		case KeyMoves:
			partial.Moves, err = ParseMoveList(entry.Value, d)
		case KeyLanguage:
			partial.Language, err = parseUint16(entry.Value)
		default:
			err = errors.Errorf(`unknown form key "%s"`, entry.Key)
		}
		if err != nil {
			return "", pk8.Partial{}, errors.Wrapf(err, `Resolve error on field "%s"`, entry.Key)
		}
	}
	return out, partial, nil
}
