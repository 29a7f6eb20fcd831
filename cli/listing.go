package cli

import (
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"

	"pkm-forge/dex"
	"pkm-forge/pk8"
)

// RecordListing lays every decoded field out in a fixed, human-oriented
// order. The ordered map keeps that order through JSON marshalling.
func RecordListing(record pk8.Record) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("EncryptionConstant", record.EncryptionConstant)
	lhm.Set("Sanity", record.Sanity)
	lhm.Set("Checksum", record.Checksum)
	lhm.Set("Species", record.Species)
	lhm.Set("HeldItem", record.HeldItem)
	lhm.Set("TID", record.TID)
	lhm.Set("SID", record.SID)
	lhm.Set("ID32", record.ID32)
	lhm.Set("EXP", record.EXP)
	lhm.Set("Ability", record.Ability)
	lhm.Set("AbilityNumber", record.AbilityNumber)
	lhm.Set("CanGigantamax", record.CanGigantamax)
	lhm.Set("PID", record.PID)
	lhm.Set("Nature", record.Nature)
	lhm.Set("StatNature", record.StatNature)
	lhm.Set("Gender", record.Gender)
	lhm.Set("Form", record.Form)

	statKeys := [6]string{"HP", "ATK", "DEF", "SPE", "SPA", "SPD"}
	for i, key := range statKeys {
		lhm.Set("EV_"+key, record.EVs[i])
	}
	for i, key := range statKeys {
		lhm.Set("IV_"+key, record.IVs[i])
	}
	lhm.Set("IsEgg", record.IsEgg)
	lhm.Set("IsNicknamed", record.IsNicknamed)

	for i, move := range record.Moves {
		lhm.Set(fmt.Sprintf("Move%d", i+1), move)
	}
	for i, pp := range record.MovePPs {
		lhm.Set(fmt.Sprintf("Move%d_PP", i+1), pp)
	}

	lhm.Set("Nickname", record.Nickname)
	lhm.Set("OriginalTrainerName", record.OriginalTrainerName)
	lhm.Set("HandlingTrainerName", record.HandlingTrainerName)
	lhm.Set("OriginalTrainerGender", record.OriginalTrainerGender)
	lhm.Set("MetLevel", record.MetLevel)
	lhm.Set("EggLocation", record.EggLocation)
	lhm.Set("MetLocation", record.MetLocation)
	lhm.Set("Ball", record.Ball)
	lhm.Set("Language", record.Language)

	lhm.Set("Level", record.Level)
	lhm.Set("Stat_HPMax", record.Stats[0])
	lhm.Set("Stat_ATK", record.Stats[1])
	lhm.Set("Stat_DEF", record.Stats[2])
	lhm.Set("Stat_SPE", record.Stats[3])
	lhm.Set("Stat_SPA", record.Stats[4])
	lhm.Set("Stat_SPD", record.Stats[5])
	return lhm
}

// PrintListing writes one "key: value" line per field, annotated with the
// dex name where one is known.
func PrintListing(w io.Writer, record pk8.Record, d *dex.Dex) {
	lhm := RecordListing(record)
	for _, key := range lhm.Keys() {
		value, _ := lhm.Get(key)
		line := fmt.Sprintf("%s: %v", key, value)
		if name, ok := annotation(key, record, d); ok {
			line += fmt.Sprintf(" (%s)", name)
		}
		fmt.Fprintln(w, line)
	}
}

func annotation(key string, record pk8.Record, d *dex.Dex) (string, bool) {
	switch key {
	case "Species":
		return d.SpeciesName(record.Species)
	case "HeldItem":
		return d.ItemName(record.HeldItem)
	case "Ability":
		return d.AbilityName(record.Ability)
	case "Nature":
		return d.NatureName(uint16(record.Nature))
	case "StatNature":
		return d.NatureName(uint16(record.StatNature))
	case "Ball":
		return d.ItemName(uint16(record.Ball))
	case "Move1":
		return d.MoveName(record.Moves[0])
	case "Move2":
		return d.MoveName(record.Moves[1])
	case "Move3":
		return d.MoveName(record.Moves[2])
	case "Move4":
		return d.MoveName(record.Moves[3])
	}
	return "", false
}
