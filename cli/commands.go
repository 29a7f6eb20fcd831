package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"pkm-forge/config"
	"pkm-forge/dex"
	"pkm-forge/form"
	"pkm-forge/inject"
	"pkm-forge/pk8"
	"pkm-forge/pk8/playout"
)

func (r CreateCmd) entries() []form.Entry {
	entries := []form.Entry{}
	add := func(key string, value *string) {
		if value != nil {
			entries = append(entries, form.Entry{Key: key, Value: *value})
		}
	}
	add(form.KeySpecies, r.Species)
	add(form.KeyHeldItem, r.Item)
	add(form.KeyTID, r.TID)
	add(form.KeySID, r.SID)
	add(form.KeyEXP, r.EXP)
	add(form.KeyAbility, r.Ability)
	add(form.KeyPID, r.PID)
	add(form.KeyNature, r.Nature)
	add(form.KeyGender, r.Gender)
	add(form.KeyForm, r.Form)
	add(form.KeyMetLevel, r.MetLevel)
	add(form.KeyMetLocation, r.MetLocation)
	add(form.KeyEggLocation, r.EggLocation)
	add(form.KeyBall, r.Ball)
	add(form.KeyNickname, r.Nickname)
	add(form.KeyOTName, r.OT)
	add(form.KeyLevel, r.Level)
	add(form.KeyIVs, r.IVs)
	add(form.KeyEVs, r.EVs)
	add(form.KeyMoves, r.Moves)
	add(form.KeyLanguage, r.Language)
	return entries
}

func runCreate(cmd CreateCmd, d *dex.Dex, log zerolog.Logger) error {
	defaults := pk8.NewDefaults()
	if cmd.Profile != "" {
		loaded, err := config.LoadDefaults(cmd.Profile)
		if err != nil {
			return err
		}
		defaults = loaded
	}

	_, partial, err := form.Resolve(cmd.entries(), d)
	if err != nil {
		return err
	}

	record := pk8.Resolve(partial, defaults)
	bs := []byte(nil)
	if cmd.Strict {
		bs, err = pk8.EncodeRecordStrict(record)
	} else {
		bs, err = pk8.EncodeRecord(record)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(cmd.Out, bs, 0644); err != nil {
		return errors.Wrapf(err, `runCreate error writing "%s"`, cmd.Out)
	}
	log.Info().Str("path", cmd.Out).Int("bytes", len(bs)).Msg("record created")
	return nil
}

func runRead(cmd ReadCmd, d *dex.Dex) error {
	bs, err := os.ReadFile(cmd.Path)
	if err != nil {
		return errors.Wrapf(err, `runRead error reading "%s"`, cmd.Path)
	}
	record, err := pk8.Decode(bs)
	if err != nil {
		return err
	}

	if cmd.JSON {
		lhm := RecordListing(*record)
		outputBytes, err := json.MarshalIndent(lhm, "", "  ")
		if err != nil {
			return errors.Wrap(err, "runRead error marshalling listing")
		}
		fmt.Println(string(outputBytes))
		return nil
	}
	PrintListing(os.Stdout, *record, d)
	return nil
}

func runVerify(cmd VerifyCmd, log zerolog.Logger) error {
	bs, err := os.ReadFile(cmd.Path)
	if err != nil {
		return errors.Wrapf(err, `runVerify error reading "%s"`, cmd.Path)
	}
	ok, err := pk8.VerifyChecksum(bs)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf(
			"checksum mismatch: stored 0x%04X, computed 0x%04X",
			record16(bs), pk8.ComputeChecksum(bs),
		)
	}
	log.Info().Str("path", cmd.Path).Msg("checksum intact")
	return nil
}

func record16(bs []byte) uint16 {
	return uint16(bs[playout.Checksum.Offset]) | uint16(bs[playout.Checksum.Offset+1])<<8
}

func runInject(cmd InjectCmd, log zerolog.Logger) error {
	bs, err := os.ReadFile(cmd.Path)
	if err != nil {
		return errors.Wrapf(err, `runInject error reading "%s"`, cmd.Path)
	}
	if len(bs) < playout.RecordSize {
		return pk8.ErrMalformedInput{Length: len(bs)}
	}

	address, err := form.ParseNumber(cmd.Address, 32)
	if err != nil {
		return errors.Wrapf(err, `runInject error parsing address "%s"`, cmd.Address)
	}

	sink, err := inject.Dial(fmt.Sprintf("%s:%d", cmd.Host, cmd.Port), log)
	if err != nil {
		return err
	}
	defer sink.Close()

	return sink.Poke(uint32(address), bs[:playout.RecordSize])
}
