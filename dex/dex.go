package dex

import (
	_ "embed"
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

//go:embed dex.json
var defaultTableBytes []byte

func FromJSON(bs []byte) (*Dex, error) {
	d := Dex{}
	if err := json.Unmarshal(bs, &d); err != nil {
		return nil, errors.Wrap(err, "FromJSON error")
	}
	d.buildIndexes()
	return &d, nil
}

func Load(path string) (*Dex, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `Load error reading "%s"`, path)
	}
	d, err := FromJSON(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `Load error parsing "%s"`, path)
	}
	return d, nil
}

// Default returns the table set bundled with the binary. The embedded file
// is covered by tests, so a parse failure here is a build defect.
func Default() *Dex {
	d, err := FromJSON(defaultTableBytes)
	if err != nil {
		panic(err)
	}
	return d
}

func (r *Dex) buildIndexes() {
	r.speciesNames = lo.Invert(r.Species)
	r.natureCodes = lo.Invert(r.Natures)
	r.abilityCodes = lo.Invert(r.Abilities)
	r.moveCodes = lo.Invert(r.Moves)
	r.itemCodes = lo.Invert(r.Items)
}

func (r *Dex) SpeciesCode(name string) (uint16, bool) {
	code, ok := r.Species[name]
	return code, ok
}

func (r *Dex) SpeciesName(code uint16) (string, bool) {
	name, ok := r.speciesNames[code]
	return name, ok
}

func (r *Dex) NatureCode(name string) (uint16, bool) {
	code, ok := r.natureCodes[name]
	return code, ok
}

func (r *Dex) NatureName(code uint16) (string, bool) {
	name, ok := r.Natures[code]
	return name, ok
}

func (r *Dex) AbilityCode(name string) (uint16, bool) {
	code, ok := r.abilityCodes[name]
	return code, ok
}

func (r *Dex) AbilityName(code uint16) (string, bool) {
	name, ok := r.Abilities[code]
	return name, ok
}

func (r *Dex) MoveCode(name string) (uint16, bool) {
	code, ok := r.moveCodes[name]
	return code, ok
}

func (r *Dex) MoveName(code uint16) (string, bool) {
	name, ok := r.Moves[code]
	return name, ok
}

func (r *Dex) ItemCode(name string) (uint16, bool) {
	code, ok := r.itemCodes[name]
	return code, ok
}

func (r *Dex) ItemName(code uint16) (string, bool) {
	name, ok := r.Items[code]
	return name, ok
}

// Balls lists every item whose name contains "Ball", sorted by code.
func (r *Dex) Balls() []Ball {
	balls := make([]Ball, 0)
	for code, name := range r.Items {
		if strings.Contains(name, "Ball") {
			balls = append(balls, Ball{Code: code, Name: name})
		}
	}
	sort.Slice(balls, func(i, j int) bool { return balls[i].Code < balls[j].Code })
	return balls
}
