package dex

type (
	// Dex is the set of name/code tables the tooling resolves user input
	// against. The tables are opaque data injected at startup; the codec
	// itself never depends on their contents.
	//
	// The species table maps name to code while the rest map code to name,
	// matching the shape of the upstream configuration source.
	Dex struct {
		Species   map[string]uint16 `json:"species"`
		Natures   map[uint16]string `json:"natures"`
		Abilities map[uint16]string `json:"abilities"`
		Moves     map[uint16]string `json:"moves"`
		Items     map[uint16]string `json:"items"`

		speciesNames map[uint16]string
		natureCodes  map[string]uint16
		abilityCodes map[string]uint16
		moveCodes    map[string]uint16
		itemCodes    map[string]uint16
	}
	Ball struct {
		Code uint16
		Name string
	}
)
