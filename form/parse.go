package form

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pkm-forge/dex"
)

func parseUint8(s string) (*uint8, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return nil, errors.Wrapf(err, `parse error on "%s"`, s)
	}
	v := uint8(value)
	return &v, nil
}

func parseUint16(s string) (*uint16, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return nil, errors.Wrapf(err, `parse error on "%s"`, s)
	}
	v := uint16(value)
	return &v, nil
}

func parseUint32(s string) (*uint32, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, `parse error on "%s"`, s)
	}
	v := uint32(value)
	return &v, nil
}

// ParseNumber accepts both the 0x-prefixed hex form and plain decimal, the
// way the original input surface did for PIDs and memory addresses.
func ParseNumber(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
		base = 16
	}
	value, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, errors.Wrapf(err, `parse error on "%s"`, s)
	}
	return value, nil
}

func parsePID(s string) (*uint32, error) {
	value, err := ParseNumber(s, 32)
	if err != nil {
		return nil, err
	}
	v := uint32(value)
	return &v, nil
}

// resolveUint16 resolves s as a table name first, then as a plain number.
func resolveUint16(s string, lookup func(string) (uint16, bool)) (*uint16, error) {
	s = strings.TrimSpace(s)
	if code, ok := lookup(s); ok {
		return &code, nil
	}
	value, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, errors.Errorf(`"%s" is neither a known name nor a number`, s)
	}
	v := uint16(value)
	return &v, nil
}

func resolveUint8(s string, lookup func(string) (uint16, bool)) (*uint8, error) {
	code, err := resolveUint16(s, lookup)
	if err != nil {
		return nil, err
	}
	v := uint8(*code)
	return &v, nil
}

// ParseStatList parses six comma-separated byte values in the stat order
// HP, ATK, DEF, SPE, SPA, SPD.
func ParseStatList(s string) (*[6]uint8, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, errors.Errorf(`expected 6 comma-separated values, got %d in "%s"`, len(parts), s)
	}
	values := [6]uint8{}
	for i, part := range parts {
		value, err := parseUint8(part)
		if err != nil {
			return nil, err
		}
		values[i] = *value
	}
	return &values, nil
}

// ParseMoveList parses four comma-separated move names or numbers.
func ParseMoveList(s string, d *dex.Dex) (*[4]uint16, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, errors.Errorf(`expected 4 comma-separated moves, got %d in "%s"`, len(parts), s)
	}
	values := [4]uint16{}
	for i, part := range parts {
		value, err := resolveUint16(part, d.MoveCode)
		if err != nil {
			return nil, err
		}
		values[i] = *value
	}
	return &values, nil
}
