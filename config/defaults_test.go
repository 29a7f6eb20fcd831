package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkm-forge/pk8"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults_OverridesNamedKeysOnly(t *testing.T) {
	path := writeProfile(t, `
species = 133
nickname = "Eevee"
level = 50
ivs = [31, 0, 31, 0, 31, 0]
moves = [33, 39, 98, 247]
`)

	defaults, err := LoadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, uint16(133), defaults.Species)
	assert.Equal(t, "Eevee", defaults.Nickname)
	assert.Equal(t, uint8(50), defaults.Level)
	assert.Equal(t, [6]uint8{31, 0, 31, 0, 31, 0}, defaults.IVs)
	assert.Equal(t, [4]uint16{33, 39, 98, 247}, defaults.Moves)

	// everything the profile does not name keeps the stock value
	stock := pk8.NewDefaults()
	assert.Equal(t, stock.TID, defaults.TID)
	assert.Equal(t, stock.SID, defaults.SID)
	assert.Equal(t, stock.PID, defaults.PID)
	assert.Equal(t, stock.OriginalTrainerName, defaults.OriginalTrainerName)
	assert.Equal(t, stock.EVs, defaults.EVs)
}

func TestLoadDefaults_BadArrayLength(t *testing.T) {
	path := writeProfile(t, `ivs = [31, 31, 31]`)
	_, err := LoadDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ivs")

	path = writeProfile(t, `moves = [1, 2]`)
	_, err = LoadDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moves")
}

func TestLoadDefaults_MissingFile(t *testing.T) {
	_, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadDefaults_InvalidTOML(t *testing.T) {
	path := writeProfile(t, `species = =`)
	_, err := LoadDefaults(path)
	assert.Error(t, err)
}

func TestApply_EmptyProfileKeepsStock(t *testing.T) {
	defaults := pk8.NewDefaults()
	require.NoError(t, Profile{}.Apply(&defaults))
	assert.Equal(t, pk8.NewDefaults(), defaults)
}
