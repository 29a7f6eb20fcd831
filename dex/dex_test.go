package dex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookups(t *testing.T) {
	d := Default()

	code, ok := d.SpeciesCode("Pikachu")
	require.True(t, ok)
	assert.Equal(t, uint16(25), code)

	name, ok := d.SpeciesName(25)
	require.True(t, ok)
	assert.Equal(t, "Pikachu", name)

	code, ok = d.NatureCode("Modest")
	require.True(t, ok)
	assert.Equal(t, uint16(15), code)

	name, ok = d.NatureName(15)
	require.True(t, ok)
	assert.Equal(t, "Modest", name)

	code, ok = d.MoveCode("Mega Punch")
	require.True(t, ok)
	assert.Equal(t, uint16(5), code)

	code, ok = d.AbilityCode("Static")
	require.True(t, ok)
	assert.Equal(t, uint16(9), code)

	name, ok = d.ItemName(4)
	require.True(t, ok)
	assert.Equal(t, "Poke Ball", name)

	_, ok = d.SpeciesCode("Missingno")
	assert.False(t, ok)
}

func TestDefault_Balls(t *testing.T) {
	d := Default()
	balls := d.Balls()
	require.NotEmpty(t, balls)

	// sorted by code, Ball-named items only
	for i := 1; i < len(balls); i++ {
		assert.Less(t, balls[i-1].Code, balls[i].Code)
	}
	assert.Equal(t, Ball{Code: 1, Name: "Master Ball"}, balls[0])
	for _, ball := range balls {
		assert.Contains(t, ball.Name, "Ball")
	}
}

func TestFromJSON_CustomTable(t *testing.T) {
	d, err := FromJSON([]byte(`{
		"species": {"Rowlet": 722},
		"natures": {"3": "Adamant"},
		"abilities": {},
		"moves": {},
		"items": {}
	}`))
	require.NoError(t, err)

	code, ok := d.SpeciesCode("Rowlet")
	require.True(t, ok)
	assert.Equal(t, uint16(722), code)

	name, ok := d.NatureName(3)
	require.True(t, ok)
	assert.Equal(t, "Adamant", name)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, os.WriteFile(path, defaultTableBytes, 0644))

	d, err := Load(path)
	require.NoError(t, err)
	_, ok := d.SpeciesCode("Pikachu")
	assert.True(t, ok)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
