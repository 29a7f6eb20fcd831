package inject

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	assert.Equal(t,
		"poke 0x042DA8E8 0xdeadbeef",
		Command(DefaultAddress, []byte{0xDE, 0xAD, 0xBE, 0xEF}),
	)
}

func TestCommand_FullRecordPayload(t *testing.T) {
	payload := make([]byte, 344)
	content := Command(DefaultAddress, payload)

	require.True(t, strings.HasPrefix(content, "poke 0x042DA8E8 0x"))
	encoded := strings.TrimPrefix(content, "poke 0x042DA8E8 0x")
	assert.Len(t, encoded, 344*2)
	decoded, err := hex.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestSend_AppendsCRLF(t *testing.T) {
	buffer := bytes.Buffer{}
	require.NoError(t, Send(&buffer, "poke 0x00000000 0x00"))
	assert.Equal(t, "poke 0x00000000 0x00\r\n", buffer.String())
}
