// Package inject delivers an encoded record to a remote process over its
// text command protocol: a single "poke <address> 0x<hex>" line terminated
// by CRLF on a persistent TCP connection.
package inject

import (
	"encoding/hex"
	"fmt"
	"io"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DefaultAddress is the injection point inside the remote process.
	DefaultAddress = uint32(0x042DA8E8)
	DefaultPort    = 5000
)

type (
	Sink struct {
		conn net.Conn
		log  zerolog.Logger
	}
)

// Command renders one poke line with the payload hex-encoded.
func Command(address uint32, payload []byte) string {
	return fmt.Sprintf("poke 0x%08X 0x%s", address, hex.EncodeToString(payload))
}

// Send writes a single command terminated by CRLF.
func Send(w io.Writer, content string) error {
	if _, err := io.WriteString(w, content+"\r\n"); err != nil {
		return errors.Wrap(err, "Send error")
	}
	return nil
}

func Dial(addr string, log zerolog.Logger) (*Sink, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, `Dial error connecting to "%s"`, addr)
	}
	log.Info().Str("addr", addr).Msg("connected to remote process")
	return &Sink{conn: conn, log: log}, nil
}

// Poke sends payload to the target memory address.
func (r *Sink) Poke(address uint32, payload []byte) error {
	if err := Send(r.conn, Command(address, payload)); err != nil {
		return err
	}
	r.log.Info().
		Str("address", fmt.Sprintf("0x%08X", address)).
		Int("bytes", len(payload)).
		Msg("payload poked")
	return nil
}

func (r *Sink) Close() error {
	return r.conn.Close()
}
