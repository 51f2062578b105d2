// Package gameid generates hand identifiers: UUIDv7 values encoded as 26
// character lower-case Crockford base32 strings (the TypeID suffix form).
// IDs sort lexically in creation order.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lower case.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the length of an encoded id.
const Length = 26

// Generator creates ids, optionally from a fixed source of randomness.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading random bits from r. A nil reader
// uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new id with crypto/rand randomness.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new id. It panics if the random source fails, which
// for crypto/rand does not happen in practice.
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("gameid: generate uuid: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are preceded by
// two zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	var out [Length]byte
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			v <<= 1
			if bit := i*5 + b - 2; bit >= 0 && id[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

// Decode parses an encoded id back into its UUID.
func Decode(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if len(s) != Length {
		return id, fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return id, fmt.Errorf("game ID first character must be 0-7, got %c", s[0])
	}
	for i := 0; i < Length; i++ {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return id, fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
		for b := 0; b < 5; b++ {
			bit := i*5 + b - 2
			if bit < 0 || v&(0x10>>b) == 0 {
				continue
			}
			id[bit/8] |= 0x80 >> (bit % 8)
		}
	}
	return id, nil
}

// Validate checks that id is a well-formed encoded UUIDv7.
func Validate(id string) error {
	u, err := Decode(id)
	if err != nil {
		return err
	}
	if u.Version() != 7 {
		return fmt.Errorf("game ID encodes a version %d UUID, want 7", u.Version())
	}
	return nil
}
