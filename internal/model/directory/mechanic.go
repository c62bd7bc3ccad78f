package directory

import (
	"fmt"
	"strconv"
	"strings"
)

// Mechanic is one partner workshop returned by a proximity search.
type Mechanic struct {
	Name       string
	Phone      string
	ETAMinutes int
}

// Encode serializes the record into the name|phone|eta scratch form a
// session carries between turns.
func (m Mechanic) Encode() string {
	return fmt.Sprintf("%s|%s|%d", m.Name, m.Phone, m.ETAMinutes)
}

// Decode parses the scratch form produced by Encode.
func Decode(s string) (Mechanic, error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) != 3 {
		return Mechanic{}, fmt.Errorf("malformed mechanic record %q", s)
	}
	eta, err := strconv.Atoi(parts[2])
	if err != nil {
		return Mechanic{}, fmt.Errorf("malformed mechanic eta %q: %w", parts[2], err)
	}
	return Mechanic{Name: parts[0], Phone: parts[1], ETAMinutes: eta}, nil
}
