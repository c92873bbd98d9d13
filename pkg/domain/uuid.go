package domain

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-(8|9|a|b)[0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// Generator returns a fresh identity string. Swap it in tests for a
// deterministic source.
type Generator func() string

// RandomGenerator produces random v4 UUIDs.
func RandomGenerator() string {
	return uuid.NewString()
}

// Uuid is a value object holding a validated v4 UUID string.
type Uuid struct {
	value string
}

// NewUuid generates a random v4 Uuid.
func NewUuid() (Uuid, error) {
	return NewUuidWith(RandomGenerator)
}

// NewUuidWith generates a Uuid from gen. The generated value goes through the
// same validation as ParseUuid, so a misbehaving generator yields ErrInvalidUuid.
func NewUuidWith(gen Generator) (Uuid, error) {
	if gen == nil {
		gen = RandomGenerator
	}
	id, err := ParseUuid(gen())
	if err != nil {
		return Uuid{}, fmt.Errorf("generate uuid: %w", err)
	}
	return id, nil
}

// ParseUuid validates s as a v4 UUID. Returns ErrInvalidUuid on mismatch.
func ParseUuid(s string) (Uuid, error) {
	if !uuidPattern.MatchString(s) {
		return Uuid{}, ErrInvalidUuid
	}
	return Uuid{value: s}, nil
}

// MustParseUuid is like ParseUuid but panics on invalid input.
func MustParseUuid(s string) Uuid {
	id, err := ParseUuid(s)
	if err != nil {
		panic(fmt.Sprintf("domain: %q: %v", s, err))
	}
	return id
}

func (u Uuid) String() string { return u.value }
func (u Uuid) IsZero() bool   { return u.value == "" }

// Equals reports structural equality with another value object.
func (u Uuid) Equals(other ValueObject) bool {
	return StructurallyEqual(u, other)
}

// MarshalText encodes the Uuid as its canonical string.
func (u Uuid) MarshalText() ([]byte, error) {
	return []byte(u.value), nil
}

// UnmarshalText parses and validates text into u.
func (u *Uuid) UnmarshalText(text []byte) error {
	id, err := ParseUuid(string(text))
	if err != nil {
		return err
	}
	*u = id
	return nil
}
