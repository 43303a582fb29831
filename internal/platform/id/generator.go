package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque identity tokens, e.g. fallback article ids.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Func adapts a plain function, mostly for deterministic ids in tests.
type Func func() (string, error)

func (f Func) NewID() (string, error) {
	return f()
}
