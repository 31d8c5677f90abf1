package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/devshowcase/api/internal/core/ports"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// sixDigitCodeGenerator draws a uniform 6-digit decimal code from the
// process CSPRNG. Codes are not required to be distinct; the challenge
// expiry window is the security boundary.
type sixDigitCodeGenerator struct{}

func NewCodeGenerator() ports.CodeGenerator {
	return &sixDigitCodeGenerator{}
}

func (g *sixDigitCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
