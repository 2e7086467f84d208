// Package confirmation draws the six digit codes mailed to new accounts.
package confirmation

import (
	"math/rand/v2"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
)

// Source is the random number source behind a Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type Generator interface {
	Generate() int
}

type generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src uses the
// process-wide math/rand/v2 source, which is safe for concurrent use.
func NewGenerator(src Source) Generator {
	if src == nil {
		src = globalSource{}
	}
	return &generator{src: src}
}

// Generate returns a code uniformly drawn from [100000, 999999].
// Codes are not checked for uniqueness.
func (g *generator) Generate() int {
	span := constant.ConfirmationCodeMax - constant.ConfirmationCodeMin + 1
	return constant.ConfirmationCodeMin + g.src.IntN(span)
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}
