package confirmation_test

import (
	"math/rand/v2"
	"testing"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/confirmation"
	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	values []int
	calls  int
}

func (f *fixedSource) IntN(n int) int {
	v := f.values[f.calls%len(f.values)]
	f.calls++
	if v >= n {
		return n - 1
	}
	return v
}

func TestGenerator_Generate_Bounds(t *testing.T) {
	tests := []struct {
		name string
		draw int
		want int
	}{
		{name: "lowest draw", draw: 0, want: constant.ConfirmationCodeMin},
		{name: "highest draw", draw: 899999, want: constant.ConfirmationCodeMax},
		{name: "middle draw", draw: 23456, want: 123456},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := confirmation.NewGenerator(&fixedSource{values: []int{tt.draw}})
			assert.Equal(t, tt.want, gen.Generate())
		})
	}
}

func TestGenerator_Generate_Collision(t *testing.T) {
	src := &fixedSource{values: []int{42, 42}}
	gen := confirmation.NewGenerator(src)

	first := gen.Generate()
	second := gen.Generate()

	assert.Equal(t, first, second, "generator does not enforce uniqueness")
	assert.Equal(t, 2, src.calls)
}

func TestGenerator_Generate_Range(t *testing.T) {
	gens := []confirmation.Generator{
		confirmation.NewGenerator(nil),
		confirmation.NewGenerator(rand.New(rand.NewPCG(1, 2))),
	}
	for _, gen := range gens {
		for i := 0; i < 10000; i++ {
			code := gen.Generate()
			if code < constant.ConfirmationCodeMin || code > constant.ConfirmationCodeMax {
				t.Fatalf("code %d out of range", code)
			}
		}
	}
}
