package services

import (
	"strconv"
	"testing"
)

func TestGenerate_SixDecimalDigits(t *testing.T) {
	g := NewCodeGenerator()

	for i := 0; i < 200; i++ {
		code, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 characters", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside the 6-digit range", n)
		}
	}
}
