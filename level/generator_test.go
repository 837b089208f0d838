package level

import (
	"errors"
	"testing"
)

func TestGeneratorByName(t *testing.T) {
	if g, err := GeneratorByName("", 1); err != nil {
		t.Errorf("Expected default generator, got error %v", err)
	} else if _, ok := g.(FlatGenerator); !ok {
		t.Errorf("Expected FlatGenerator for empty name, got %T", g)
	}

	if g, err := GeneratorByName("perlin", 42); err != nil {
		t.Errorf("Expected perlin generator, got error %v", err)
	} else if p, ok := g.(PerlinGenerator); !ok || p.Seed != 42 {
		t.Errorf("Expected PerlinGenerator with seed 42, got %#v", g)
	}

	if _, err := GeneratorByName("caves", 1); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("Expected ErrUnknownGenerator, got %v", err)
	}
}

func TestPerlinGeneratorDeterministic(t *testing.T) {
	a := New(32, 32, 32, NewPerlinGenerator(7))
	b := New(32, 32, 32, NewPerlinGenerator(7))

	for z := 0; z < 32; z++ {
		for x := 0; x < 32; x++ {
			if a.LightDepth(x, z) != b.LightDepth(x, z) {
				t.Fatalf("Expected identical surfaces for same seed at (%d,%d)", x, z)
			}
		}
	}
}

func TestPerlinGeneratorColumnsAreSolidBelowSurface(t *testing.T) {
	g := New(32, 32, 32, NewPerlinGenerator(3))

	for z := 0; z < 32; z++ {
		for x := 0; x < 32; x++ {
			top := g.LightDepth(x, z)
			for y := 0; y <= top; y++ {
				if !g.IsTile(x, y, z) {
					t.Fatalf("Expected solid column below surface at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}
