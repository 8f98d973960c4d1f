// Package parse converts string representations into the core data
// model: bit strings into bit sequences, comma-separated generator
// rows into a Gens, and decimal strings into validated probabilities.
// It is not a command-line flag parser or a JSON codec; those stay
// out of the core's scope.
package parse

import (
	"strconv"
	"strings"

	"github.com/kb9vcn/convstack/internal/convstack"
	"github.com/kb9vcn/convstack/internal/gencode"
)

// ParseBits parses a string of '0'/'1' characters into a bit sequence.
// ' ' and ',' are ignored as separators; any other rune is rejected.
func ParseBits(s string) ([]int, error) {
	bits := make([]int, 0, len(s))
	for _, r := range s {
		switch r {
		case ' ', ',':
			continue
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return nil, convstack.InvalidInputError("invalid character %q in bit string", r)
		}
	}
	if len(bits) == 0 {
		return nil, convstack.InvalidInputError("bit string contains no bits")
	}
	return bits, nil
}

// ParseGenerators parses a comma-separated list of bit strings into a
// Gens. Short generators are right-padded with zeros to the longest
// generator's length, as gencode.NewGens does.
func ParseGenerators(s string) (gencode.Gens, error) {
	parts := strings.Split(s, ",")
	rows := make([][]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		row := make([]int, 0, len(part))
		for _, r := range part {
			switch r {
			case '0':
				row = append(row, 0)
			case '1':
				row = append(row, 1)
			default:
				return gencode.Gens{}, convstack.InvalidInputError("invalid character %q in generator %q", r, part)
			}
		}
		rows = append(rows, row)
	}
	return gencode.NewGens(rows)
}

// ParseProbability parses a decimal string and validates it against rng.
func ParseProbability(s string, rng gencode.ProbabilityRange) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, convstack.InvalidInputError("invalid probability %q: %v", s, err)
	}
	if err := gencode.ValidateProbability(p, rng); err != nil {
		return 0, err
	}
	return p, nil
}
