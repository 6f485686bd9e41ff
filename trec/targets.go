package trec

import (
	"io"
	"math"
	"strconv"
)

// ReadTargets reads a `topic<TAB>T` file mapping each topic to the number of relevant
// documents a user expects to find.
func ReadTargets(r io.Reader) (map[string]float64, error) {
	targets := make(map[string]float64)
	err := readFields(r, 2, func(line int, text string, fields []string) error {
		t, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(t) {
			return MalformedInputError{Line: line, Text: text, Reason: "T is not a number"}
		}
		targets[fields[0]] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// LoadTargets reads a T file from disk.
func LoadTargets(path string) (map[string]float64, error) {
	var targets map[string]float64
	err := openWith(path, "T", func(r io.Reader) (err error) {
		targets, err = ReadTargets(r)
		return
	})
	return targets, err
}
