// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrKeyFormat is returned for key text that cannot be parsed into numbers.
var ErrKeyFormat = errors.New("config: malformed key")

// ParseKey parses inline key text. Rows are separated by ';' or newlines,
// entries by spaces, tabs or commas:
//
//	"6 24 1; 13 16 10; 20 17 15"
//
// Shape is not checked here; the cipher reports empty or non-square keys.
func ParseKey(s string) ([][]float64, error) {
	var rows [][]float64
	for i, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\r' })
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d entry %d %q", ErrKeyFormat, i, j, f)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// keyFile is the YAML layout of a key file:
//
//	key:
//	  - [6, 24, 1]
//	  - [13, 16, 10]
//	  - [20, 17, 15]
type keyFile struct {
	Key [][]float64 `yaml:"key"`
}

// LoadKeyFile reads a YAML key file.
func LoadKeyFile(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	var kf keyFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrKeyFormat, path, err)
	}

	return kf.Key, nil
}
