// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intarr reads whitespace-separated integer lists from text input.
package intarr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError describes a token that is not a valid base-10 integer.
type ParseError struct {
	Line  int    // 1-based input line
	Field int    // 1-based token position within the line
	Token string // the offending token
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, field %d: invalid integer %q: %v", e.Line, e.Field, e.Token, errors.Unwrap(e.Err))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine splits s on whitespace and parses every token as a base-10
// int64. lineNo is only used to label errors. A blank line yields an empty,
// non-nil slice.
func ParseLine(lineNo int, s string) ([]int64, error) {
	flds := strings.Fields(s)
	a := make([]int64, 0, len(flds))
	for i, f := range flds {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Field: i + 1, Token: f, Err: err}
		}
		a = append(a, v)
	}
	return a, nil
}

// ReadLine reads a single line from r without its line terminator. A final
// line without a newline is returned as is; io.EOF is returned only when r
// has no data left at all.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// ReadAll parses every line of r, in order. Parsing stops at the first
// invalid token.
func ReadAll(r io.Reader) ([][]int64, error) {
	var out [][]int64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for lineNo := 1; sc.Scan(); lineNo++ {
		a, err := ParseLine(lineNo, sc.Text())
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}

// maxLineBytes bounds a single batch line.
const maxLineBytes = 16 << 20

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
