// Package prompt reads and classifies line-oriented console input.
//
// Every prompt returns a tagged Result instead of a raw string: the
// caller sees OK with a parsed value, Back when the user typed the
// uniform "b" escape, or Invalid when the line failed to parse. End of
// input is reported as Back so workflows unwind instead of spinning.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/yanexstore/storefront/internal/model"
)

// Outcome classifies one line of user input.
type Outcome int

// Input outcomes.
const (
	OK Outcome = iota
	Back
	Invalid
)

// Result pairs a parsed value with its outcome. Value is meaningful
// only when Outcome is OK.
type Result[T any] struct {
	Value   T
	Outcome Outcome
}

// ok wraps a parsed value in an OK result.
func ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Outcome: OK}
}

// tagged returns a zero-valued result with the given outcome.
func tagged[T any](o Outcome) Result[T] {
	return Result[T]{Outcome: o}
}

// Reader prompts on out and reads line-oriented replies from in.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

// New creates a Reader over the given input and output streams.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// EOF reports whether the input stream has been exhausted.
func (r *Reader) EOF() bool {
	return r.eof
}

// printf writes prompt text. Console output errors are not actionable
// mid-prompt and are ignored.
func (r *Reader) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// readLine reads one raw line. The second return value is false once
// the input is exhausted.
func (r *Reader) readLine() (string, bool) {
	if r.eof {
		return "", false
	}
	if !r.scanner.Scan() {
		r.eof = true
		return "", false
	}
	return r.scanner.Text(), true
}

// isBack reports whether a line is the uniform back token.
func isBack(line string) bool {
	return line == "b" || line == "B"
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Line prompts once and returns the raw line, honoring the back token.
func (r *Reader) Line(text string) Result[string] {
	r.printf("%s", text)

	line, alive := r.readLine()
	if !alive || isBack(line) {
		return tagged[string](Back)
	}

	return ok(line)
}

// MenuChoiceOnce prompts once for a menu number within [minv, maxv].
// Out-of-range or non-numeric input yields Invalid without reprompting;
// callers that cap attempts count these themselves.
func (r *Reader) MenuChoiceOnce(text string, minv, maxv int) Result[int] {
	r.printf("%s", text)

	line, alive := r.readLine()
	if !alive || isBack(line) {
		return tagged[int](Back)
	}

	if !isDigits(line) {
		return tagged[int](Invalid)
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < minv || n > maxv {
		return tagged[int](Invalid)
	}

	return ok(n)
}

// MenuChoice prompts for a menu number within [minv, maxv], reprompting
// inline on invalid input until the user answers or backs out.
func (r *Reader) MenuChoice(text string, minv, maxv int) Result[int] {
	for {
		res := r.MenuChoiceOnce(text, minv, maxv)
		if res.Outcome != Invalid {
			return res
		}
		r.printf("Invalid input. Enter a number between %d and %d, or 'b' to go back.\n", minv, maxv)
	}
}

// PositiveInt prompts for an integer greater than zero, reprompting
// inline until the user answers or backs out.
func (r *Reader) PositiveInt(text string) Result[int] {
	for {
		r.printf("%s", text)

		line, alive := r.readLine()
		if !alive || isBack(line) {
			return tagged[int](Back)
		}

		if isDigits(line) {
			n, err := strconv.Atoi(line)
			if err == nil && n > 0 {
				return ok(n)
			}
			r.printf("Value must be greater than zero and within valid range. Try again.\n")
			continue
		}

		r.printf("Invalid input. Enter a number greater than zero or 'b' to go back.\n")
	}
}

// PositiveDecimal prompts for a decimal number greater than zero,
// reprompting inline until the user answers or backs out.
func (r *Reader) PositiveDecimal(text string) Result[decimal.Decimal] {
	for {
		r.printf("%s", text)

		line, alive := r.readLine()
		if !alive || isBack(line) {
			return tagged[decimal.Decimal](Back)
		}

		if isPlainDecimal(line) {
			d, err := decimal.NewFromString(line)
			if err == nil && d.IsPositive() {
				return ok(d)
			}
			r.printf("Value must be greater than zero. Try again.\n")
			continue
		}

		r.printf("Invalid input. Enter a valid price greater than zero or 'b' to go back.\n")
	}
}

// TextWithLetter prompts for a string containing at least one letter,
// reprompting inline until the user answers or backs out.
func (r *Reader) TextWithLetter(text string) Result[string] {
	for {
		r.printf("%s", text)

		line, alive := r.readLine()
		if !alive || isBack(line) {
			return tagged[string](Back)
		}

		if model.ContainsLetter(line) {
			return ok(line)
		}

		r.printf("Input must contain at least one letter and cannot be only numbers. Try again or 'b' to go back.\n")
	}
}

// YesNo prompts once; any answer starting with y or Y counts as yes,
// everything else as no.
func (r *Reader) YesNo(text string) Result[bool] {
	r.printf("%s", text)

	line, alive := r.readLine()
	if !alive {
		return tagged[bool](Back)
	}

	yes := len(line) > 0 && (line[0] == 'y' || line[0] == 'Y')

	return ok(yes)
}

// isPlainDecimal reports whether s is digits with at most one decimal
// point and at least one digit.
func isPlainDecimal(s string) bool {
	digits := 0
	point := false
	for _, c := range s {
		if c == '.' {
			if point {
				return false
			}
			point = true
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
		digits++
	}
	return digits > 0
}
