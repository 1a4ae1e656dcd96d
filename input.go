package textbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReadToken returns the first whitespace-delimited token from r.
// Input with no token at all is ErrInvalidInput.
func ReadToken(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: token too long", ErrInvalidInput)
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", fmt.Errorf("%w: no value provided", ErrInvalidInput)
}

// ParseRadius parses token as a finite real number.
func ParseRadius(token string) (float64, error) {
	r, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, token)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidInput, token)
	}
	return r, nil
}

// ParseBound parses token as a base-10 integer. Negative values are valid.
func ParseBound(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInput, token)
		}
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, token)
	}
	return n, nil
}
