package utils

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"
	"unicode"
)

var (
	ErrDivisionByZero = errors.New("Division by zero")
	ErrNotANumber     = errors.New("Arguments must be valid numbers")
	ErrNotFinite      = errors.New("Arguments must be finite numbers")
	ErrNegativeLength = errors.New("length must not be negative")
	ErrOverflow       = errors.New("sequence overflows int64")
)

// maxFibonacciTerms is the longest sequence whose last term fits in an int64.
const maxFibonacciTerms = 93

// Number is any built-in integer or float type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Addable types support the + operator.
type Addable interface {
	Number | ~string
}

// Sum adds numbers and concatenates strings.
func Sum[T Addable](a, b T) T {
	return a + b
}

// Concat returns a new slice holding a followed by b.
func Concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// IsPalindrome ignores case and whitespace.
func IsPalindrome(s string) bool {
	clean := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s))

	for i, j := 0, len(clean)-1; i < j; i, j = i+1, j-1 {
		if clean[i] != clean[j] {
			return false
		}
	}
	return true
}

// Max returns the largest element, or false when xs is empty.
// For floats a NaN anywhere in xs yields NaN.
func Max[T cmp.Ordered](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return slices.Max(xs), true
}

// Capitalize keeps leading whitespace, upper-cases the first visible rune and
// lower-cases the rest.
func Capitalize(s string) string {
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return s
	}

	rest := []rune(s[start:])
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:start])
	b.WriteRune(unicode.ToUpper(rest[0]))
	b.WriteString(strings.ToLower(string(rest[1:])))
	return b.String()
}

// Divide returns a / b. Zero divisors are reported before NaN and infinite operands.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, ErrNotANumber
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, ErrNotFinite
	}
	return a / b, nil
}

// Fibonacci returns the first n terms starting at 0.
func Fibonacci(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > maxFibonacciTerms {
		return nil, ErrOverflow
	}

	seq := make([]int, 0, n)
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			seq = append(seq, 0)
		case 1:
			seq = append(seq, 1)
		default:
			seq = append(seq, seq[i-1]+seq[i-2])
		}
	}
	return seq, nil
}
