// Package money converts between user-typed amounts and integer cents.
package money

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyInput     = errors.New("amount required")
	ErrInvalidFormat  = errors.New("enter a valid amount (up to 2 decimals)")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

var amountPattern = regexp.MustCompile(`^(\d+(\.\d{0,2})?|\.\d{1,2})$`)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// Codec parses and formats amounts for exactly one Locale.
type Codec struct {
	locale Locale
	marker *regexp.Regexp
}

// NewCodec returns a Codec for the locale.
func NewCodec(l Locale) *Codec {
	symbol := strings.TrimFunc(l.Symbol, unicode.IsSpace)

	markers := []string{regexp.QuoteMeta(l.Currency.String())}
	if symbol != "" {
		markers = append(markers, regexp.QuoteMeta(symbol))
	}

	return &Codec{
		locale: l,
		marker: regexp.MustCompile(`(?i)` + strings.Join(markers, "|")),
	}
}

// Locale returns the locale the codec was built with.
func (c *Codec) Locale() Locale {
	return c.locale
}

// Parse converts user input into cents.
func (c *Codec) Parse(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyInput
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = c.marker.ReplaceAllString(s, "")

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	s = strings.ReplaceAll(s, string(c.locale.Group), "")
	s = strings.ReplaceAll(s, string(c.locale.Decimal), ".")

	if !amountPattern.MatchString(s) {
		return 0, ErrInvalidFormat
	}

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")

	value, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidFormat
	}

	cents := value.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, ErrInvalidFormat
	}

	if negative && !cents.IsZero() {
		return 0, ErrNegativeAmount
	}

	return cents.IntPart(), nil
}

// Format renders cents with the locale's symbol and separators and
// exactly two fraction digits.
func (c *Codec) Format(cents int64) string {
	var b strings.Builder

	abs := uint64(cents)
	if cents < 0 {
		b.WriteByte('-')
		abs = uint64(-(cents + 1)) + 1
	}

	b.WriteString(c.locale.Symbol)
	b.WriteString(group(strconv.FormatUint(abs/100, 10), c.locale.Group))
	b.WriteRune(c.locale.Decimal)

	frac := abs % 100
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(frac, 10))

	return b.String()
}

// group inserts sep between every three digits, counted from the right.
func group(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
