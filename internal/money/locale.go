package money

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var ErrUnsupportedLocale = errors.New("unsupported currency locale")

// Locale describes how amounts are written for one display currency.
type Locale struct {
	Tag      language.Tag
	Currency currency.Unit

	// Symbol is prepended to formatted amounts. It may carry trailing
	// whitespace that separates it from the digits.
	Symbol  string
	Group   rune
	Decimal rune
}

var (
	// Indonesian formats Rupiah amounts, e.g. "Rp 10.000,50" with a no-break space.
	Indonesian = Locale{
		Tag:      language.MustParse("id-ID"),
		Currency: currency.IDR,
		Symbol:   "Rp\u00a0",
		Group:    '.',
		Decimal:  ',',
	}

	// AmericanEnglish formats US dollar amounts, e.g. "$10,000.50".
	AmericanEnglish = Locale{
		Tag:      language.AmericanEnglish,
		Currency: currency.USD,
		Symbol:   "$",
		Group:    ',',
		Decimal:  '.',
	}
)

var (
	supported = []Locale{Indonesian, AmericanEnglish}
	matcher   = language.NewMatcher([]language.Tag{Indonesian.Tag, AmericanEnglish.Tag})
)

// LocaleFor returns the supported locale that best matches a BCP 47 tag.
// An empty tag selects Indonesian.
func LocaleFor(tag string) (Locale, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Indonesian, nil
	}

	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %s", ErrUnsupportedLocale, tag)
	}

	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return Locale{}, fmt.Errorf("%w: %s", ErrUnsupportedLocale, tag)
	}

	return supported[index], nil
}

// String returns the locale's BCP 47 tag.
func (l Locale) String() string {
	return l.Tag.String()
}
