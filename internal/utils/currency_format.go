package utils

import (
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDisplayLocale is the locale amounts are grouped in when none is configured.
var DefaultDisplayLocale = language.MustParse("es-AR")

// NewAmountPrinter returns a printer for the given BCP 47 locale, falling back
// to DefaultDisplayLocale when the tag cannot be parsed.
func NewAmountPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = DefaultDisplayLocale
	}
	return message.NewPrinter(tag)
}

// FormatWithPrecision formats an amount with exactly the given number of decimals, no grouping.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// localeSeparators reads the group and decimal separators the printer uses by
// rendering a known value. Locales it cannot read fall back to "," and ".".
func localeSeparators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	one, two := strings.Index(sample, "1"), strings.Index(sample, "2")
	seven := strings.LastIndex(sample, "7")
	if one < 0 || two < one || seven < two || !strings.HasSuffix(sample, "5") {
		return ",", "."
	}
	return sample[one+1 : two], sample[seven+1 : len(sample)-1]
}

// FormatMoney renders symbol + locale-grouped amount with exactly currency.Precision decimals.
// Digits come from the decimal itself so large values keep every digit.
// Example: 1234.5 ARS in es-AR returns "$1.234,50".
func FormatMoney(p *message.Printer, amount decimal.Decimal, currency domain.Currency) string {
	group, dec := localeSeparators(p)

	digits := FormatWithPrecision(amount, currency.Precision)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(currency.Symbol)
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(dec)
		b.WriteString(fracPart)
	}
	return b.String()
}
