// Package format holds the pt-BR value formatters shared by the portal: money
// (BRL <-> cents), CPF/CNPJ and phone masks, and date-only rendering.
package format

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxMoneyDigits bounds the integer part of a typed price so its cents always
// fit an int64.
const MaxMoneyDigits = 12

var (
	currencyPrefix = regexp.MustCompile(`(?i)R\$\s?`)
	nonNumeric     = regexp.MustCompile(`[^\d.]`)
	whitespace     = regexp.MustCompile(`\s`)
	moneyBR        = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{3}){0,3}(,[0-9]{1,2})?$|^[0-9]{1,12}(,[0-9]{1,2})?$`)
)

// LooksLikeMoneyBR reports whether v is a price typed the Brazilian way
// ("12,50", "1.234,5", "10") with at most MaxMoneyDigits integer digits.
func LooksLikeMoneyBR(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return false
	}
	return moneyBR.MatchString(whitespace.ReplaceAllString(s, ""))
}

// BrlToCents converts a friendly BRL string ("19,90", "R$ 1.234,50") to integer
// cents, rounding half up to the nearest cent. Unparseable input, or input with
// more than MaxMoneyDigits integer digits, yields 0.
func BrlToCents(input string) int64 {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0
	}

	cleaned := currencyPrefix.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = nonNumeric.ReplaceAllString(cleaned, "")
	if cleaned == "" || strings.Count(cleaned, ".") > 1 {
		return 0
	}

	whole, frac, _ := strings.Cut(cleaned, ".")
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > MaxMoneyDigits {
		return 0
	}

	var units int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0
		}
		units = n
	}

	frac += "000"
	cents, _ := strconv.ParseInt(frac[:2], 10, 64)
	total := units*100 + cents
	if frac[2] >= '5' {
		total++
	}
	return total
}

// CentsToBrl renders cents as "R$ 1.234,50".
func CentsToBrl(cents int64) string {
	sign, u := magnitude(cents)
	return sign + "R$ " + groupThousands(u/100) + "," + pad2(u%100)
}

// CentsToPriceInput renders cents the way a user would type them back into a
// price field: no currency symbol, no thousands separator, comma decimal and no
// trailing zeros ("12,5", "1999", "0").
func CentsToPriceInput(cents int64) string {
	sign, u := magnitude(cents)
	out := sign + strconv.FormatUint(u/100, 10)
	switch frac := u % 100; {
	case frac == 0:
		return out
	case frac%10 == 0:
		return out + "," + strconv.FormatUint(frac/10, 10)
	default:
		return out + "," + pad2(frac)
	}
}

// magnitude splits cents into a sign and an absolute value that also holds
// math.MinInt64.
func magnitude(cents int64) (string, uint64) {
	if cents < 0 {
		return "-", uint64(-(cents + 1)) + 1
	}
	return "", uint64(cents)
}

func groupThousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pad2(n uint64) string {
	if n < 10 {
		return "0" + strconv.FormatUint(n, 10)
	}
	return strconv.FormatUint(n, 10)
}
