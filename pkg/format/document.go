package format

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

var (
	cpfStep1 = regexp.MustCompile(`^(\d{3})(\d)`)
	cpfStep2 = regexp.MustCompile(`^(\d{3})\.(\d{3})(\d)`)
	cpfStep3 = regexp.MustCompile(`\.(\d{3})\.(\d{3})(\d{1,2}).*`)

	cnpjStep1 = regexp.MustCompile(`^(\d{2})(\d)`)
	cnpjStep2 = regexp.MustCompile(`^(\d{2})\.(\d{3})(\d)`)
	cnpjStep3 = regexp.MustCompile(`\.(\d{3})(\d)`)
	cnpjStep4 = regexp.MustCompile(`(\d{4})(\d{1,2}).*`)
)

// OnlyDigits strips every non-digit rune.
func OnlyDigits(v string) string {
	return nonDigit.ReplaceAllString(v, "")
}

// IsCpfOrCnpj reports whether v carries exactly 11 (CPF) or 14 (CNPJ) digits.
func IsCpfOrCnpj(v string) bool {
	n := len(OnlyDigits(v))
	return n == 11 || n == 14
}

// MaskCpfCnpj masks progressively while the user types: up to 11 digits it is
// treated as a CPF (000.000.000-00), beyond that as a CNPJ (00.000.000/0000-00).
func MaskCpfCnpj(v string) string {
	d := OnlyDigits(v)

	if len(d) <= 11 {
		d = replaceFirst(cpfStep1, d, "$1.$2")
		d = replaceFirst(cpfStep2, d, "$1.$2.$3")
		d = replaceFirst(cpfStep3, d, ".$1.$2-$3")
		return strings.TrimSpace(d)
	}

	if len(d) > 14 {
		d = d[:14]
	}
	d = replaceFirst(cnpjStep1, d, "$1.$2")
	d = replaceFirst(cnpjStep2, d, "$1.$2.$3")
	d = replaceFirst(cnpjStep3, d, ".$1/$2")
	d = replaceFirst(cnpjStep4, d, "$1-$2")
	return strings.TrimSpace(d)
}

// MaskPhoneBR masks a Brazilian phone: (11) 99999-9999 or (11) 9999-9999.
func MaskPhoneBR(v string) string {
	d := OnlyDigits(v)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 2 {
		return d
	}

	ddd, rest := d[:2], d[2:]
	switch {
	case len(rest) <= 4:
		return "(" + ddd + ") " + rest
	case len(rest) <= 8:
		return "(" + ddd + ") " + rest[:4] + "-" + rest[4:]
	default:
		return "(" + ddd + ") " + rest[:5] + "-" + rest[5:]
	}
}

func replaceFirst(re *regexp.Regexp, src, template string) string {
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}
	var dst []byte
	dst = re.ExpandString(dst, template, src, loc)
	return src[:loc[0]] + string(dst) + src[loc[1]:]
}
