package quote

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	scientificBelow = 0.00001
	microPriceBelow = 0.01
	groupFrom       = 1000
)

// FormatAmount renders a token amount with precision that fits its magnitude
func FormatAmount(v float64) string {
	return formatTiered(v, true)
}

// FormatRate renders a cross rate like an amount, without digit grouping
func FormatRate(v float64) string {
	return formatTiered(v, false)
}

func formatTiered(v float64, group bool) string {
	v = clamp(v)
	switch {
	case v == 0:
		return "0"
	case v < scientificBelow:
		return scientific(v)
	case v < 1:
		return fixed(v, 4)
	case v < groupFrom || !group:
		return fixed(v, 2)
	default:
		return AddThousandsSeparators(fixed(v, 2))
	}
}

// FormatPrice renders a USD unit price, e.g. "$0.000512" or "$3,500.00"
func FormatPrice(v float64) string {
	v = clamp(v)
	switch {
	case v == 0:
		return "$0"
	case v < scientificBelow:
		return "$" + scientific(v)
	case v < microPriceBelow:
		return "$" + fixed(v, 6)
	case v < 1:
		return "$" + fixed(v, 4)
	case v < groupFrom:
		return "$" + fixed(v, 2)
	default:
		return "$" + AddThousandsSeparators(fixed(v, 2))
	}
}

// FormatUSD renders a USD total with 2 decimals and thousands separators
func FormatUSD(v float64) string {
	return AddThousandsSeparators(fixed(clamp(v), 2))
}

// AddThousandsSeparators inserts a comma every 3 digits left of the decimal point
func AddThousandsSeparators(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}

// fixed renders a non-negative v with the given decimals. Exact ties round
// half up (1.125 -> "1.13"); the scaling is done on the exact binary value,
// so 1.005, which is stored just below the tie, gives "1.00".
func fixed(v float64, decimals int) string {
	x := new(big.Float).SetPrec(256).SetFloat64(v)
	x.Mul(x, new(big.Float).SetPrec(256).SetFloat64(math.Pow10(decimals)))
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	digits := n.String()
	if decimals == 0 {
		return digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	return digits[:cut] + "." + digits[cut:]
}

// scientific formats like 5.0000e-6 (no zero padding in the exponent)
func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', 4, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
