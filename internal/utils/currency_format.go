package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every amount shown to users.
const CurrencySymbol = "Rs."

// FormatAmount renders an amount with two decimals and Indian digit grouping.
// Example: 1234567.5 returns "Rs.12,34,567.50"
func FormatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + CurrencySymbol + groupIndian(intPart) + "." + frac
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// groupIndian groups the last three digits, then pairs: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
