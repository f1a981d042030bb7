package validate

import (
	"regexp"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// ibanPattern matches the country prefix followed by exactly 24 digits.
var ibanPattern = regexp.MustCompile(`^IR\d{24}$`)

var phonePattern = regexp.MustCompile(`^0\d{10}$`)

// IsCardNumber checks a bank card number with the Luhn algorithm.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(strings.ReplaceAll(s, " ", ""))
	return err == nil
}

func IsIBAN(s string) bool {
	return ibanPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

func IsPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}
