package checkout

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	omanCountryCode  = "968"
	localPhoneDigits = 8

	maxEmailLength = 254

	nameMinLength    = 2
	nameMaxLength    = 50
	addressMinLength = 5
	addressMaxLength = 100
	cityMinLength    = 2
	cityMaxLength    = 50
	cityMaxDigits    = 3

	maxAmountPlaces = 3

	dangerousNameChars = "<>{}[]\\`^|~"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AmountLimits bounds accepted monetary amounts, inclusive.
type AmountLimits struct {
	Min float64
	Max float64
}

var DefaultAmountLimits = AmountLimits{Min: 0, Max: 999999.999}

func valid(formatted string) FieldResult {
	return FieldResult{Valid: true, Formatted: formatted}
}

func invalid(msg string) FieldResult {
	return FieldResult{Error: msg}
}

// ValidatePhone accepts Omani numbers with or without the 968 country code.
// Formatted holds the 8-digit local number.
func ValidatePhone(phone string) FieldResult {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		switch r {
		case '-', '(', ')', '+':
			return -1
		}
		return r
	}, phone)

	if digits == "" {
		return invalid("phone number is required")
	}
	if !isDigits(digits) {
		return invalid("phone number must contain only digits")
	}
	digits = strings.TrimPrefix(digits, omanCountryCode)
	if len(digits) != localPhoneDigits {
		return invalid("phone number must have 8 digits")
	}
	if digits[0] != '2' && digits[0] != '9' {
		return invalid("phone number must start with 2 or 9")
	}
	return valid(digits)
}

// ValidatePostalCode treats a blank code as absent.
func ValidatePostalCode(code string) FieldResult {
	code = strings.TrimSpace(code)
	if code == "" {
		return valid("")
	}
	if !isDigits(code) || len(code) < 3 || len(code) > 4 {
		return invalid("postal code must be 3 or 4 digits")
	}
	return valid(code)
}

func ValidateEmail(email string) FieldResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email is required")
	}
	if len(email) > maxEmailLength {
		return invalid("email must be at most 254 characters")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email is invalid")
	}
	return valid(email)
}

// ValidateAmount checks a local currency amount. Formatted holds 3 decimals.
func ValidateAmount(input string, limits AmountLimits) FieldResult {
	s := strings.TrimSpace(input)
	if s == "" {
		return invalid("amount is required")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return invalid("amount must be a number")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return invalid("amount must be a number")
	}

	if v < limits.Min {
		return invalid(fmt.Sprintf("amount must be at least %s", FormatLocal(limits.Min)))
	}
	if v > limits.Max {
		return invalid(fmt.Sprintf("amount must be at most %s", FormatLocal(limits.Max)))
	}
	if -d.Exponent() > maxAmountPlaces {
		return invalid("amount must have at most 3 decimal places")
	}
	return valid(d.StringFixed(localPlaces))
}

func ValidateName(name string) FieldResult {
	return validateName("name", name)
}

func validateName(label, name string) FieldResult {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return invalid(label + " is required")
	case n < nameMinLength:
		return invalid(fmt.Sprintf("%s must be at least %d characters", label, nameMinLength))
	case n > nameMaxLength:
		return invalid(fmt.Sprintf("%s must be at most %d characters", label, nameMaxLength))
	case strings.ContainsAny(name, dangerousNameChars):
		return invalid(label + " contains invalid characters")
	}
	return valid(name)
}

func ValidateAddressLine(line string) FieldResult {
	line = strings.TrimSpace(line)
	n := utf8.RuneCountInString(line)
	switch {
	case n == 0:
		return invalid("address is required")
	case n < addressMinLength:
		return invalid(fmt.Sprintf("address must be at least %d characters", addressMinLength))
	case n > addressMaxLength:
		return invalid(fmt.Sprintf("address must be at most %d characters", addressMaxLength))
	}
	return valid(line)
}

func ValidateCity(city string) FieldResult {
	return validateLocality("city", city)
}

func validateLocality(label, value string) FieldResult {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return invalid(label + " is required")
	case n < cityMinLength:
		return invalid(fmt.Sprintf("%s must be at least %d characters", label, cityMinLength))
	case n > cityMaxLength:
		return invalid(fmt.Sprintf("%s must be at most %d characters", label, cityMaxLength))
	case countDigits(value) > cityMaxDigits:
		return invalid(label + " contains too many digits")
	}
	return valid(value)
}

// ValidateShippingAddress reports every invalid field of the address at once.
func ValidateShippingAddress(addr AddressInput) ValidationResult {
	errs := make(map[string]string)
	collectAddressErrors(errs, "", addr)
	return newValidationResult(errs)
}

func collectAddressErrors(errs map[string]string, prefix string, addr AddressInput) {
	check := func(field string, res FieldResult) {
		if !res.Valid {
			errs[prefix+field] = res.Error
		}
	}

	check("full_name", validateName("full name", addr.FullName))
	check("phone", ValidatePhone(addr.Phone))
	if strings.TrimSpace(addr.Email) != "" {
		check("email", ValidateEmail(addr.Email))
	}
	check("street_address", ValidateAddressLine(addr.StreetAddress))
	check("wilayat", validateLocality("wilayat", addr.Wilayat))
	check("governorate", validateLocality("governorate", addr.Governorate))
	check("postal_code", ValidatePostalCode(addr.PostalCode))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
