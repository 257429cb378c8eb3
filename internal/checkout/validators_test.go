package checkout_test

import (
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		name      string
		phone     string
		wantValid bool
		want      string
	}{
		{name: "international with spaces", phone: "+968 9123 4567", wantValid: true, want: "91234567"},
		{name: "country code without plus", phone: "96891234567", wantValid: true, want: "91234567"},
		{name: "local mobile", phone: "91234567", wantValid: true, want: "91234567"},
		{name: "landline", phone: "24 123 456", wantValid: true, want: "24123456"},
		{name: "hyphens and parens", phone: "(968) 9123-4567", wantValid: true, want: "91234567"},
		{name: "country code leaves five digits", phone: "96812345"},
		{name: "starts with 8", phone: "81234567"},
		{name: "seven digits", phone: "9123456"},
		{name: "nine digits", phone: "912345678"},
		{name: "letters", phone: "9123abcd"},
		{name: "empty", phone: "  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := checkout.ValidatePhone(tc.phone)
			assert.Equal(t, tc.wantValid, res.Valid, res.Error)
			if tc.wantValid {
				assert.Equal(t, tc.want, res.Formatted)
			} else {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestValidatePhone_Equivalent(t *testing.T) {
	a := checkout.ValidatePhone("+968 9123 4567")
	b := checkout.ValidatePhone("96891234567")
	c := checkout.ValidatePhone("91234567")

	assert.True(t, a.Valid && b.Valid && c.Valid)
	assert.Equal(t, a.Formatted, b.Formatted)
	assert.Equal(t, b.Formatted, c.Formatted)
}

func TestValidatePostalCode(t *testing.T) {
	testCases := []struct {
		code      string
		wantValid bool
	}{
		{"111", true},
		{"1111", true},
		{"", true},
		{"12", false},
		{"12345", false},
		{"11a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.wantValid, checkout.ValidatePostalCode(tc.code).Valid)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email     string
		wantValid bool
	}{
		{"a@b.com", true},
		{"customer.name@shop.om", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"a@@b.com", false},
		{"", false},
		{strings.Repeat("a", 250) + "@b.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.wantValid, checkout.ValidateEmail(tc.email).Valid)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	limits := checkout.DefaultAmountLimits

	testCases := []struct {
		name      string
		input     string
		limits    checkout.AmountLimits
		wantValid bool
		want      string
	}{
		{name: "three decimals", input: "90.000", limits: limits, wantValid: true, want: "90.000"},
		{name: "integer", input: "5", limits: limits, wantValid: true, want: "5.000"},
		{name: "zero", input: "0", limits: limits, wantValid: true, want: "0.000"},
		{name: "max", input: "999999.999", limits: limits, wantValid: true, want: "999999.999"},
		{name: "above max", input: "1000000", limits: limits},
		{name: "negative", input: "-0.001", limits: limits},
		{name: "four decimals", input: "1.2345", limits: limits},
		{name: "not a number", input: "abc", limits: limits},
		{name: "NaN", input: "NaN", limits: limits},
		{name: "empty", input: "", limits: limits},
		{name: "custom minimum", input: "0.5", limits: checkout.AmountLimits{Min: 1, Max: 10}},
		{name: "custom maximum", input: "10.001", limits: checkout.AmountLimits{Min: 1, Max: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := checkout.ValidateAmount(tc.input, tc.limits)
			assert.Equal(t, tc.wantValid, res.Valid, res.Error)
			if tc.wantValid {
				assert.Equal(t, tc.want, res.Formatted)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{name: "latin", input: "Ahmed Al-Balushi", wantValid: true},
		{name: "arabic", input: "أحمد البلوشي", wantValid: true},
		{name: "script tag", input: "<script>"},
		{name: "braces", input: "John {Doe}"},
		{name: "backtick", input: "John `Doe`"},
		{name: "pipe", input: "John | Doe"},
		{name: "too short", input: " A "},
		{name: "too long", input: strings.Repeat("a", 51)},
		{name: "empty", input: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantValid, checkout.ValidateName(tc.input).Valid)
		})
	}
}

func TestValidateAddressLine(t *testing.T) {
	assert.True(t, checkout.ValidateAddressLine("Way 3021, House 12").Valid)
	assert.True(t, checkout.ValidateAddressLine("  12345  ").Valid)
	assert.False(t, checkout.ValidateAddressLine("1234").Valid)
	assert.False(t, checkout.ValidateAddressLine(strings.Repeat("x", 101)).Valid)
}

func TestValidateCity(t *testing.T) {
	assert.True(t, checkout.ValidateCity("Muscat").Valid)
	assert.True(t, checkout.ValidateCity("بوشر").Valid)
	assert.True(t, checkout.ValidateCity("Block 123").Valid)
	assert.False(t, checkout.ValidateCity("Block 1234").Valid)
	assert.False(t, checkout.ValidateCity("M").Valid)
	assert.False(t, checkout.ValidateCity(strings.Repeat("m", 51)).Valid)
}

func TestValidateShippingAddress(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := checkout.ValidateShippingAddress(validAddress())
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		addr := checkout.AddressInput{
			FullName:      "<b>",
			Phone:         "81234567",
			Email:         "a@b",
			StreetAddress: "x",
			Wilayat:       "",
			Governorate:   "G",
			PostalCode:    "12",
		}

		res := checkout.ValidateShippingAddress(addr)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 7)
		for _, field := range []string{"full_name", "phone", "email", "street_address", "wilayat", "governorate", "postal_code"} {
			assert.Contains(t, res.Errors, field)
		}
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		addr := validAddress()
		addr.Email = ""
		addr.PostalCode = ""
		assert.True(t, checkout.ValidateShippingAddress(addr).Valid)
	})
}

func validAddress() checkout.AddressInput {
	return checkout.AddressInput{
		FullName:      "Ahmed Al-Balushi",
		Phone:         "+968 9123 4567",
		Email:         "ahmed@example.com",
		StreetAddress: "Way 3021, House 12",
		Wilayat:       "Bawshar",
		Governorate:   "Muscat",
		PostalCode:    "111",
	}
}
