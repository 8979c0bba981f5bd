package pkg

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

const DefaultPhoneRegion = "BR"

// ValidatePhoneNumber parses phoneNumber for the given region and checks it is dialable.
func ValidatePhoneNumber(phoneNumber, region string) error {
	p, err := libphonenumber.Parse(phoneNumber, region)
	if err != nil {
		return err
	}
	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}
	return nil
}

// NormalizePhoneNumber returns the E.164 form of a valid phone number.
func NormalizePhoneNumber(phoneNumber, region string) (string, error) {
	p, err := libphonenumber.Parse(phoneNumber, region)
	if err != nil {
		return "", err
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("phone number is not valid")
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}

// ProcessValidationErrors maps each failing field to the tag that rejected it.
// It returns nil when err does not come from the validator.
func ProcessValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	out := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		out[ve.Field()] = ve.Tag()
	}
	return out
}

// ValidationMessage renders validator errors as a single sentence.
func ValidationMessage(err error) string {
	fields := ProcessValidationErrors(err)
	if len(fields) == 0 {
		return "Invalid request body"
	}
	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, field+" ("+tag+")")
	}
	slices.Sort(parts)
	return "Invalid fields: " + strings.Join(parts, ", ")
}
