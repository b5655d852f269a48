package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidPIN(t *testing.T) {
	assert.True(t, IsValidPIN("0000"))
	assert.True(t, IsValidPIN("4821"))
	assert.False(t, IsValidPIN("123"))
	assert.False(t, IsValidPIN("12345"))
	assert.False(t, IsValidPIN("12a4"))
	assert.False(t, IsValidPIN(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-02-28")
	assert.True(t, ok)
	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("28-02-2026")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2026-02"))
	assert.False(t, IsValidMonth("2026-13"))
	assert.False(t, IsValidMonth("2026"))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("08:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.True(t, IsValidClockTime("8:30"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("08:60"))
	assert.False(t, IsValidClockTime("0800"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "pin", Message: "pin must be 4 digits"},
		{Field: "name", Message: "name is required"},
	}
	assert.Equal(t, map[string]string{
		"pin":  "pin must be 4 digits",
		"name": "name is required",
	}, errs.ToMap())
	assert.Contains(t, errs.Error(), "pin: pin must be 4 digits")
}
