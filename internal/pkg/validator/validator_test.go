package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("user.name+tag@sub.example.co.id"))
	assert.False(t, IsValidEmail("user"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@example"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-06-01")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("01-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("081234567890"))
	assert.True(t, IsValidPhoneNumber("6281234567890"))
	assert.True(t, IsValidPhoneNumber("0812-3456-7890"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("021234567890123456"))
}

func TestIsInSlice(t *testing.T) {
	opts := []string{"pending", "approved", "rejected"}
	assert.True(t, IsInSlice("approved", opts))
	assert.False(t, IsInSlice("paid", opts))
	assert.False(t, IsInSlice("", opts))
}
