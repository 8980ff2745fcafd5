package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("amara@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.domain.org"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("passw0rd1"))
	assert.False(t, ValidatePassword("short1"))
	assert.False(t, ValidatePassword("onlyletters"))
	assert.False(t, ValidatePassword("12345678"))
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Amara O'Neil-Smith"))
	assert.False(t, ValidateName(""))
	assert.False(t, ValidateName("rob3rt"))
}

func TestValidateNumericString(t *testing.T) {
	assert.True(t, ValidateNumericString("28", 1, 120))
	assert.False(t, ValidateNumericString("150", 1, 120))
	assert.False(t, ValidateNumericString("abc", 1, 120))
	// min > max skips the range check
	assert.True(t, ValidateNumericString("165.5", 1, 0))
}
