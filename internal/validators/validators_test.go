package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormat(t *testing.T) {
	assert.True(t, IsEmailFormat("hello@sherylslings.in"))
	assert.False(t, IsEmailFormat("Sheryl <hello@sherylslings.in>"))
	assert.False(t, IsEmailFormat("not-an-email"))
	assert.False(t, IsEmailFormat(""))
}

func TestIsEmailDomainValidRejectsMissingDomain(t *testing.T) {
	assert.False(t, IsEmailDomainValid("nobody@"))
	assert.False(t, IsEmailDomainValid("nobody"))
}

func TestIsHSLTriple(t *testing.T) {
	assert.True(t, IsHSLTriple("25 95% 53%"))
	assert.True(t, IsHSLTriple(" 210.5 40% 9.8% "))
	assert.False(t, IsHSLTriple("#ff8800"))
	assert.False(t, IsHSLTriple("25 95 53"))
	assert.False(t, IsHSLTriple("hsl(25, 95%, 53%)"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "919876543210", Digits("+91 98765-43210"))
	assert.True(t, IsDigits("919876543210"))
	assert.False(t, IsDigits("+91"))
	assert.False(t, IsDigits(""))
}
