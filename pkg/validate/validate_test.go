package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardNumber(t *testing.T) {
	assert.True(t, IsCardNumber("4242424242424242"))
	assert.True(t, IsCardNumber("4242 4242 4242 4242"))
	assert.False(t, IsCardNumber("4242424242424241"))
	assert.False(t, IsCardNumber("not a card"))
}

func TestIsIBAN(t *testing.T) {
	assert.True(t, IsIBAN("IR123456789012345678901234"))
	assert.True(t, IsIBAN("ir123456789012345678901234"))
	assert.False(t, IsIBAN("IR1234"), "too few digits")
	assert.False(t, IsIBAN("IR12345678901234567890123456"), "too many digits")
	assert.False(t, IsIBAN("DE123456789012345678901234"), "wrong prefix")
	assert.False(t, IsIBAN("IR12345678901234567890123x"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("09121234567"))
	assert.False(t, IsPhone("9121234567"))
	assert.False(t, IsPhone("0912123456"))
}
