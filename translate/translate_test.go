package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert.Equal(t, "stack overflow", From("stack overflow"))
	assert.Equal(t, "opcode 8ab9", From("opcode %04x", 0x8ab9))
}
