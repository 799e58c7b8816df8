package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidHexColor(t *testing.T) {
	valid := []string{"#e0e0e0", "#d0d0d0", "#FFF", "#abc", "#A1B2C3"}
	for _, s := range valid {
		assert.True(t, ValidHexColor(s), s)
	}

	invalid := []string{"", "#", "e0e0e0", "#e0e0e", "#e0e0e0e0", "#ggg", "red", "# abc"}
	for _, s := range invalid {
		assert.False(t, ValidHexColor(s), s)
	}
}
