package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateSlice(t *testing.T) {
	input := []string{"Old Town", "Berzengi", "Old Town", "  ", "", "Berzengi", " Parahat "}

	assert.Equal(t, []string{"Old Town", "Berzengi", "Parahat"}, DeduplicateSlice(input))
}

func TestDeduplicateSliceEmpty(t *testing.T) {
	assert.Empty(t, DeduplicateSlice(nil))
	assert.NotNil(t, DeduplicateSlice(nil))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, 3, Min(7, 3))
	assert.Equal(t, -1, Min(-1, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.45, Clamp(0.2, 0.45, 0.92))
	assert.Equal(t, 0.92, Clamp(1.5, 0.45, 0.92))
	assert.Equal(t, 0.7, Clamp(0.7, 0.45, 0.92))
}
