package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("Completed"), "statuses are stored lower-case")
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("playing' OR '1'='1"))
}
