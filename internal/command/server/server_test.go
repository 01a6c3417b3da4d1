package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Community", titleCase("COMMUNITY"))
	assert.Equal(t, "Animated Icon", titleCase("ANIMATED ICON"))
	assert.Equal(t, "Already Cased", titleCase("already cased"))
	assert.Equal(t, "", titleCase(""))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", yesNo(true))
	assert.Equal(t, "No", yesNo(false))
}
