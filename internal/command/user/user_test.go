package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithExtension(t *testing.T) {
	tests := []struct {
		url  string
		ext  string
		want string
	}{
		{
			"https://cdn.discordapp.com/avatars/1/abc.png",
			"jpg",
			"https://cdn.discordapp.com/avatars/1/abc.jpg",
		},
		{
			"https://cdn.discordapp.com/avatars/1/a_bc.png?size=1024",
			"gif",
			"https://cdn.discordapp.com/avatars/1/a_bc.gif?size=1024",
		},
		{
			"https://cdn.discordapp.com/avatars/1/abc.webp?size=1024",
			"png",
			"https://cdn.discordapp.com/avatars/1/abc.png?size=1024",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, withExtension(tt.url, tt.ext))
	}
}
