package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Go Backend Engineering", "go-backend-engineering"},
		{"  DSA in Java  ", "dsa-in-java"},
		{"C++ for Beginners!", "c-for-beginners"},
		{"100 Days of Code", "100-days-of-code"},
		{"---", ""},
		{"", ""},
		{"Déjà Vu", "déjà-vu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
