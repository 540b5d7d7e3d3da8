package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"917772010", "917772010"},
		{"+351 91 777-2010", "917772010"},
		{"00351917772010", "917772010"},
		{"+351919876543", "919876543"},
		{"91 777", "91777"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), tt.raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"+351 91 777-2010", "00351917772010", "1234", "", "917772010"}
	for _, raw := range inputs {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), raw)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("+351 91 777-2010", "917772010"))
	assert.True(t, Equal("00351919876543", "+351919876543"))
	assert.False(t, Equal("917772010", "917772011"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin("+351 917 772 010", "917772010"))
	assert.False(t, IsAdmin("+351919876543", "917772010"))
}

func TestMask(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "****"},
		{"1234", "****"},
		{"12345", "123445"},
		{"123456", "123456"},
		{"9177720", "9177*20"},
		{"917772010", "9177***10"},
		{"+351917772010", "+351*******10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mask(tt.raw), tt.raw)
	}
}
