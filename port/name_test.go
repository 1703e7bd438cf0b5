package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedPortName(t *testing.T) {
	tests := []struct {
		name    string
		allowed bool
	}{
		{"target_pose", true},
		{"Speed", true},
		{"a", true},
		{"goal2", true},
		{"vitesse_é", true},
		{"Ωmega", false},
		{"éa", false},
		{"ßpeed", false},
		{"", false},
		{"name", false},
		{"ID", false},
		{"1abc", false},
		{"_hidden", false},
		{"-dash", false},
		{" space", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, IsAllowedPortName(tt.name))
		})
	}
}

func TestIsAllowedPortName_CaseSensitiveReserved(t *testing.T) {
	assert.True(t, IsAllowedPortName("Name"))
	assert.True(t, IsAllowedPortName("id"))
	assert.True(t, IsAllowedPortName("names"))
}

func TestIsReservedName(t *testing.T) {
	assert.True(t, IsReservedName("name"))
	assert.True(t, IsReservedName("ID"))
	assert.False(t, IsReservedName("Id"))
}
