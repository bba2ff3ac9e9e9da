package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-s", "-t"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values",
			args: []string{"-s", "secret", "-x", "1", "-t", "30"},
			want: []string{"-s", "secret", "-t", "30"},
		},
		{
			name: "equals form",
			args: []string{"-t=15", "-k=memory"},
			want: []string{"-t=15"},
		},
		{
			name: "flag without value before another flag",
			args: []string{"-s", "-t", "5"},
			want: []string{"-s", "-t", "5"},
		},
		{
			name: "positionals and unknown flags dropped",
			args: []string{"register", "-u", "alice"},
			want: []string{},
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFileFlag([]string{"-s", "x", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigFileFlag([]string{"-config=b.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-s", "x"}))
}
