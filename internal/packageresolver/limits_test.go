package packageresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimits_Validate(t *testing.T) {
	valid := Limits{
		MaxTypeArgumentDepth: 16,
		MaxTypeArgumentWidth: 32,
		MaxTypeNodes:         256,
		MaxMoveValueDepth:    128,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Limits)
		wantErr string
	}{
		{"depth", func(l *Limits) { l.MaxTypeArgumentDepth = 0 }, "max_type_argument_depth"},
		{"width", func(l *Limits) { l.MaxTypeArgumentWidth = 0 }, "max_type_argument_width"},
		{"nodes", func(l *Limits) { l.MaxTypeNodes = -1 }, "max_type_nodes"},
		{"value depth", func(l *Limits) { l.MaxMoveValueDepth = 0 }, "max_move_value_depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)
			assert.ErrorContains(t, l.Validate(), tt.wantErr)
		})
	}
}
