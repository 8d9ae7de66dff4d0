package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultRules(), Rules{}.withDefaults())
	assert.NoError(t, DefaultRules().Validate())

	custom := Rules{Kiriage: true, StickSweep: SweepDiscarderOrder, DrawRotation: DrawRotationReset, NotenTotal: 1500}
	assert.Equal(t, custom, custom.withDefaults())
}

func TestRulesValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rules   Rules
		wantErr string
	}{
		{"unknown sweep", Rules{StickSweep: "split", DrawRotation: DrawRotationIncrement}, "unknown stick sweep"},
		{"unknown rotation", Rules{StickSweep: SweepDealerOrder, DrawRotation: "hold"}, "unknown draw rotation"},
		{"negative noten total", Rules{StickSweep: SweepDealerOrder, DrawRotation: DrawRotationReset, NotenTotal: -1}, "noten total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.rules.Validate(), tt.wantErr)
		})
	}
}
