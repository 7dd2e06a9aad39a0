package records

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/varstars/pkg/errors"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestParseRADec(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ra   float64
		dec  float64
	}{
		{"northern", "202520.01 +393012.5", deg((20 + 25.0/60 + 20.01/3600) * 15), deg(39 + 30.0/60 + 12.5/3600)},
		{"southern", "053516.0  -052323.0 ", deg((5 + 35.0/60 + 16.0/3600) * 15), deg(-5 + 23.0/60 + 23.0/3600)},
		{"signed degrees only", "120000.00 -123000.0", deg(180), deg(-11.5)},
		{"negative zero degrees", "120000.0 -003000.0", deg(180), deg(0.5)},
		{"origin", "000000.0 +000000.0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec, err := ParseRADec(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.ra, ra, 1e-12)
			assert.InDelta(t, tt.dec, dec, 1e-12)
		})
	}
}

func TestParseRADecRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"                   ",
		"2025 +3930",
		"202520.01+393012.5",
		"202520.01 393012.5 ",
	} {
		_, _, err := ParseRADec(raw)
		assert.ErrorIs(t, err, errors.ErrNoMatch, "input %q", raw)
	}
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, HoursToRadians(12, 0, 0), 1e-12)
	assert.InDelta(t, math.Pi/2, DegreesToRadians(90, 0, 0), 1e-12)
	assert.InDelta(t, deg(15.25), HoursToRadians(1, 1, 0), 1e-12)
}
