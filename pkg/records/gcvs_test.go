package records

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
)

func TestParseGCVS(t *testing.T) {
	var diags []Diagnostic
	rec, ok := ParseGCVS(gcvsLine(nil), collect(&diags))
	require.True(t, ok)
	require.Empty(t, diags)

	want := GCVSRecord{
		Name:             "V0344 Cyg",
		Type:             "EA",
		MaximumMagnitude: 10.5,
		MinimumMagnitude: 11.2,
		Epoch:            2450000.5,
		Period:           2.5,
		EclipseTime:      0.25,
		RightAscension:   deg((20 + 25.0/60 + 20.01/3600) * 15),
		Declination:      deg(39 + 30.0/60 + 12.5/3600),
		SpectralType:     "A2V",
	}
	if diff := cmp.Diff(want, rec, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ParseGCVS() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, rec.HasPeriod())
}

func TestParseGCVSNames(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"V0344 Cyg", "V0344 Cyg"},
		{"RT    And", "RT And"},
		{"R     Leo", "R Leo"},
		{"alf   Ori", "alf Ori"},
		{"bet   Per", "bet Per"},
		// index written flush against the greek letter
		{"alf1  CVn", "alf1 CVn"},
		{"alf 1 CVn", "alf 1 CVn"},
		{"V1500 Cyg:", "V1500 Cyg"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsName.start: tt.raw}), nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.Name)
		})
	}
}

func TestParseGCVSPeriod(t *testing.T) {
	t.Run("blank period is kept as zero", func(t *testing.T) {
		var diags []Diagnostic
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsPeriod.start: "   "}), collect(&diags))
		require.True(t, ok)
		assert.Zero(t, rec.Period)
		assert.Zero(t, rec.EclipseTime)
		assert.False(t, rec.HasPeriod())
		assert.Empty(t, diags)
	})

	for _, raw := range []string{"abc", "0.83:", "(2.5)", "NaN", "Inf"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			var diags []Diagnostic
			_, ok := ParseGCVS(gcvsLine(map[int]string{gcvsPeriod.start: raw}), collect(&diags))
			assert.False(t, ok)
			require.Len(t, diags, 1)
			assert.Equal(t, "period", diags[0].Err.Field)
			assert.ErrorIs(t, diags[0], errors.ErrInvalidInput)
		})
	}

	t.Run("rejects zero", func(t *testing.T) {
		var diags []Diagnostic
		_, ok := ParseGCVS(gcvsLine(map[int]string{gcvsPeriod.start: "0.0000"}), collect(&diags))
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.ErrorIs(t, diags[0], errors.ErrZeroPeriod)
	})
}

func TestParseGCVSMagnitudes(t *testing.T) {
	t.Run("amplitude in parentheses adds max", func(t *testing.T) {
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsMinMagnitude.start: " (0.75)"}), nil)
		require.True(t, ok)
		assert.InDelta(t, 11.25, rec.MinimumMagnitude, 1e-9)
	})

	t.Run("fainter of two minima wins", func(t *testing.T) {
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsAltMagnitude.start: "  12.05"}), nil)
		require.True(t, ok)
		assert.InDelta(t, 12.05, rec.MinimumMagnitude, 1e-9)
	})

	t.Run("second minimum alone is used", func(t *testing.T) {
		rec, ok := ParseGCVS(gcvsLine(map[int]string{
			gcvsMinMagnitude.start: "       ",
			gcvsAltMagnitude.start: "  10.90",
		}), nil)
		require.True(t, ok)
		assert.InDelta(t, 10.9, rec.MinimumMagnitude, 1e-9)
	})

	t.Run("band code is ignored silently", func(t *testing.T) {
		var diags []Diagnostic
		_, ok := ParseGCVS(gcvsLine(map[int]string{gcvsAltMagnitude.start: "   V   "}), collect(&diags))
		assert.True(t, ok)
		assert.Empty(t, diags)
	})

	t.Run("malformed minimum is reported and skipped", func(t *testing.T) {
		var diags []Diagnostic
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsAltMagnitude.start: " !!! "}), collect(&diags))
		require.True(t, ok)
		assert.InDelta(t, 11.2, rec.MinimumMagnitude, 1e-9)
		require.Len(t, diags, 1)
		assert.Equal(t, "minimumMagnitude", diags[0].Err.Field)
		assert.Equal(t, "V0344 Cyg", diags[0].Star)
	})

	t.Run("missing max rejects", func(t *testing.T) {
		var diags []Diagnostic
		_, ok := ParseGCVS(gcvsLine(map[int]string{gcvsMaxMagnitude.start: "        "}), collect(&diags))
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.ErrorIs(t, diags[0], errors.ErrMissingValue)
	})

	t.Run("missing minima rejects", func(t *testing.T) {
		var diags []Diagnostic
		_, ok := ParseGCVS(gcvsLine(map[int]string{gcvsMinMagnitude.start: "       "}), collect(&diags))
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.Equal(t, "minimumMagnitude", diags[0].Err.Field)
	})
}

func TestParseGCVSOptionalFields(t *testing.T) {
	t.Run("blank epoch is zero", func(t *testing.T) {
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsEpoch.start: "          "}), nil)
		require.True(t, ok)
		assert.Zero(t, rec.Epoch)
	})

	t.Run("bad epoch rejects", func(t *testing.T) {
		var diags []Diagnostic
		_, ok := ParseGCVS(gcvsLine(map[int]string{gcvsEpoch.start: "5000x.5   "}), collect(&diags))
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.Equal(t, "epoch", diags[0].Err.Field)
	})

	t.Run("blank percent gives no eclipse time", func(t *testing.T) {
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsPercent.start: "  "}), nil)
		require.True(t, ok)
		assert.Zero(t, rec.EclipseTime)
	})

	t.Run("bad percent is reported and kept", func(t *testing.T) {
		var diags []Diagnostic
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsPercent.start: "x:"}), collect(&diags))
		require.True(t, ok)
		assert.Zero(t, rec.EclipseTime)
		require.Len(t, diags, 1)
		assert.Equal(t, "eclipseTime", diags[0].Err.Field)
	})

	t.Run("unknown spectral type becomes empty", func(t *testing.T) {
		var diags []Diagnostic
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsSpectralType.start: "pec(e)"}), collect(&diags))
		require.True(t, ok)
		assert.Empty(t, rec.SpectralType)
		assert.Empty(t, diags)
	})

	t.Run("spectral type keeps trailing text", func(t *testing.T) {
		rec, ok := ParseGCVS(gcvsLine(map[int]string{gcvsSpectralType.start: "M5e-M8e"}), nil)
		require.True(t, ok)
		assert.Equal(t, "M5e-M8e", rec.SpectralType)
	})

	t.Run("short line without trailing fields", func(t *testing.T) {
		fields := gcvsFields()
		delete(fields, gcvsPeriod.start)
		delete(fields, gcvsPercent.start)
		delete(fields, gcvsSpectralType.start)
		rec, ok := ParseGCVS(line(gcvsWidth, fields)+"\r", nil)
		require.True(t, ok)
		assert.Zero(t, rec.Period)
		assert.Empty(t, rec.SpectralType)
	})
}

func TestParseGCVSRejects(t *testing.T) {
	tests := []struct {
		name  string
		field map[int]string
		want  string
	}{
		{"name without designation", map[int]string{gcvsName.start: "      Cyg "}, "name"},
		{"name without constellation", map[int]string{gcvsName.start: "1234567890"}, "name"},
		{"position block", map[int]string{gcvsRADec.start: "20 25 20 +39 30 12 "}, "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags []Diagnostic
			_, ok := ParseGCVS(gcvsLine(tt.field), collect(&diags))
			assert.False(t, ok)
			require.Len(t, diags, 1)
			assert.Equal(t, tt.want, diags[0].Err.Field)
			assert.Equal(t, constants.CatalogGCVS, diags[0].Catalog)
			assert.ErrorIs(t, diags[0], errors.ErrNoMatch)
		})
	}
}
