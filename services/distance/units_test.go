package distance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleUnit_KilometersToMiles(t *testing.T) {
	require.Equal(t, 248.55, ToggleUnit(400.00, Miles))
	require.Equal(t, 6218.4, ToggleUnit(10007.54, Miles))
}

func TestToggleUnit_MilesToKilometers(t *testing.T) {
	require.Equal(t, 400.0, ToggleUnit(248.55, Kilometers))
}

func TestToggleUnit_RoundTrip(t *testing.T) {
	for _, km := range []float64{0, 100, 400, 999.99, 1234.56, 5000} {
		mi := ToggleUnit(km, Miles)
		back := ToggleUnit(mi, Kilometers)
		require.InDelta(t, km, back, 0.0100001, "round trip of %v via %v miles", km, mi)
	}
}

func TestConvert(t *testing.T) {
	require.Equal(t, 400.0, Convert(400.004, Kilometers))
	require.Equal(t, 248.55, Convert(400, Miles))
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"", Kilometers, false},
		{"km", Kilometers, false},
		{"Kilometers", Kilometers, false},
		{"miles", Miles, false},
		{" MI ", Miles, false},
		{"furlongs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnit(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUnitAbbrev(t *testing.T) {
	require.Equal(t, "km", Kilometers.Abbrev())
	require.Equal(t, "miles", Miles.Abbrev())
}

func TestFormulaByName(t *testing.T) {
	iss := satellite(51.5, -0.1, 0)
	user := satellite(40.7, -74.0, 0)

	f, err := FormulaByName("")
	require.NoError(t, err)
	require.Equal(t, LegacyHaversine(iss, user), f(iss, user))

	f, err = FormulaByName("haversine")
	require.NoError(t, err)
	require.Equal(t, Haversine(iss, user), f(iss, user))

	_, err = FormulaByName("vincenty")
	require.Error(t, err)
}
