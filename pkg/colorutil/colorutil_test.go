package colorutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"province-mapper/pkg/colorutil"
)

func TestParseRGB(t *testing.T) {
	cases := []struct {
		name string
		spec string
		want colorutil.RGB
	}{
		{"HashHex", "#303030", colorutil.RGB{R: 0x30, G: 0x30, B: 0x30}},
		{"BareHex", "ff00aa", colorutil.RGB{R: 255, G: 0, B: 0xaa}},
		{"UppercaseHex", "#FFFFFF", colorutil.White},
		{"Decimal", "12, 34, 56", colorutil.RGB{R: 12, G: 34, B: 56}},
		{"DecimalNoSpaces", "0,0,0", colorutil.Black},
		{"Whitespace", "  #000001 ", colorutil.RGB{B: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := colorutil.ParseRGB(tc.spec)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseRGBErrors(t *testing.T) {
	bad := []struct {
		name string
		spec string
	}{
		{"ShortHex", "#fff"},
		{"LongHex", "#1234567"},
		{"NonHexDigits", "#zzzzzz"},
		{"WrongArity", "1,2"},
		{"FourComponents", "1,2,3,4"},
		{"OutOfRange", "0,256,0"},
		{"Negative", "-1,0,0"},
		{"NonInteger", "a,b,c"},
		{"Empty", ""},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := colorutil.ParseRGB(tc.spec)
			require.Error(t, err)
		})
	}
}

func TestHex(t *testing.T) {
	require.Equal(t, "#000000", colorutil.Black.Hex())
	require.Equal(t, "#ffffff", colorutil.White.Hex())
	require.Equal(t, "#0a0b0c", colorutil.RGB{R: 10, G: 11, B: 12}.Hex())
}

func TestParseHexRoundTrip(t *testing.T) {
	c := colorutil.RGB{R: 0x12, G: 0xab, B: 0xef}
	parsed, err := colorutil.ParseRGB(c.Hex())
	require.NoError(t, err)
	require.Equal(t, c, parsed)
}
