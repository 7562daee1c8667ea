package formats

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// buildPaletteFile assembles a JASC-PAL fixture with the given color lines.
func buildPaletteFile(magic string, count string, colorLines []string) []byte {
	lines := append([]string{magic, "0100", count}, colorLines...)
	return []byte(strings.Join(lines, "\n") + "\n")
}

func TestParseJASCPalette_Valid(t *testing.T) {
	colorLines := make([]string, 16)
	for i := range colorLines {
		colorLines[i] = fmt.Sprintf("%d %d %d", i, i*2, 255-i)
	}

	pal, err := ParseJASCPalette(buildPaletteFile("JASC-PAL", "16", colorLines))
	if err != nil {
		t.Fatalf("ParseJASCPalette: %v", err)
	}
	if len(pal) != 16 {
		t.Fatalf("expected 16 colors, got %d", len(pal))
	}
	if pal[3] != (RGB{R: 3, G: 6, B: 252}) {
		t.Errorf("color 3 = %+v, want {3 6 252}", pal[3])
	}
}

func TestParseJASCPalette_CRLF(t *testing.T) {
	data := []byte("JASC-PAL\r\n0100\r\n1\r\n10 20 30\r\n")
	pal, err := ParseJASCPalette(data)
	if err != nil {
		t.Fatalf("ParseJASCPalette: %v", err)
	}
	if pal[0] != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("color 0 = %+v, want {10 20 30}", pal[0])
	}
}

func TestParseJASCPalette_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "bad magic",
			data: buildPaletteFile("RIFF-PAL", "1", []string{"0 0 0"}),
			want: ErrInvalidPaletteMagic,
		},
		{
			name: "non-numeric count",
			data: buildPaletteFile("JASC-PAL", "x", []string{"0 0 0"}),
			want: ErrMalformedPalette,
		},
		{
			name: "negative count",
			data: buildPaletteFile("JASC-PAL", "-2", nil),
			want: ErrMalformedPalette,
		},
		{
			name: "fewer lines than declared",
			data: buildPaletteFile("JASC-PAL", "16", []string{"0 0 0", "1 1 1"}),
			want: ErrMalformedPalette,
		},
		{
			name: "component out of range",
			data: buildPaletteFile("JASC-PAL", "1", []string{"0 300 0"}),
			want: ErrMalformedPalette,
		},
		{
			name: "wrong component count",
			data: buildPaletteFile("JASC-PAL", "1", []string{"0 0"}),
			want: ErrMalformedPalette,
		},
		{
			name: "missing header",
			data: []byte("JASC-PAL\n"),
			want: ErrMalformedPalette,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJASCPalette(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
