package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"ProceduralTerrainGen/heightfield"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func sampleField() *heightfield.Field {
	g := heightfield.GridSpec{Width: 4, Height: 2, SegmentsX: 2, SegmentsY: 1}
	table := heightfield.ReferenceBiomes()
	elev := []float64{-10, 0, 10, 20, 30, 40}
	f := &heightfield.Field{Grid: g, Elevations: elev, InRiver: make([]bool, len(elev))}
	for _, e := range elev {
		f.Colors = append(f.Colors, table.Classify(e))
	}
	return f
}

func TestHeightmapNormalizes(t *testing.T) {
	img := Heightmap(sampleField())
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds %v, want 3x2", b)
	}
	if got := img.Gray16At(0, 0).Y; got != 0 {
		t.Fatalf("lowest vertex %d, want 0", got)
	}
	if got := img.Gray16At(2, 1).Y; got != 0xffff {
		t.Fatalf("highest vertex %d, want 65535", got)
	}
	if a, b := img.Gray16At(1, 0).Y, img.Gray16At(2, 0).Y; a >= b {
		t.Fatalf("gray must increase with elevation: %d then %d", a, b)
	}
}

func TestHeightmapFlatField(t *testing.T) {
	f := sampleField()
	for i := range f.Elevations {
		f.Elevations[i] = 7
	}
	img := Heightmap(f)
	if got := img.Gray16At(1, 1).Y; got != 0 {
		t.Fatalf("flat field should be black, got %d", got)
	}
}

func TestColormap(t *testing.T) {
	img := Colormap(sampleField())
	want := color.RGBA{R: 0x00, G: 0x00, B: 0x66, A: 0xff}
	if got := img.RGBAAt(0, 0); got != want {
		t.Fatalf("deep water pixel %v, want %v", got, want)
	}
	want = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if got := img.RGBAAt(2, 1); got != want {
		t.Fatalf("snow pixel %v, want %v", got, want)
	}
}

func TestEncodeFormats(t *testing.T) {
	f := sampleField()
	tests := []struct {
		format Format
		img    image.Image
		decode func(*bytes.Reader) (image.Image, error)
	}{
		{format: FormatTIFF, img: Heightmap(f), decode: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }},
		{format: FormatBMP, img: Colormap(f), decode: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Encode(&buf, tt.img, tt.format); err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		got, err := tt.decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("%s decode: %v", tt.format, err)
		}
		if got.Bounds() != tt.img.Bounds() {
			t.Fatalf("%s bounds %v, want %v", tt.format, got.Bounds(), tt.img.Bounds())
		}
	}
	if err := Encode(&bytes.Buffer{}, Colormap(f), "gif"); err == nil {
		t.Fatal("unknown format should fail")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"tiff": FormatTIFF, ".TIF": FormatTIFF, "bmp": FormatBMP} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("png"); err == nil {
		t.Fatal("png is not supported")
	}
}
