package config

import (
	"net/url"
	"strings"
	"testing"
)

func TestResolveLayers(t *testing.T) {
	tests := []struct {
		name         string
		fileSegments int
		maxSegments  int
		layers       []Overrides
		wantSegments int
		wantSeed     int64
		wantNoise    string
	}{
		{
			name:         "file only",
			fileSegments: 32,
			wantSegments: 32,
			wantNoise:    "simplex",
		},
		{
			name:         "flag beats file",
			fileSegments: 32,
			layers:       []Overrides{{Segments: 16}},
			wantSegments: 16,
			wantNoise:    "simplex",
		},
		{
			name:         "query beats flag",
			fileSegments: 32,
			layers:       []Overrides{{Segments: 16, Seed: 3, Noise: "perlin"}, {Segments: 8, Seed: 9}},
			wantSegments: 8,
			wantSeed:     9,
			wantNoise:    "perlin",
		},
		{
			name:         "zero fields keep earlier values",
			fileSegments: 32,
			layers:       []Overrides{{Seed: 5}, {}},
			wantSegments: 32,
			wantSeed:     5,
			wantNoise:    "simplex",
		},
		{
			name:         "cap lowers file segments",
			fileSegments: 256,
			maxSegments:  128,
			wantSegments: 128,
			wantNoise:    "simplex",
		},
		{
			name:         "cap leaves small grids",
			fileSegments: 64,
			maxSegments:  128,
			wantSegments: 64,
			wantNoise:    "simplex",
		},
		{
			name:         "override lifts cap",
			fileSegments: 256,
			maxSegments:  128,
			layers:       []Overrides{{}, {Segments: 200}},
			wantSegments: 200,
			wantNoise:    "simplex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Segments = tt.fileSegments
			if err := cfg.Resolve(tt.maxSegments, tt.layers...); err != nil {
				t.Fatal(err)
			}
			if cfg.Segments != tt.wantSegments {
				t.Fatalf("segments %d, want %d", cfg.Segments, tt.wantSegments)
			}
			if cfg.Seed != tt.wantSeed {
				t.Fatalf("seed %d, want %d", cfg.Seed, tt.wantSeed)
			}
			if cfg.Noise.Type != tt.wantNoise {
				t.Fatalf("noise %q, want %q", cfg.Noise.Type, tt.wantNoise)
			}
		})
	}
}

func TestResolveRejectsBadOverride(t *testing.T) {
	cfg := Default()
	err := cfg.Resolve(0, Overrides{Noise: "worley"})
	if err == nil || !strings.Contains(err.Error(), `unknown kind "worley"`) {
		t.Fatalf("expected noise error, got %v", err)
	}
}

func TestLookupOverrides(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Overrides
	}{
		{name: "empty", query: "", want: Overrides{}},
		{name: "all", query: "seed=42&segments=64&noise=perlin", want: Overrides{Seed: 42, Segments: 64, Noise: "perlin"}},
		{name: "negative seed", query: "seed=-7", want: Overrides{Seed: -7}},
		{name: "garbage ignored", query: "seed=abc&segments=-3", want: Overrides{}},
		{name: "zero segments ignored", query: "segments=0&noise=simplex", want: Overrides{Noise: "simplex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if got := LookupOverrides(values.Get); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
