package pronto

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr error
	}{
		{
			name:  "empty uses defaults",
			input: "",
			want:  DefaultConfig(),
		},
		{
			name: "full",
			input: `
title = "sketch"
width = 640
height = 480
backend = "headless"
background = "#102030"
vsync = false
key_repeat = true
`,
			want: Config{
				Title:      "sketch",
				Width:      640,
				Height:     480,
				Backend:    "headless",
				Background: &Color{0x10, 0x20, 0x30, 0xFF},
				VSync:      new(bool),
				KeyRepeat:  true,
			},
		},
		{
			name:  "fullscreen ignores size",
			input: "fullscreen = true\nwidth = 0\n",
			want:  Config{Title: "pronto", Width: 0, Height: 600, Fullscreen: true},
		},
		{
			name:    "invalid size",
			input:   "width = -5\n",
			wantErr: ErrInvalidSize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseConfig() = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() = %v", err)
			}
			if got.Title != tt.want.Title || got.Width != tt.want.Width || got.Height != tt.want.Height ||
				got.Fullscreen != tt.want.Fullscreen || got.Backend != tt.want.Backend || got.KeyRepeat != tt.want.KeyRepeat {
				t.Errorf("ParseConfig() = %+v, want %+v", got, tt.want)
			}
			if (got.Background == nil) != (tt.want.Background == nil) ||
				(got.Background != nil && *got.Background != *tt.want.Background) {
				t.Errorf("Background = %v, want %v", got.Background, tt.want.Background)
			}
			if (got.VSync == nil) != (tt.want.VSync == nil) ||
				(got.VSync != nil && *got.VSync != *tt.want.VSync) {
				t.Errorf("VSync = %v, want %v", got.VSync, tt.want.VSync)
			}
		})
	}
}

func TestParseConfigRejects(t *testing.T) {
	for _, input := range []string{
		"colour = \"#fff\"\n",
		"background = \"not a color\"\n",
		"width = \"wide\"\n",
	} {
		if _, err := ParseConfig([]byte(input)); err == nil {
			t.Errorf("ParseConfig(%q) should fail", input)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pronto.toml")
	if err := os.WriteFile(path, []byte("title = \"from file\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Title != "from file" || cfg.Width != 800 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) = %v, want ErrNotExist", err)
	}
}

func TestConfigOpen(t *testing.T) {
	bg := Blue
	vsync := false
	cfg := Config{Title: "cfg", Width: 50, Height: 40, Background: &bg, VSync: &vsync, KeyRepeat: true}

	r := NewRegistry()
	var got DeviceConfig
	r.Register("fake", 1, func(c DeviceConfig) (Device, error) {
		got = c
		return newFakeDevice(c.Width, c.Height), nil
	}, nil)

	w, err := cfg.Open(WithRegistry(r), WithRasterizer(&recordingRasterizer{}))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if w.Background() != Blue {
		t.Errorf("Background() = %v, want Blue", w.Background())
	}
	if got.Title != "cfg" || got.Width != 50 || got.Height != 40 || got.VSync || !got.KeyRepeat {
		t.Errorf("DeviceConfig = %+v", got)
	}
}
