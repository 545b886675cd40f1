package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolateXDG points the XDG config lookup at an empty temp directory.
func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestDefaultsValid(t *testing.T) {
	if err := DefaultMinesConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg MinesConfig
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	want := DefaultMinesConfig()
	want.Source = ""
	if cfg != want {
		t.Errorf("embedded config = %+v, expected %+v", cfg, want)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mines.yaml", "difficulty: expert\ncustom:\n  rows: 20\n  cols: 20\n  mines: 50\n")

	cfg, err := LoadMines(path)
	if err != nil {
		t.Fatalf("LoadMines() error: %v", err)
	}
	if cfg.DefaultDifficulty() != minesweeper.DifficultyExpert {
		t.Errorf("difficulty = %q, expected expert", cfg.DefaultDifficulty())
	}
	if cfg.Board() != (minesweeper.Config{Rows: 20, Cols: 20, Mines: 50}) {
		t.Errorf("Board() = %v", cfg.Board())
	}
	if cfg.Theme.Flag != "⚑" || cfg.Timer.TickMS != 20 {
		t.Error("keys missing from the file should keep their defaults")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "difficulty: [\n"), false},
		{"too many mines", writeFile(t, dir, "mines.yaml", "custom: {rows: 9, cols: 9, mines: 81}\n"), true},
		{"bad difficulty", writeFile(t, dir, "diff.yaml", "difficulty: insane\n"), true},
		{"bad glyph", writeFile(t, dir, "theme.yaml", "theme: {flag: \"FF\"}\n"), true},
		{"bad tick", writeFile(t, dir, "tick.yaml", "timer: {tick_ms: 0}\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMines(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			var invalid *InvalidConfig
			if got := errors.As(err, &invalid); got != tc.invalid {
				t.Errorf("errors.As(InvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadUserConfig(t *testing.T) {
	dir := isolateXDG(t)
	path := writeFile(t, dir, UserConfigFile, "difficulty: intermediate\n")

	cfg, err := LoadMines("")
	if err != nil {
		t.Fatalf("LoadMines() error: %v", err)
	}
	if cfg.DefaultDifficulty() != minesweeper.DifficultyIntermediate {
		t.Errorf("difficulty = %q, expected intermediate", cfg.Difficulty)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := isolateXDG(t)
	// An invalid user file is skipped rather than failing the load.
	writeFile(t, dir, UserConfigFile, "custom: {rows: 3}\n")

	cfg, err := LoadMines("")
	if err != nil {
		t.Fatalf("LoadMines() error: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
	if cfg.DefaultDifficulty() != minesweeper.DifficultyBeginner {
		t.Errorf("difficulty = %q, expected beginner", cfg.Difficulty)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    minesweeper.Difficulty
		wantErr bool
	}{
		{"beginner", minesweeper.DifficultyBeginner, false},
		{"", minesweeper.DifficultyBeginner, false},
		{"  Expert ", minesweeper.DifficultyExpert, false},
		{"hard", minesweeper.DifficultyExpert, false},
		{"normal", minesweeper.DifficultyIntermediate, false},
		{"CUSTOM", minesweeper.DifficultyCustom, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultMinesConfig()

	if cfg.TickRate() != 50 {
		t.Errorf("TickRate() = %d, expected 50", cfg.TickRate())
	}
	if cfg.ChordWindow() != 50*time.Millisecond {
		t.Errorf("ChordWindow() = %v, expected 50ms", cfg.ChordWindow())
	}

	cfg.Theme.Mine = ""
	sym := cfg.Symbols()
	if sym.Flag != '⚑' || sym.Covered != '■' {
		t.Errorf("Symbols() = %+v", sym)
	}
	if sym.Mine != 0 {
		t.Error("empty theme entries should map to zero runes")
	}
}
