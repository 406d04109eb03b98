package palette

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestHex(t *testing.T) {
	t.Run("with hash", func(t *testing.T) {
		c, err := Hex("#747474")
		if err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		var want = color.RGBA{R: 0x74, G: 0x74, B: 0x74, A: 0xff}
		if c != want {
			t.Errorf("Hex() = %v; want %v", c, want)
		}
	})

	t.Run("without hash", func(t *testing.T) {
		c, err := Hex("CC2C2A")
		if err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		var want = color.RGBA{R: 0xcc, G: 0x2c, B: 0x2a, A: 0xff}
		if c != want {
			t.Errorf("Hex() = %v; want %v", c, want)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := Hex("#12"); err == nil {
			t.Error("Expected an error, but got nil")
		}
	})
}

func TestPalette_Get(t *testing.T) {
	var p = Photoreceptor()
	if got := p.Get(UV); got != MustHex("#B540B7") {
		t.Errorf("Get(UV) = %v", got)
	}
	if got := p.Get(MG3); got != Unknown {
		t.Errorf("Get(MG3) = %v; want Unknown", got)
	}
}

func TestPalette_Merge(t *testing.T) {
	var (
		base     = Photoreceptor()
		override = Palette{Rods: MustHex("#000000")}
		merged   = base.Merge(override)
	)
	if merged.Get(Rods) != MustHex("#000000") {
		t.Errorf("override lost: %v", merged.Get(Rods))
	}
	if merged.Get(L) != base.Get(L) {
		t.Errorf("base color lost: %v", merged.Get(L))
	}
	if base.Get(Rods) != MustHex("#747474") {
		t.Errorf("Merge mutated the receiver")
	}
}

func TestDefaultsAreFresh(t *testing.T) {
	var a = Photoreceptor()
	a[Rods] = Unknown
	if Photoreceptor().Get(Rods) == Unknown {
		t.Error("default table shared between calls")
	}
}

func TestLoad(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "palette.txt")
	var content = "Category\tColor\nr\t#000000\nPR\t#ffffff\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("len = %d; want 2", len(p))
	}
	if p.Get(PR) != MustHex("#ffffff") {
		t.Errorf("Get(PR) = %v", p.Get(PR))
	}

	t.Run("missing file", func(t *testing.T) {
		p, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected a not exist error, but got: %v", err)
		}
		if p != nil {
			t.Errorf("Load() = %v; want nil", p)
		}
	})
}

func TestFromMapArray(t *testing.T) {
	_, err := FromMapArray([]map[string]string{{"Category": "", "Color": "#000000"}})
	if err == nil {
		t.Error("Expected an error, but got nil")
	}
	_, err = FromMapArray([]map[string]string{{"Category": "r", "Color": "zz"}})
	if err == nil {
		t.Error("Expected an error, but got nil")
	}
}
