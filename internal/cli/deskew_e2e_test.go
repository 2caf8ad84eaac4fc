package cli

import (
	"path/filepath"
	"testing"

	"github.com/ironsheep/pagetool/internal/imaging"
)

// writeTestPage writes a white page with dark horizontal rules, the kind of
// structure the deskew search locks onto.
func writeTestPage(t *testing.T, dir string) string {
	t.Helper()
	g, err := imaging.NewGrid(120, 120)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(255)
	for _, row := range []int{30, 60, 90} {
		for dy := -1; dy <= 1; dy++ {
			for x := 10; x < 110; x++ {
				g.Set(x, row+dy, 0)
			}
		}
	}
	path := filepath.Join(dir, "page.png")
	if err := imaging.Save(g, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunDeskewEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPage(t, dir)
	out := filepath.Join(dir, "out.png")

	code := Run([]string{"deskew",
		"-in", in,
		"-out", out,
		"-min", "-2", "-max", "2", "-step", "0.5",
		"-max-resolution", "0",
	})
	if code != ExitOK {
		t.Fatalf("deskew exit = %d, want %d", code, ExitOK)
	}

	got, _, err := imaging.Load(out)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if got.Width != 120 || got.Height != 120 {
		t.Errorf("output dims %dx%d, want same-size 120x120", got.Width, got.Height)
	}
}

func TestRunDetectJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPage(t, dir)

	code := Run([]string{"detect",
		"-in", in, "-json",
		"-min", "-1", "-max", "1", "-step", "0.5",
		"-max-resolution", "0",
	})
	if code != ExitOK {
		t.Fatalf("detect exit = %d, want %d", code, ExitOK)
	}
}

func TestRunInfo(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPage(t, dir)

	if code := Run([]string{"info", "-in", in}); code != ExitOK {
		t.Errorf("info exit = %d, want %d", code, ExitOK)
	}
	if code := Run([]string{"info", "-in", filepath.Join(dir, "missing.png")}); code != ExitError {
		t.Errorf("info on missing file exit = %d, want %d", code, ExitError)
	}
}
