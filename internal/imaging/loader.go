package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Load decodes an image file and converts it to a grayscale grid.
//
// Supported formats are PNG, JPEG, and GIF, selected by content rather than
// extension. The returned format string is the decoder name ("png", "jpeg",
// "gif").
func Load(path string) (*Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	g, err := FromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("failed to convert %s: %w", path, err)
	}
	return g, format, nil
}

// Save encodes the grid to path. The output format is chosen from the file
// extension (.png, .jpg/.jpeg, .gif, .tif/.tiff, .bmp).
func Save(g *Grid, path string) error {
	if err := imaging.Save(g.ToImage(), path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// Dimensions reports the size and format of an image file without fully
// converting it to a grid.
func Dimensions(path string) (width, height int, format string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to read image header %s (ext %s): %w",
			path, filepath.Ext(path), err)
	}
	return cfg.Width, cfg.Height, format, nil
}
