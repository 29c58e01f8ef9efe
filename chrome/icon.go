package chrome

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	_ "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
)

// ErrIconMissing is returned when the window icon asset cannot be found.
// There is no fallback icon.
var ErrIconMissing = errors.New("chrome: window icon missing")

// LoadIcon decodes the icon at name in fsys. PNG, BMP and ICO files are
// accepted.
func LoadIcon(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrIconMissing)
		}
		return nil, fmt.Errorf("open icon %s: %w", name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("icon %s (%s) is empty: %w", name, format, ErrIconMissing)
	}
	return img, nil
}
