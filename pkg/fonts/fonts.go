// Package fonts resolves font references to loadable TrueType fonts.
//
// A reference is resolved in three steps:
//   - empty reference: the bundled default face (Go Regular, shipped with
//     golang.org/x/image, so no font files are needed at runtime)
//   - a path to an existing file: loaded directly
//   - anything else: treated as a family name and searched for in the
//     system font directories via github.com/flopp/go-findfont
//
// Parsed fonts are cached per reference, so repeated face construction
// during shrink-to-fit text layout stays cheap.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ggekit/gge/pkg/errors"
)

// Font is a parsed TrueType font ready for face construction.
type Font = truetype.Font

var (
	mu    sync.Mutex
	cache = map[string]*truetype.Font{}
)

// Default returns the bundled default font (Go Regular).
func Default() *truetype.Font {
	f, err := Resolve("")
	if err != nil {
		// goregular is compiled in; a parse failure is a build defect.
		panic(err)
	}
	return f
}

// Resolve maps a font reference to a parsed TrueType font. An empty ref
// yields the bundled default. A ref that looks like a file path must
// exist; a bare name falls back to the system font search. Failures are
// reported as FONT_NOT_FOUND.
func Resolve(ref string) (*truetype.Font, error) {
	mu.Lock()
	defer mu.Unlock()

	if f, ok := cache[ref]; ok {
		return f, nil
	}

	data, err := load(ref)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "font %q is not a valid TrueType font", ref)
	}
	cache[ref] = f
	return f, nil
}

// Face builds a rendering face for the font at the given pixel size.
// A 72 DPI mapping is used so that font size and pixel size coincide.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size: size,
		DPI:  72,
	})
}

func load(ref string) ([]byte, error) {
	if ref == "" {
		return goregular.TTF, nil
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot read font file %s", ref)
		}
		return data, nil
	}

	// Not a file on disk: try the system font search by name.
	path, err := findfont.Find(ref)
	if err != nil {
		return nil, errors.New(errors.ErrCodeFontNotFound, "font file %s not found", ref)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot read font file %s", path)
	}
	return data, nil
}
