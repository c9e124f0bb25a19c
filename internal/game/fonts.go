package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/lottery-wheel/internal/config"
	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	button   *text.GoTextFace
	settings *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fonts{
		regular:  regular,
		bold:     bold,
		button:   &text.GoTextFace{Source: regular, Size: config.ButtonSize},
		settings: &text.GoTextFace{Source: regular, Size: config.SettingSize},
	}, nil
}

// face returns a face of the given size. Faces share the glyph cache of
// their source, so building one per frame is fine.
func (f *fonts) face(size int, style wheel.NumberStyle) *text.GoTextFace {
	src := f.regular
	if style == wheel.Bold {
		src = f.bold
	}
	return &text.GoTextFace{Source: src, Size: float64(size)}
}
