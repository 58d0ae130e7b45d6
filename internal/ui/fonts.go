// internal/ui/fonts.go
package ui

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает встроенный Go Regular нужного размера. При ошибке берём basicfont 7x13.
func LoadFace(size float64) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Warn().Err(err).Msg("font parse failed, using basicfont")
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Warn().Err(err).Float64("size", size).Msg("font face failed, using basicfont")
		return basicfont.Face7x13
	}
	return face
}
