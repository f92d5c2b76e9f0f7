package timepicker

import (
	"bytes"
	"log"
	"sync"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontSrc  *text.GoTextFaceSource
)

func fontSource() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("failed to parse embedded font: %v", err)
		}
		fontSrc = s
	})
	return fontSrc
}

func faceOf(size float64) text.Face {
	const minSize = 6
	if size < minSize {
		size = minSize
	}
	return &text.GoTextFace{Source: fontSource(), Size: size}
}
