package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	timepicker "github.com/iburimskiy/time-picker"
)

const (
	windowWidth  = 480
	windowHeight = 640

	pickerMargin = 20

	// Selection click sound
	clickFreq     = 880
	clickDuration = 25 * time.Millisecond
)

var sampleRate = beep.SampleRate(44100)

type game struct {
	picker  *timepicker.TimePicker
	audioOK bool
	lastErr error
}

func newGame() *game {
	g := &game{picker: timepicker.New()}
	g.picker.SetBounds(pickerMargin, pickerMargin,
		windowWidth-2*pickerMargin, windowHeight-2*pickerMargin-40)

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		g.lastErr = err
	} else {
		g.audioOK = true
	}
	g.picker.OnTimeChanged(func(hours, minutes int) { g.click() })
	return g
}

// click plays a short tone, like the detent click of a physical dial.
func (g *game) click() {
	if !g.audioOK {
		return
	}
	tone, err := generators.SinTone(sampleRate, clickFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), tone))
}

func (g *game) Update() error {
	g.picker.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.picker.Active() == timepicker.HoursDial {
			g.picker.SetActive(timepicker.MinutesDial)
		} else {
			g.picker.SetActive(timepicker.HoursDial)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.picker.SetAM(!g.picker.AM())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		hours, minutes := g.picker.Time()
		err := zenity.Info(
			fmt.Sprintf("Selected time: %02d:%02d", hours, minutes),
			zenity.Title("Time chosen"),
		)
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x26, B: 0x30, A: 0xff})
	g.picker.Draw(screen)

	status := "Drag the dial, tap the labels | Tab: switch, A: AM/PM, Enter: done, Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, windowHeight-24)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Circular Time Picker")

	if err := ebiten.RunGame(newGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
