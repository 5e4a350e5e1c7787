package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is the slice of device input the systems read. It is polled once
// per Update.
type Controls interface {
	CursorPosition() (float64, float64)
	Focused() bool
	MouseJustPressed() bool
	KeyJustPressed(key ebiten.Key) bool
}

// EbitenControls reads the live ebiten input state.
type EbitenControls struct{}

func (EbitenControls) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (EbitenControls) Focused() bool {
	return ebiten.IsFocused()
}

func (EbitenControls) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenControls) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
