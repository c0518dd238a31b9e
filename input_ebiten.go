package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scrollcore/input"
)

var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = []ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

var functionKeys = []ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
	ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
}

// ebitenSource maps ebiten keys onto the tracker's key codes.
type ebitenSource struct {
	toEbiten map[int]ebiten.Key
	toCode   map[ebiten.Key]int

	pressed  []ebiten.Key
	released []ebiten.Key
}

func newEbitenSource() *ebitenSource {
	s := &ebitenSource{
		toEbiten: make(map[int]ebiten.Key),
		toCode:   make(map[ebiten.Key]int),
	}
	s.add(input.KeyBackspace, ebiten.KeyBackspace)
	s.add(input.KeyTab, ebiten.KeyTab)
	s.add(input.KeyEnter, ebiten.KeyEnter)
	s.add(input.KeyShift, ebiten.KeyShift)
	s.add(input.KeyControl, ebiten.KeyControl)
	s.add(input.KeyAlt, ebiten.KeyAlt)
	// edge events report the sided keys
	s.toCode[ebiten.KeyShiftLeft] = input.KeyShift
	s.toCode[ebiten.KeyShiftRight] = input.KeyShift
	s.toCode[ebiten.KeyControlLeft] = input.KeyControl
	s.toCode[ebiten.KeyControlRight] = input.KeyControl
	s.toCode[ebiten.KeyAltLeft] = input.KeyAlt
	s.toCode[ebiten.KeyAltRight] = input.KeyAlt
	s.add(input.KeyEscape, ebiten.KeyEscape)
	s.add(input.KeySpace, ebiten.KeySpace)
	s.add(input.KeyLeft, ebiten.KeyArrowLeft)
	s.add(input.KeyUp, ebiten.KeyArrowUp)
	s.add(input.KeyRight, ebiten.KeyArrowRight)
	s.add(input.KeyDown, ebiten.KeyArrowDown)
	for i, k := range letterKeys {
		s.add(input.KeyA+i, k)
	}
	for i, k := range digitKeys {
		s.add(input.Key0+i, k)
	}
	for i, k := range functionKeys {
		s.add(input.KeyF1+i, k)
	}
	return s
}

func (s *ebitenSource) add(code int, key ebiten.Key) {
	s.toEbiten[code] = key
	s.toCode[key] = code
}

func (s *ebitenSource) IsKeyDown(code int) bool {
	key, ok := s.toEbiten[code]
	return ok && ebiten.IsKeyPressed(key)
}

func (s *ebitenSource) IsMouseDown(button input.MouseButton) bool {
	switch button {
	case input.MouseLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case input.MouseRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	}
	return false
}

// Apply feeds this frame's key edges into the tracker, then re-syncs any key
// whose release was missed.
func (s *ebitenSource) Apply(t *input.Tracker) {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	for _, key := range s.pressed {
		if code, ok := s.toCode[key]; ok {
			t.SetKey(code, true)
		}
	}
	for _, key := range s.released {
		if code, ok := s.toCode[key]; ok {
			t.SetKey(code, false)
		}
	}
	t.RefreshEdgeState(s)
	t.SetLeftMouse(s.IsMouseDown(input.MouseLeft))
	t.SetRightMouse(s.IsMouseDown(input.MouseRight))
}
