package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/arena3d/ecs/component"
)

// Input samples raw key levels and mouse look each frame. The pointer is
// captured on click and released with Escape; the simulation only reacts
// while it is captured.
type Input struct {
	sensitivity float64

	lastX, lastY int
	primed       bool
}

func NewInput(sensitivity float64) *Input {
	return &Input{sensitivity: sensitivity}
}

func (i *Input) Sample() component.Input {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if ebiten.CursorMode() != ebiten.CursorModeCaptured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		i.primed = false
	}
	active := ebiten.CursorMode() == ebiten.CursorModeCaptured

	in := component.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:     ebiten.IsKeyPressed(ebiten.KeySpace),
		Fire:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Active:   active,
	}

	// First frame after capture has no previous cursor position.
	mx, my := ebiten.CursorPosition()
	if active && i.primed {
		in.LookYaw = -float64(mx-i.lastX) * i.sensitivity
		in.LookPitch = -float64(my-i.lastY) * i.sensitivity
	}
	i.lastX, i.lastY = mx, my
	i.primed = active

	return in
}
