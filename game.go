package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/arena3d/common"
	"github.com/milk9111/arena3d/config"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/ecs/system"
	"github.com/milk9111/arena3d/prefabs"
	"golang.org/x/image/colornames"
)

// pixelsPerMetre scales the top-down debug map.
const pixelsPerMetre = 20

type Game struct {
	cfg     config.Config
	sim     *system.Simulation
	arena   *prefabs.Arena
	input   *Input
	changes <-chan prefabs.Change
	logger  *slog.Logger

	kills    int
	lastShot string
}

func NewGame(cfg config.Config, sim *system.Simulation, arena *prefabs.Arena, changes <-chan prefabs.Change, logger *slog.Logger) *Game {
	return &Game{
		cfg:     cfg,
		sim:     sim,
		arena:   arena,
		input:   NewInput(cfg.MouseSensitivity),
		changes: changes,
		logger:  logger,
	}
}

func (g *Game) Update() error {
	g.applyChanges()

	g.sim.Tick(g.input.Sample(), 1/float64(ebiten.TPS()))

	for _, evt := range g.sim.DrainEvents() {
		ce, ok := evt.Data.(component.CombatEvent)
		if !ok {
			continue
		}
		switch ce.Type {
		case component.EventHit:
			g.lastShot = fmt.Sprintf("%s hit, %d hp left", ce.Path, ce.Remaining)
		case component.EventDeath:
			g.kills++
		}
		g.logger.Debug("combat event", "type", ce.Type, "path", ce.Path, "target", ce.TargetID, "remaining", ce.Remaining)
	}
	return nil
}

// applyChanges reloads tuning and scripts edited on disk. A reload that fails
// keeps the previous values.
func (g *Game) applyChanges() {
	for {
		select {
		case change, ok := <-g.changes:
			if !ok {
				g.changes = nil
				return
			}
			g.reload(change)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	logger := g.logger.With("file", change.Name)

	if change.Kind == prefabs.ChangeScript {
		g.sim.Idle().Invalidate(change.Name)
		logger.Info("script reloaded")
		return
	}

	switch change.Name {
	case g.cfg.Player:
		spec, err := prefabs.LoadPlayerSpec(change.Name)
		if err != nil {
			logger.Warn("player reload failed", "err", err)
			return
		}
		g.sim.Motion().SetTuning(spec.Tuning())
		logger.Info("player tuning reloaded")
	case g.cfg.Weapon:
		spec, err := prefabs.LoadWeaponSpec(change.Name)
		if err != nil {
			logger.Warn("weapon reload failed", "err", err)
			return
		}
		g.sim.Weapon().ApplyTuning(spec.Weapon(), spec.FX())
		logger.Info("weapon tuning reloaded")
	default:
		logger.Info("change applies on restart")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.arena.GroundColor)

	eye := g.sim.Motion().State()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	toScreen := func(p mgl64.Vec3) (float32, float32) {
		return float32(float64(w)/2 + (p.X()-eye.Position.X())*pixelsPerMetre),
			float32(float64(h)/2 + (p.Z()-eye.Position.Z())*pixelsPerMetre)
	}

	for _, p := range g.arena.Props {
		c := p.Collider
		switch c.Shape {
		case component.ShapeBox:
			x, y := toScreen(c.Center.Sub(c.HalfExtents))
			vector.FillRect(screen, x, y, float32(c.HalfExtents.X()*2*pixelsPerMetre), float32(c.HalfExtents.Z()*2*pixelsPerMetre), p.Color, false)
		case component.ShapeCylinder:
			x, y := toScreen(c.Center)
			vector.FillCircle(screen, x, y, float32(c.Radius*pixelsPerMetre), p.Color, true)
		}
	}

	world := g.sim.World()
	for _, e := range g.arena.Enemies {
		g.drawEnemy(screen, world, e, toScreen)
	}

	g.arena.Physics.ForEachCollider(func(_ uint64, c component.Collider) {
		switch c.Shape {
		case component.ShapeBox:
			x, y := toScreen(c.Center.Sub(c.HalfExtents))
			vector.StrokeRect(screen, x, y, float32(c.HalfExtents.X()*2*pixelsPerMetre), float32(c.HalfExtents.Z()*2*pixelsPerMetre), 1, colornames.Lightgray, false)
		case component.ShapeCylinder:
			x, y := toScreen(c.Center)
			vector.StrokeCircle(screen, x, y, float32(c.Radius*pixelsPerMetre), 1, colornames.Lightgray, true)
		}
	})

	g.sim.Weapon().Pool().ForEachActive(func(_ system.ProjectileHandle, pr component.Projectile) {
		x, y := toScreen(pr.Position)
		vector.FillCircle(screen, x, y, 2, colornames.Yellow, true)
	})

	for _, fx := range g.sim.Effects().Active() {
		x, y := toScreen(fx.Position)
		switch fx.Kind {
		case component.EffectMuzzleFlash:
			vector.FillCircle(screen, x, y, 5, colornames.Orange, true)
		case component.EffectHitMarker:
			vector.StrokeCircle(screen, x, y, 6, 2, colornames.White, true)
		}
	}

	px, py := toScreen(eye.Position)
	_, forward := common.HorizontalBasis(eye.Yaw)
	vector.FillCircle(screen, px, py, 6, colornames.Deepskyblue, true)
	vector.StrokeLine(screen, px, py, px+float32(forward.X()*30), py+float32(forward.Z()*30), 2, colornames.Deepskyblue, true)

	ebitenutil.DebugPrint(screen, g.hud(eye))
}

func (g *Game) drawEnemy(screen *ebiten.Image, w *ecs.World, e prefabs.Enemy, toScreen func(mgl64.Vec3) (float32, float32)) {
	tr, ok := ecs.Get(w, e.Actor, component.TransformComponent.Kind())
	if !ok {
		return
	}
	clr := e.Color
	if h, ok := ecs.Get(w, e.Actor, component.HealthComponent.Kind()); ok && !h.IsAlive() {
		clr = colornames.Dimgray
	}

	radius := 0.5
	if c, ok := ecs.Get(w, e.Body, component.ColliderComponent.Kind()); ok {
		radius = c.Radius
	}

	x, y := toScreen(tr.Position)
	r := float32(radius * pixelsPerMetre)
	vector.FillCircle(screen, x, y, r, clr, true)

	_, facing := common.HorizontalBasis(tr.Yaw)
	vector.StrokeLine(screen, x, y, x+float32(facing.X())*r, y+float32(facing.Z())*r, 2, color.White, true)
}

func (g *Game) hud(eye component.Motion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f  FPS: %.1f  tick %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.Ticks())
	fmt.Fprintf(&b, "pos (%.2f, %.2f, %.2f)  yaw %.2f  pitch %.2f  grounded %v\n",
		eye.Position.X(), eye.Position.Y(), eye.Position.Z(), eye.Yaw, eye.Pitch, eye.Grounded)

	weapon := g.sim.Weapon()
	fmt.Fprintf(&b, "weapon %s  bullets %d/%d  kills %d\n", weapon.State(), weapon.Pool().ActiveCount(), weapon.Pool().Cap(), g.kills)
	if g.lastShot != "" {
		fmt.Fprintf(&b, "last: %s\n", g.lastShot)
	}
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		b.WriteString("click to capture the mouse, Esc to release\n")
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
