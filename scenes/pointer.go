package scenes

import (
	"context"
	"math"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/game"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPull turns a mouse or touch drag into slingshot pulls. A drag only
// counts when it starts within cfg.Input.GrabRadius of the rest position.
type PointerPull struct {
	rest     gamemath.Point
	dragging bool
	touch    ebiten.TouchID
	isTouch  bool
	released bool

	touchIDs []ebiten.TouchID
}

// Sample reads the pointer once per tick. It never blocks and never fails.
func (p *PointerPull) Sample(ctx context.Context) (game.Pull, error) {
	p.released = false

	if !p.dragging {
		p.grab()
	} else if !p.held() {
		p.dragging = false
		p.released = true
	}
	if !p.dragging {
		return game.Pull{}, nil
	}

	x, y := p.position()
	return game.Pull{DX: x - p.rest.X, DY: y - p.rest.Y, Active: true}, nil
}

func (p *PointerPull) Released() bool { return p.released }

func (p *PointerPull) grab() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p.near(float64(x), float64(y)) {
			p.dragging, p.isTouch = true, false
		}
		return
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if p.near(float64(x), float64(y)) {
			p.dragging, p.isTouch, p.touch = true, true, id
			return
		}
	}
}

func (p *PointerPull) held() bool {
	if p.isTouch {
		return !inpututil.IsTouchJustReleased(p.touch)
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (p *PointerPull) position() (float64, float64) {
	if p.isTouch {
		x, y := ebiten.TouchPosition(p.touch)
		return float64(x), float64(y)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (p *PointerPull) near(x, y float64) bool {
	return math.Hypot(x-p.rest.X, y-p.rest.Y) <= cfg.Input.GrabRadius
}

// actionJustPressed reports whether any key bound to action went down this tick.
func actionJustPressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
