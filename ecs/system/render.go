package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/zebulew/assets"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// RenderSystem draws sprites as flat shapes in render layer order. It does
// nothing on Update.
type RenderSystem struct {
	debug bool
	white *ebiten.Image
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{debug: debug}
}

func (r *RenderSystem) Update(*ecs.World) {}

type drawItem struct {
	e      ecs.Entity
	layer  int
	sprite *component.Sprite
	t      *component.Transform
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	var items []drawItem
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		if s.Hidden || s.Opacity <= 0 {
			return
		}
		layer := 0
		if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = rl.Index
		}
		items = append(items, drawItem{e: e, layer: layer, sprite: s, t: t})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		x, y, _ := worldPosition(w, it.e)
		clr := fade(assets.Color(it.sprite.Asset), it.sprite.Opacity)
		sx, sy := scale(it.t)
		width := float32(it.sprite.Width * sx)
		height := float32(it.sprite.Height * sy)

		switch it.sprite.Shape {
		case component.ShapeCircle:
			radius := math.Max(float64(width), float64(height)) / 2
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
		default:
			if it.t.Rotation == 0 {
				vector.DrawFilledRect(screen, float32(x)-width/2, float32(y)-height/2, width, height, clr, false)
				continue
			}
			r.drawRotatedRect(screen, x, y, float64(width), float64(height), it.t.Rotation, clr)
			tip := math.Max(float64(width), float64(height)) * 0.75
			vector.StrokeLine(screen, float32(x), float32(y),
				float32(x+math.Cos(it.t.Rotation)*tip), float32(y+math.Sin(it.t.Rotation)*tip),
				2, color.White, true)
		}
	}

	if r.debug {
		ebitenutil.DebugPrint(screen, debugText(w))
	}
}

func (r *RenderSystem) drawRotatedRect(screen *ebiten.Image, cx, cy, w, h, angle float64, clr color.RGBA) {
	if r.white == nil {
		r.white = ebiten.NewImage(3, 3)
		r.white.Fill(color.White)
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	var path vector.Path
	for i, c := range [][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}} {
		px := float32(cx + c[0]*cos - c[1]*sin)
		py := float32(cy + c[0]*sin + c[1]*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, r.white.SubImage(r.white.Bounds().Inset(1)).(*ebiten.Image), op)
}

func scale(t *component.Transform) (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// fade returns c premultiplied by opacity.
func fade(c color.Color, opacity float64) color.RGBA {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if opacity >= 1 {
		return rgba
	}
	k := math.Max(0, opacity)
	return color.RGBA{
		R: uint8(float64(rgba.R) * k),
		G: uint8(float64(rgba.G) * k),
		B: uint8(float64(rgba.B) * k),
		A: uint8(float64(rgba.A) * k),
	}
}

func debugText(w *ecs.World) string {
	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if _, joy, ok := ecs.Lookup(w, component.NodeJoystick, component.JoystickComponent.Kind()); ok {
		if knobT, ok := ecs.Get(w, ecs.Entity(joy.Knob), component.TransformComponent.Kind()); ok {
			text += fmt.Sprintf("\nknob: (%.1f, %.1f) active=%t returning=%t", knobT.X, knobT.Y, joy.Active, joy.Returning)
		}
	}
	if player, p, ok := ecs.Lookup(w, component.NodePlayer, component.PlayerComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			text += fmt.Sprintf("\nplayer: (%.1f, %.1f) facing=%.2f armed=%t", t.X, t.Y, p.Facing, p.Armed)
		}
	}
	if _, proj, ok := ecs.Lookup(w, component.NodeProjectile, component.ProjectileComponent.Kind()); ok {
		text += fmt.Sprintf("\nprojectile: active=%t ticks=%d", proj.Active, proj.Ticks)
	}
	return text
}
