package system

import (
	"math"
	"testing"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
	"github.com/milk9111/zebulew/ecs/entity"
	"github.com/milk9111/zebulew/prefabs"
)

// testScene mirrors the arena layout with round numbers.
const testScene = `
name: test
clock: { max_delta: 0.25 }
floor:
  transform: { x: 500, y: 300 }
  bounds: { width: 1000, height: 600 }
player:
  transform: { x: 400, y: 300 }
  sprite: { asset: player, width: 40, height: 40 }
  bounds: { width: 40, height: 40 }
  muzzle_x: 30
  muzzle_y: 0
  armed_asset: player_armed
  armed_size: { width: 50, height: 50 }
  jump_stretch: 1.5
  jump_duration: 0.4
  audio:
    - { name: pickup }
    - { name: fire }
    - { name: melee }
    - { name: jump }
shadow:
  transform: { x: 0, y: 20 }
  sprite: { asset: shadow, shape: circle, width: 40, height: 40 }
  squash: 0.5
weapon:
  transform: { x: 700, y: 300 }
  sprite: { asset: weapon, width: 20, height: 10 }
  bounds: { width: 20, height: 10 }
projectile:
  sprite: { asset: projectile, shape: circle, width: 8, height: 8 }
  speed: 5
flash:
  sprite: { asset: flash, width: 100, height: 100, opacity: 0 }
  frames: 6
  peak: 0.6
joystick:
  transform: { x: 100, y: 500 }
  radius: 50
  hit_radius: 40
  return_duration: 0.1
  knob:
    sprite: { asset: joystick_knob, shape: circle, width: 60, height: 60 }
buttons:
  attack:
    transform: { x: 900, y: 500 }
    radius: 40
  jump:
    transform: { x: 800, y: 550 }
    radius: 30
  reload:
    transform: { x: 950, y: 400 }
    radius: 20
`

const (
	joyX, joyY       = 100.0, 500.0
	attackX, attackY = 900.0, 500.0
	jumpX, jumpY     = 800.0, 550.0
	reloadX, reloadY = 950.0, 400.0
)

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	return newWorldFromYAML(t, testScene)
}

func newWorldFromYAML(t *testing.T, src string) *ecs.World {
	t.Helper()
	spec, err := prefabs.DecodeSpec[prefabs.SceneSpec]([]byte(src))
	if err != nil {
		t.Fatalf("decode scene: %v", err)
	}
	w := ecs.NewWorld()
	if err := entity.BuildScene(w, &spec, entity.BuildOptions{}); err != nil {
		t.Fatalf("build scene: %v", err)
	}
	return w
}

func setDelta(t *testing.T, w *ecs.World, dt float64) {
	t.Helper()
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		t.Fatalf("world has no clock")
	}
	clock, _ := ecs.Get(w, e, component.ClockComponent.Kind())
	clock.Delta = dt
}

// push replaces the pointer queue with events, as InputSystem does each tick.
func push(t *testing.T, w *ecs.World, events ...component.PointerEvent) {
	t.Helper()
	queue, _, ok := pointerState(w)
	if !ok {
		t.Fatalf("world has no pointer queue")
	}
	queue.Events = append(queue.Events[:0], events...)
}

func down(id int, x, y float64) component.PointerEvent {
	return component.PointerEvent{ID: id, Phase: component.PointerDown, X: x, Y: y}
}

func move(id int, x, y float64) component.PointerEvent {
	return component.PointerEvent{ID: id, Phase: component.PointerMove, X: x, Y: y}
}

func up(id int, x, y float64) component.PointerEvent {
	return component.PointerEvent{ID: id, Phase: component.PointerUp, X: x, Y: y}
}

func run(w *ecs.World, systems ...ecs.System) {
	for _, s := range systems {
		s.Update(w)
	}
}

func mustLookup[T any](t *testing.T, w *ecs.World, name string, kind component.ComponentKind[T]) (ecs.Entity, *T) {
	t.Helper()
	e, v, ok := ecs.Lookup(w, name, kind)
	if !ok {
		t.Fatalf("scene node %q missing %T", name, v)
	}
	return e, v
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing %T", e, v)
	}
	return v
}

func knobTransform(t *testing.T, w *ecs.World) (*component.Joystick, *component.Transform) {
	t.Helper()
	_, joy := mustLookup(t, w, component.NodeJoystick, component.JoystickComponent.Kind())
	return joy, mustGet(t, w, ecs.Entity(joy.Knob), component.TransformComponent.Kind())
}

func playerState(t *testing.T, w *ecs.World) (ecs.Entity, *component.Player, *component.Transform) {
	t.Helper()
	e, p := mustLookup(t, w, component.NodePlayer, component.PlayerComponent.Kind())
	return e, p, mustGet(t, w, e, component.TransformComponent.Kind())
}

func intentOf(t *testing.T, w *ecs.World) *component.Intent {
	t.Helper()
	_, intent := mustLookup(t, w, component.NodePlayer, component.IntentComponent.Kind())
	return intent
}

func soundRequested(t *testing.T, w *ecs.World, name string) bool {
	t.Helper()
	player, _ := mustLookup(t, w, component.NodePlayer, component.PlayerComponent.Kind())
	return mustGet(t, w, player, component.AudioComponent.Kind()).Requested(name)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
