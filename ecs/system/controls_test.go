package system

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

func TestButtonsRaiseIntentsOnPress(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		check func(*component.Intent) bool
	}{
		{"attack", attackX, attackY, func(i *component.Intent) bool { return i.Attack && !i.Jump && !i.Reload }},
		{"jump_edge", jumpX + 29, jumpY, func(i *component.Intent) bool { return i.Jump && !i.Attack }},
		{"reload", reloadX, reloadY - 10, func(i *component.Intent) bool { return i.Reload && !i.Attack }},
		{"reload_diagonal_edge", reloadX + 12, reloadY + 16, func(i *component.Intent) bool { return i.Reload && !i.Attack }},
		{"jump_just_outside", jumpX + 31, jumpY, func(i *component.Intent) bool { return !i.Attack && !i.Jump && !i.Reload }},
		{"miss", 600, 100, func(i *component.Intent) bool { return !i.Attack && !i.Jump && !i.Reload }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			push(t, w, down(4, tc.x, tc.y))
			run(w, NewButtonSystem())
			if intent := intentOf(t, w); !tc.check(intent) {
				t.Fatalf("unexpected intents %+v", *intent)
			}
		})
	}
}

func TestHeldButtonDoesNotRepeat(t *testing.T) {
	w := newTestWorld(t)
	buttons := NewButtonSystem()
	attack := NewAttackSystem()
	intent := intentOf(t, w)

	push(t, w, down(1, attackX, attackY))
	run(w, buttons, attack)
	if intent.Attack || !soundRequested(t, w, "melee") {
		t.Fatalf("press should be consumed in the same tick")
	}

	for i := 0; i < 3; i++ {
		push(t, w, move(1, attackX+1, attackY))
		run(w, buttons)
		if intent.Attack {
			t.Fatalf("holding the button raised attack again on tick %d", i)
		}
	}

	// A second finger on a held button is ignored until the first lifts.
	push(t, w, down(2, attackX, attackY))
	run(w, buttons)
	if intent.Attack {
		t.Fatalf("second pointer triggered a held button")
	}

	push(t, w, up(1, attackX, attackY))
	run(w, buttons)
	push(t, w, down(2, attackX, attackY))
	run(w, buttons)
	if !intent.Attack {
		t.Fatalf("button should trigger again after release")
	}
}

func TestKnobPointerDoesNotPressButtons(t *testing.T) {
	w := newWorldFromYAML(t, `
player:
  transform: { x: 0, y: 0 }
joystick:
  transform: { x: 100, y: 100 }
  radius: 50
  hit_radius: 40
  knob: {}
buttons:
  attack:
    transform: { x: 100, y: 100 }
    radius: 40
`)
	push(t, w, down(1, 100, 100))
	run(w, NewJoystickSystem(), NewButtonSystem())

	joy, _ := knobTransform(t, w)
	if !joy.Active {
		t.Fatalf("knob should win the press")
	}
	if intentOf(t, w).Attack {
		t.Fatalf("a pointer may only manipulate one control")
	}
}

func TestJumpPlaysSquashAndStretch(t *testing.T) {
	w := newTestWorld(t)
	intent := intentOf(t, w)
	intent.Jump = true
	jump := NewJumpSystem()
	animation := NewAnimationSystem()

	run(w, jump)
	if intent.Jump {
		t.Fatalf("jump intent not cleared")
	}
	if !soundRequested(t, w, "jump") {
		t.Fatalf("jump sound not requested")
	}

	player, _, pt := playerState(t, w)
	shadow, _ := mustLookup(t, w, component.NodeShadow, component.ShadowComponent.Kind())
	st := mustGet(t, w, shadow, component.TransformComponent.Kind())
	if !mustGet(t, w, player, component.AnimatorComponent.Kind()).Playing(JumpTimeline) {
		t.Fatalf("player jump timeline not playing")
	}
	if !mustGet(t, w, shadow, component.AnimatorComponent.Kind()).Playing(JumpTimeline) {
		t.Fatalf("shadow jump timeline not playing")
	}

	// jump_duration 0.4: peak at 0.2, rest at 0.4.
	setDelta(t, w, 0.2)
	run(w, animation)
	if !near(pt.ScaleX, 1.5) || !near(pt.ScaleY, 1.5) {
		t.Fatalf("expected player stretched to 1.5, got %v x %v", pt.ScaleX, pt.ScaleY)
	}
	if !near(st.ScaleX, 0.5) {
		t.Fatalf("expected shadow squashed to 0.5, got %v", st.ScaleX)
	}

	setDelta(t, w, 0.1)
	run(w, animation)
	if pt.ScaleX <= 1 || pt.ScaleX >= 1.5 || st.ScaleX >= 1 || st.ScaleX <= 0.5 {
		t.Fatalf("expected both mid-return, got player %v shadow %v", pt.ScaleX, st.ScaleX)
	}

	setDelta(t, w, 0.1)
	run(w, animation)
	if !near(pt.ScaleX, 1) || !near(st.ScaleX, 1) {
		t.Fatalf("expected both back at rest, got player %v shadow %v", pt.ScaleX, st.ScaleX)
	}
	if mustGet(t, w, player, component.AnimatorComponent.Kind()).Playing(JumpTimeline) {
		t.Fatalf("finished jump timeline should be removed")
	}
}

func TestJumpHasNoGameplayEffect(t *testing.T) {
	w := newTestWorld(t)
	_, p, pt := playerState(t, w)
	// The player's right edge (685) stops short of the weapon's left edge (690).
	pt.X = 665
	before, beforeT := *p, *pt
	intentOf(t, w).Jump = true

	run(w, NewJumpSystem())
	if *p != before || pt.X != beforeT.X || pt.Y != beforeT.Y {
		t.Fatalf("jump changed gameplay state: %+v -> %+v", before, *p)
	}

	setDelta(t, w, 0.2)
	run(w, NewAnimationSystem(), NewPickupSystem(nil))
	if !near(pt.ScaleX, 1.5) {
		t.Fatalf("expected jump peak scale 1.5, got %v", pt.ScaleX)
	}
	_, item := mustLookup(t, w, component.NodeWeapon, component.PickupComponent.Kind())
	if p.Armed || item.Collected {
		t.Fatalf("jumping next to the weapon armed the player: armed=%v collected=%v", p.Armed, item.Collected)
	}
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func TestClockSystem(t *testing.T) {
	w := newTestWorld(t)
	fc := &fakeClock{now: 10 * time.Second}
	clock := NewClockSystem(fc.Now)

	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"first_tick_baseline", 0, 0},
		{"frame", 16 * time.Millisecond, 0.016},
		{"stall_clamped", 2 * time.Second, 0.25},
		{"after_stall", 100 * time.Millisecond, 0.1},
	}
	for _, tc := range tests {
		fc.now += tc.advance
		run(w, clock)
		if got := deltaTime(w); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: expected delta %v, got %v", tc.name, tc.want, got)
		}
	}

	e, _ := ecs.First(w, component.ClockComponent.Kind())
	c := mustGet(t, w, e, component.ClockComponent.Kind())
	if c.Ticks != len(tests) || c.Elapsed != fc.now {
		t.Fatalf("expected %d ticks at %v, got %d at %v", len(tests), fc.now, c.Ticks, c.Elapsed)
	}
}

type fakeInput struct {
	events []component.PointerEvent
	keys   KeyIntents
}

func (f *fakeInput) Pointers(dst []component.PointerEvent) []component.PointerEvent {
	return append(dst, f.events...)
}

func (f *fakeInput) Keys() KeyIntents { return f.keys }

func TestPointerTrackerDiffsHeldPointers(t *testing.T) {
	held := func(id int, x, y float64) component.PointerEvent {
		return component.PointerEvent{ID: id, X: x, Y: y}
	}
	tests := []struct {
		name string
		prev []component.PointerEvent
		next []component.PointerEvent
		want []component.PointerEvent
	}{
		{"press", nil, []component.PointerEvent{held(1, 10, 10)}, []component.PointerEvent{down(1, 10, 10)}},
		{"hold", []component.PointerEvent{held(1, 10, 10)}, []component.PointerEvent{held(1, 12, 10)}, []component.PointerEvent{move(1, 12, 10)}},
		{"release_at_last_position", []component.PointerEvent{held(1, 12, 10)}, nil, []component.PointerEvent{up(1, 12, 10)}},
		{
			"mouse_and_touches",
			[]component.PointerEvent{held(MousePointerID, 5, 5), held(3, 1, 1)},
			[]component.PointerEvent{held(3, 2, 2), held(4, 9, 9)},
			[]component.PointerEvent{up(MousePointerID, 5, 5), move(3, 2, 2), down(4, 9, 9)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tr pointerTracker
			tr.Update(nil, tc.prev)
			got := tr.Update(nil, tc.next)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("event %d: expected %+v, got %+v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

// heldInput reports which pointers are down, like a device would.
type heldInput struct {
	tracker pointerTracker
	held    []component.PointerEvent
}

func (h *heldInput) Pointers(dst []component.PointerEvent) []component.PointerEvent {
	return h.tracker.Update(dst, h.held)
}

func (h *heldInput) Keys() KeyIntents { return KeyIntents{} }

func TestReleaseWhileNotSampledEndsKnobSession(t *testing.T) {
	w := newTestWorld(t)
	src := &heldInput{held: []component.PointerEvent{{ID: 1, X: 100, Y: 500}}}
	input, joystick := NewInputSystem(src), NewJoystickSystem()

	run(w, input, joystick)
	src.held[0].X = 130
	run(w, input, joystick)
	joy, knob := knobTransform(t, w)
	if !joy.Active || !near(knob.X, 30) {
		t.Fatalf("expected active knob at 30, got active=%v x=%v", joy.Active, knob.X)
	}

	// The finger lifts while no tick samples input.
	src.held = nil
	run(w, input, joystick)
	if joy.Active || !joy.Returning {
		t.Fatalf("late release should end the session, got active=%v returning=%v", joy.Active, joy.Returning)
	}

	run(w, input)
	queue, _, _ := pointerState(w)
	if len(queue.Events) != 0 {
		t.Fatalf("released pointer kept producing events: %v", queue.Events)
	}
}

func TestInputSystemRefillsQueue(t *testing.T) {
	w := newTestWorld(t)
	src := &fakeInput{events: []component.PointerEvent{down(1, 5, 5), move(1, 6, 6)}}
	input := NewInputSystem(src)

	run(w, input)
	queue, _, _ := pointerState(w)
	if len(queue.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(queue.Events))
	}

	src.events = nil
	src.keys = KeyIntents{Attack: true, Reload: true}
	run(w, input)
	if len(queue.Events) != 0 {
		t.Fatalf("stale events survived the tick: %v", queue.Events)
	}
	intent := intentOf(t, w)
	if !intent.Attack || intent.Jump || !intent.Reload {
		t.Fatalf("keys not folded into intents: %+v", *intent)
	}
}

func TestReloadRequest(t *testing.T) {
	w := newTestWorld(t)
	if _, ok := PendingReload(w); ok {
		t.Fatalf("fresh world has a pending reload")
	}

	intentOf(t, w).Reload = true
	run(w, NewReloadSystem(nil))
	req, ok := PendingReload(w)
	if !ok || req.Reason != "reload button" {
		t.Fatalf("expected reload button request, got %+v ok=%v", req, ok)
	}
	if intentOf(t, w).Reload {
		t.Fatalf("reload intent not cleared")
	}

	if err := RequestReload(w, "file changed"); err != nil {
		t.Fatalf("RequestReload: %v", err)
	}
	count := 0
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(ecs.Entity, *component.ReloadRequest) { count++ })
	if count != 1 {
		t.Fatalf("reload requests should not stack, got %d", count)
	}
}

func TestRequestReloadWithoutWorld(t *testing.T) {
	if err := RequestReload(nil, "pause menu"); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAudioSystemDrainsRequests(t *testing.T) {
	w := newTestWorld(t)
	player, _, _ := playerState(t, w)
	requestSound(w, player, "fire")
	requestSound(w, player, "nope")

	run(w, NewAudioSystem())
	if soundRequested(t, w, "fire") {
		t.Fatalf("play request not drained")
	}
}

func TestSystemsToleratePartialScenes(t *testing.T) {
	scenes := map[string]string{
		"empty":       ``,
		"player_only": "player:\n  transform: { x: 1, y: 2 }\n",
		"no_player":   "joystick:\n  knob: {}\nprojectile: {}\nflash: {}\n",
	}
	for name, src := range scenes {
		t.Run(name, func(t *testing.T) {
			w := newWorldFromYAML(t, src)
			input := &fakeInput{
				events: []component.PointerEvent{down(1, 0, 0), move(1, 30, 0), up(1, 30, 0)},
				keys:   KeyIntents{Attack: true, Jump: true, Reload: true},
			}
			systems := NewControllerSystems(Options{Input: input, Now: (&fakeClock{}).Now})
			for i := 0; i < 3; i++ {
				run(w, systems...)
			}
			run(nil, systems...)
		})
	}
}

func TestControllerSystemOrder(t *testing.T) {
	systems := NewControllerSystems(Options{})
	names := make([]string, 0, len(systems))
	for _, s := range systems {
		switch s.(type) {
		case *ClockSystem:
			names = append(names, "clock")
		case *InputSystem:
			names = append(names, "input")
		case *AnimationSystem:
			names = append(names, "animation")
		case *JoystickSystem:
			names = append(names, "joystick")
		case *MovementSystem:
			names = append(names, "movement")
		case *ProjectileSystem:
			names = append(names, "projectile")
		case *AttackSystem:
			names = append(names, "attack")
		}
	}
	want := []string{"clock", "input", "animation", "joystick", "movement", "projectile", "attack"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if _, ok := systems[len(systems)-1].(ecs.Drawer); !ok {
		t.Fatalf("render should be the last system")
	}
}
