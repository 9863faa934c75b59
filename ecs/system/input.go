package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// MousePointerID is the pointer id used for the left mouse button. Touch ids
// come straight from ebiten.TouchID.
const MousePointerID = -1

// KeyIntents are keyboard shortcuts for the on-screen buttons.
type KeyIntents struct {
	Attack bool
	Jump   bool
	Reload bool
}

// InputSource produces the raw input of one tick.
type InputSource interface {
	// Pointers appends this tick's pointer events to dst.
	Pointers(dst []component.PointerEvent) []component.PointerEvent
	Keys() KeyIntents
}

// InputSystem refills the pointer queue and folds keyboard shortcuts into the
// player's intents. Events left from the previous tick are dropped.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	queue, _, ok := pointerState(w)
	if !ok {
		return
	}
	queue.Events = queue.Events[:0]
	if i.source == nil {
		return
	}
	queue.Events = i.source.Pointers(queue.Events)

	keys := i.source.Keys()
	if !keys.Attack && !keys.Jump && !keys.Reload {
		return
	}
	_, intent, ok := ecs.Lookup(w, component.NodePlayer, component.IntentComponent.Kind())
	if !ok {
		return
	}
	intent.Attack = intent.Attack || keys.Attack
	intent.Jump = intent.Jump || keys.Jump
	intent.Reload = intent.Reload || keys.Reload
}

// EbitenInput reads the left mouse button and touches from ebiten. Presses
// and releases come from diffing held pointers against the previous sample,
// so a release that happens while nobody samples (the pause menu) still ends
// the pointer's session on the next call.
type EbitenInput struct {
	tracker pointerTracker
	touches []ebiten.TouchID
	held    []component.PointerEvent
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) Pointers(dst []component.PointerEvent) []component.PointerEvent {
	in.held = in.held[:0]
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.held = append(in.held, component.PointerEvent{ID: MousePointerID, X: float64(mx), Y: float64(my)})
	}
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		in.held = append(in.held, component.PointerEvent{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return in.tracker.Update(dst, in.held)
}

func (in *EbitenInput) Keys() KeyIntents {
	return KeyIntents{
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsKeyJustPressed(ebiten.KeyX),
		Jump:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reload: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// pointerTracker turns successive samples of held pointers into down, move
// and up events. A pointer missing from a sample is released at its last
// known position.
type pointerTracker struct {
	held []component.PointerEvent
}

// Update appends the events that take the previous sample to held. Phases on
// held are ignored.
func (tr *pointerTracker) Update(dst, held []component.PointerEvent) []component.PointerEvent {
	for _, prev := range tr.held {
		if !containsPointer(held, prev.ID) {
			prev.Phase = component.PointerUp
			dst = append(dst, prev)
		}
	}
	for _, cur := range held {
		cur.Phase = component.PointerDown
		if containsPointer(tr.held, cur.ID) {
			cur.Phase = component.PointerMove
		}
		dst = append(dst, cur)
	}
	tr.held = append(tr.held[:0], held...)
	return dst
}

func containsPointer(events []component.PointerEvent, id int) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}
	return false
}
