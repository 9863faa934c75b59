package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
	"github.com/milk9111/zebulew/logging"
	"github.com/milk9111/zebulew/prefabs"
)

const (
	defaultKnobRadius      = 50.0
	defaultReturnDuration  = 0.1
	defaultMaxDelta        = 0.25
	defaultProjectileSpeed = 5.0
	defaultFlashFrames     = 6
	defaultFlashPeak       = 0.6
	defaultJumpStretch     = 1.2
	defaultJumpDuration    = 0.3
	defaultShadowSquash    = 0.7
)

// SoundLoader turns an audio spec into a player. Returning a nil player is
// allowed; the clip then only records requests.
type SoundLoader func(spec prefabs.AudioSpec) (*audio.Player, error)

type BuildOptions struct {
	Sounds SoundLoader
	Logger *zap.Logger
}

type sceneBuilder struct {
	w    *ecs.World
	opts BuildOptions
	log  *zap.Logger
}

// BuildScene populates w with every node described by spec and registers
// them in the scene node table. Sections missing from spec are skipped.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, opts BuildOptions) error {
	if w == nil {
		return fmt.Errorf("build scene: world is nil")
	}
	if spec == nil {
		return fmt.Errorf("build scene: spec is nil")
	}
	b := &sceneBuilder{w: w, opts: opts, log: logging.OrNop(opts.Logger)}

	if err := b.controller(spec.Clock); err != nil {
		return fmt.Errorf("build scene: controller: %w", err)
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{component.NodeFloor, func() error { return b.plain(component.NodeFloor, spec.Floor) }},
		{component.NodeWall, func() error { return b.plain(component.NodeWall, spec.Wall) }},
		{component.NodePlayer, func() error { return b.player(spec.Player) }},
		{component.NodeShadow, func() error { return b.shadow(spec.Shadow) }},
		{component.NodeWeapon, func() error { return b.weapon(spec.Weapon) }},
		{component.NodeProjectile, func() error { return b.projectile(spec.Projectile) }},
		{component.NodeFlash, func() error { return b.flash(spec.Flash) }},
		{component.NodeJoystick, func() error { return b.joystick(spec.Joystick) }},
		{component.NodeAttackButton, func() error { return b.button(component.NodeAttackButton, component.ButtonAttack, spec.Buttons.Attack) }},
		{component.NodeJumpButton, func() error { return b.button(component.NodeJumpButton, component.ButtonJump, spec.Buttons.Jump) }},
		{component.NodeReloadButton, func() error { return b.button(component.NodeReloadButton, component.ButtonReload, spec.Buttons.Reload) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("build scene: %s: %w", step.name, err)
		}
	}

	b.log.Info("scene built", zap.String("scene", spec.Name), zap.Int("entities", len(ecs.Entities(w))))
	return nil
}

func (b *sceneBuilder) controller(spec prefabs.ClockSpec) error {
	maxDelta := spec.MaxDelta
	if maxDelta <= 0 {
		maxDelta = defaultMaxDelta
	}
	e := ecs.CreateEntity(b.w)
	if err := ecs.Add(b.w, e, component.ClockComponent.Kind(), &component.Clock{MaxDelta: maxDelta}); err != nil {
		return err
	}
	if err := ecs.Add(b.w, e, component.PointerQueueComponent.Kind(), &component.PointerQueue{}); err != nil {
		return err
	}
	if err := ecs.Add(b.w, e, component.PointerSessionsComponent.Kind(), &component.PointerSessions{Claims: map[int]uint64{}}); err != nil {
		return err
	}
	return ecs.Add(b.w, e, component.SceneNodesComponent.Kind(), &component.SceneNodes{ByName: map[string]uint64{}})
}

// node creates the entity shared by every scene node: name, transform,
// sprite, render layer and bounds.
func (b *sceneBuilder) node(name string, spec prefabs.NodeSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(b.w)
	if err := ecs.Add(b.w, e, component.NodeComponent.Kind(), &component.Node{Name: name}); err != nil {
		return 0, err
	}
	if err := ecs.Add(b.w, e, component.TransformComponent.Kind(), buildTransform(spec.Transform)); err != nil {
		return 0, err
	}
	if spec.Sprite != nil {
		sprite, err := buildSprite(*spec.Sprite)
		if err != nil {
			return 0, err
		}
		if err := ecs.Add(b.w, e, component.SpriteComponent.Kind(), sprite); err != nil {
			return 0, err
		}
	}
	if err := ecs.Add(b.w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}); err != nil {
		return 0, err
	}
	if spec.Bounds != nil {
		if err := ecs.Add(b.w, e, component.BoundsComponent.Kind(), &component.Bounds{Width: spec.Bounds.Width, Height: spec.Bounds.Height}); err != nil {
			return 0, err
		}
	}
	if err := ecs.SetNode(b.w, name, e); err != nil {
		return 0, err
	}
	return e, nil
}

func (b *sceneBuilder) plain(name string, spec *prefabs.NodeSpec) error {
	if spec == nil {
		return nil
	}
	_, err := b.node(name, *spec)
	return err
}

func (b *sceneBuilder) player(spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return nil
	}
	e, err := b.node(component.NodePlayer, spec.NodeSpec)
	if err != nil {
		return err
	}

	player := &component.Player{
		BaseScale:    firstPositive(spec.Transform.ScaleX, 1),
		MuzzleX:      spec.MuzzleX,
		MuzzleY:      spec.MuzzleY,
		ArmedAsset:   spec.ArmedAsset,
		JumpStretch:  firstPositive(spec.JumpStretch, defaultJumpStretch),
		JumpDuration: firstPositive(spec.JumpDuration, defaultJumpDuration),
	}
	if spec.ArmedSize != nil {
		player.ArmedWidth = spec.ArmedSize.Width
		player.ArmedHeight = spec.ArmedSize.Height
	}
	if err := ecs.Add(b.w, e, component.PlayerComponent.Kind(), player); err != nil {
		return err
	}
	if err := ecs.Add(b.w, e, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return err
	}
	if err := ecs.Add(b.w, e, component.AnimatorComponent.Kind(), &component.Animator{}); err != nil {
		return err
	}

	audioComp, err := b.audio(spec.Audio)
	if err != nil {
		return err
	}
	if audioComp != nil {
		return ecs.Add(b.w, e, component.AudioComponent.Kind(), audioComp)
	}
	return nil
}

func (b *sceneBuilder) shadow(spec *prefabs.ShadowSpec) error {
	if spec == nil {
		return nil
	}
	e, err := b.node(component.NodeShadow, spec.NodeSpec)
	if err != nil {
		return err
	}
	if player, ok := ecs.Node(b.w, component.NodePlayer); ok {
		if err := ecs.Add(b.w, e, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(player)}); err != nil {
			return err
		}
	}
	shadow := &component.Shadow{
		BaseScale: firstPositive(spec.Transform.ScaleX, 1),
		Squash:    firstPositive(spec.Squash, defaultShadowSquash),
	}
	if err := ecs.Add(b.w, e, component.ShadowComponent.Kind(), shadow); err != nil {
		return err
	}
	return ecs.Add(b.w, e, component.AnimatorComponent.Kind(), &component.Animator{})
}

func (b *sceneBuilder) weapon(spec *prefabs.PickupSpec) error {
	if spec == nil {
		return nil
	}
	e, err := b.node(component.NodeWeapon, spec.NodeSpec)
	if err != nil {
		return err
	}
	kind := spec.Kind
	if kind == "" {
		kind = "weapon"
	}
	return ecs.Add(b.w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind})
}

func (b *sceneBuilder) projectile(spec *prefabs.ProjectileSpec) error {
	if spec == nil {
		return nil
	}
	e, err := b.node(component.NodeProjectile, spec.NodeSpec)
	if err != nil {
		return err
	}
	if sprite, ok := ecs.Get(b.w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	return ecs.Add(b.w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Speed: firstPositive(spec.Speed, defaultProjectileSpeed),
	})
}

func (b *sceneBuilder) flash(spec *prefabs.FlashSpec) error {
	if spec == nil {
		return nil
	}
	e, err := b.node(component.NodeFlash, spec.NodeSpec)
	if err != nil {
		return err
	}
	frames := spec.Frames
	if frames <= 0 {
		frames = defaultFlashFrames
	}
	// Frame == Total: idle until the first shot.
	return ecs.Add(b.w, e, component.FlashComponent.Kind(), &component.Flash{
		Total: frames,
		Frame: frames,
		Peak:  firstPositive(spec.Peak, defaultFlashPeak),
	})
}

func (b *sceneBuilder) joystick(spec *prefabs.JoystickSpec) error {
	if spec == nil {
		return nil
	}
	base, err := b.node(component.NodeJoystick, spec.NodeSpec)
	if err != nil {
		return err
	}

	knobSpec := prefabs.NodeSpec{}
	if spec.Knob != nil {
		knobSpec = *spec.Knob
	}
	// The knob rests at the joystick origin; its transform is the offset.
	knobSpec.Transform.X, knobSpec.Transform.Y = 0, 0
	knob, err := b.node(component.NodeKnob, knobSpec)
	if err != nil {
		return err
	}
	if err := ecs.Add(b.w, knob, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(base)}); err != nil {
		return err
	}
	if err := ecs.Add(b.w, knob, component.AnimatorComponent.Kind(), &component.Animator{}); err != nil {
		return err
	}

	radius := firstPositive(spec.Radius, defaultKnobRadius)
	return ecs.Add(b.w, base, component.JoystickComponent.Kind(), &component.Joystick{
		Knob:           uint64(knob),
		Radius:         radius,
		HitRadius:      firstPositive(spec.HitRadius, radius),
		ReturnDuration: firstPositive(spec.ReturnDuration, defaultReturnDuration),
	})
}

func (b *sceneBuilder) button(name string, action component.ButtonAction, spec *prefabs.ButtonSpec) error {
	if spec == nil {
		return nil
	}
	e, err := b.node(name, spec.NodeSpec)
	if err != nil {
		return err
	}
	radius := spec.Radius
	if radius <= 0 && spec.Sprite != nil {
		radius = spec.Sprite.Width / 2
	}
	return ecs.Add(b.w, e, component.ButtonComponent.Kind(), &component.Button{Action: action, Radius: radius})
}

func (b *sceneBuilder) audio(specs []prefabs.AudioSpec) (*component.Audio, error) {
	n := len(specs)
	if n == 0 {
		return nil, nil
	}

	audioComp := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]*audio.Player, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
	for i, clip := range specs {
		var player *audio.Player
		if b.opts.Sounds != nil {
			p, err := b.opts.Sounds(clip)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			player = p
		}
		volume := clip.Volume
		if volume <= 0 {
			volume = 1
		}
		audioComp.Names = append(audioComp.Names, clip.Name)
		audioComp.Players = append(audioComp.Players, player)
		audioComp.Volume = append(audioComp.Volume, volume)
	}
	return audioComp, nil
}

func buildTransform(spec prefabs.TransformSpec) *component.Transform {
	return &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   firstPositive(spec.ScaleX, 1),
		ScaleY:   firstPositive(spec.ScaleY, 1),
		Rotation: spec.Rotation,
	}
}

func buildSprite(spec prefabs.SpriteSpec) (*component.Sprite, error) {
	shape, err := parseShape(spec.Shape)
	if err != nil {
		return nil, err
	}
	opacity := 1.0
	if spec.Opacity != nil {
		opacity = *spec.Opacity
	}
	return &component.Sprite{
		Asset:   spec.Asset,
		Shape:   shape,
		Width:   spec.Width,
		Height:  spec.Height,
		Opacity: opacity,
		Hidden:  spec.Hidden,
	}, nil
}

func parseShape(s string) (component.Shape, error) {
	switch s {
	case "", "rect":
		return component.ShapeRect, nil
	case "circle":
		return component.ShapeCircle, nil
	default:
		return 0, fmt.Errorf("unknown sprite shape %q", s)
	}
}

func firstPositive(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
