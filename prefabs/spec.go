package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const DefaultScene = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func DecodeSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// SceneSpec describes every node of the arena scene. Any section may be
// omitted; the scene then runs without that node.
type SceneSpec struct {
	Name       string          `yaml:"name"`
	Clock      ClockSpec       `yaml:"clock"`
	Floor      *NodeSpec       `yaml:"floor"`
	Wall       *NodeSpec       `yaml:"wall"`
	Player     *PlayerSpec     `yaml:"player"`
	Shadow     *ShadowSpec     `yaml:"shadow"`
	Weapon     *PickupSpec     `yaml:"weapon"`
	Projectile *ProjectileSpec `yaml:"projectile"`
	Flash      *FlashSpec      `yaml:"flash"`
	Joystick   *JoystickSpec   `yaml:"joystick"`
	Buttons    ButtonsSpec     `yaml:"buttons"`
}

func LoadSceneSpec(name string) (*SceneSpec, error) {
	if name == "" {
		name = DefaultScene
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ClockSpec struct {
	MaxDelta float64 `yaml:"max_delta"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteSpec struct {
	Asset   string   `yaml:"asset"`
	Shape   string   `yaml:"shape"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Opacity *float64 `yaml:"opacity"`
	Hidden  bool     `yaml:"hidden"`
}

type BoundsSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type NodeSpec struct {
	Transform   TransformSpec `yaml:"transform"`
	Sprite      *SpriteSpec   `yaml:"sprite"`
	RenderLayer int           `yaml:"render_layer"`
	Bounds      *BoundsSpec   `yaml:"bounds"`
}

type AudioSpec struct {
	Name     string  `yaml:"name"`
	File     string  `yaml:"file"`
	Tone     float64 `yaml:"tone"`
	Duration float64 `yaml:"duration"`
	Volume   float64 `yaml:"volume"`
}

type PlayerSpec struct {
	NodeSpec     `yaml:",inline"`
	MuzzleX      float64     `yaml:"muzzle_x"`
	MuzzleY      float64     `yaml:"muzzle_y"`
	ArmedAsset   string      `yaml:"armed_asset"`
	ArmedSize    *BoundsSpec `yaml:"armed_size"`
	JumpStretch  float64     `yaml:"jump_stretch"`
	JumpDuration float64     `yaml:"jump_duration"`
	Audio        []AudioSpec `yaml:"audio"`
}

type ShadowSpec struct {
	NodeSpec `yaml:",inline"`
	Squash   float64 `yaml:"squash"`
}

type PickupSpec struct {
	NodeSpec `yaml:",inline"`
	Kind     string `yaml:"kind"`
}

type ProjectileSpec struct {
	NodeSpec `yaml:",inline"`
	Speed    float64 `yaml:"speed"`
}

type FlashSpec struct {
	NodeSpec `yaml:",inline"`
	Frames   int     `yaml:"frames"`
	Peak     float64 `yaml:"peak"`
}

type JoystickSpec struct {
	NodeSpec       `yaml:",inline"`
	Radius         float64   `yaml:"radius"`
	HitRadius      float64   `yaml:"hit_radius"`
	ReturnDuration float64   `yaml:"return_duration"`
	Knob           *NodeSpec `yaml:"knob"`
}

type ButtonSpec struct {
	NodeSpec `yaml:",inline"`
	Radius   float64 `yaml:"radius"`
}

type ButtonsSpec struct {
	Attack *ButtonSpec `yaml:"attack"`
	Jump   *ButtonSpec `yaml:"jump"`
	Reload *ButtonSpec `yaml:"reload"`
}
