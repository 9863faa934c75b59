package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/zebulew/assets"
	"github.com/milk9111/zebulew/common"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/entity"
	"github.com/milk9111/zebulew/ecs/system"
	"github.com/milk9111/zebulew/logging"
	"github.com/milk9111/zebulew/prefabs"
)

var background = color.RGBA{R: 0x18, G: 0x1c, B: 0x22, A: 0xff}

type GameConfig struct {
	Scene  string
	Debug  bool
	Watch  bool
	Logger *zap.Logger
}

type Game struct {
	log   *zap.Logger
	scene string

	world     *ecs.World
	scheduler *ecs.Scheduler
	watcher   *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg GameConfig) (*Game, error) {
	scene := cfg.Scene
	if scene == "" {
		scene = prefabs.DefaultScene
	}
	g := &Game{
		log:   logging.OrNop(cfg.Logger).Named("game"),
		scene: scene,
	}
	g.scheduler = ecs.NewScheduler(system.NewControllerSystems(system.Options{
		Input:  system.NewEbitenInput(),
		Logger: g.log,
		Debug:  cfg.Debug,
	})...)

	world, err := g.buildWorld()
	if err != nil {
		return nil, err
	}
	g.world = world
	g.pauseUI = NewPauseUI(g)

	if cfg.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			g.log.Warn("scene hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		} else {
			g.watcher = watcher
			g.log.Info("watching scene specs", zap.String("dir", prefabs.Dir))
		}
	}
	return g, nil
}

func (g *Game) buildWorld() (*ecs.World, error) {
	spec, err := prefabs.LoadSceneSpec(g.scene)
	if err != nil {
		return nil, fmt.Errorf("load scene %q: %w", g.scene, err)
	}
	world := ecs.NewWorld()
	err = entity.BuildScene(world, spec, entity.BuildOptions{
		Sounds: loadSound,
		Logger: g.log,
	})
	if err != nil {
		return nil, fmt.Errorf("build scene %q: %w", g.scene, err)
	}
	return world, nil
}

// reload rebuilds the world from the scene spec. The running world is kept
// when the spec fails to load.
func (g *Game) reload(reason string) {
	world, err := g.buildWorld()
	if err != nil {
		g.log.Error("scene reload failed", zap.String("reason", reason), zap.Error(err))
		return
	}
	g.world = world
	g.log.Info("scene reloaded", zap.String("scene", g.scene), zap.String("reason", reason))
}

// Restart asks for a scene rebuild at the end of the next tick.
func (g *Game) Restart() {
	g.paused = false
	if err := system.RequestReload(g.world, "pause menu"); err != nil {
		g.log.Error("restart", zap.Error(err))
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()
	g.scheduler.Update(g.world)

	if req, ok := system.PendingReload(g.world); ok {
		g.reload(req.Reason)
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("scene watcher", zap.Error(err))
		}
	default:
	}
	want := filepath.Base(g.scene)
	if filepath.Ext(want) == "" {
		want += ".yaml"
	}
	for _, name := range g.watcher.Changed() {
		if name == want {
			if err := system.RequestReload(g.world, "file changed"); err != nil {
				g.log.Error("hot reload", zap.Error(err))
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.scheduler.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// loadSound prefers a sound file and falls back to a synthesized tone. Clips
// with neither stay silent.
func loadSound(spec prefabs.AudioSpec) (*audio.Player, error) {
	switch {
	case spec.File != "":
		return assets.LoadAudioPlayer(spec.File)
	case spec.Tone > 0:
		seconds := spec.Duration
		if seconds <= 0 {
			seconds = 0.08
		}
		return assets.ToneAudioPlayer(spec.Tone, seconds), nil
	default:
		return nil, nil
	}
}
