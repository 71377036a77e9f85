package main

import (
	"image/color"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/scenes"
	"github.com/automoto/overworld/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type Game struct {
	scene   *scenes.Overworld
	hud     *ui.HUD
	watcher *config.Watcher
	logger  *logrus.Logger
}

func NewGame(scene *scenes.Overworld, watcher *config.Watcher, logger *logrus.Logger) *Game {
	return &Game{
		scene:   scene,
		hud:     ui.NewHUD(),
		watcher: watcher,
		logger:  logger,
	}
}

func (g *Game) Update() error {
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.scene.Respawn()
	}
	pollController(g.scene.Controller())
	g.scene.Update()

	g.hud.Refresh(g.scene.Snapshot(), g.scene.Camera(), g.scene.Score())
	g.hud.Update()
	return nil
}

// applyReloads installs tuning changes between ticks.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case t, ok := <-g.watcher.Tunings:
			if !ok {
				g.watcher = nil
				return
			}
			g.scene.ApplyTuning(t)
			ebiten.SetTPS(ticksPerSecond())
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.WithError(err).Warn("tuning reload failed")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	drawTopDown(screen, g.scene.Space(), g.scene.Snapshot().Position, g.scene.Camera())
	g.hud.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}
