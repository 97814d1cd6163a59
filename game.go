package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/ecs/system"
	"github.com/milk9111/overworld/maps"
	"github.com/milk9111/overworld/obj"
	"github.com/milk9111/overworld/shaders"
)

// Game wires the world, camera, and systems together and drives them from the
// ebiten loop.
type Game struct {
	cfg     Config
	world   *ecs.World
	cam     *obj.Camera
	render  *system.RenderSystem
	debug   *DebugUI
	watcher *maps.Watcher
}

func NewGame(cfg Config, startMap string, debug bool, watchDirs []string) (*Game, error) {
	w := ecs.NewWorld()
	cam := obj.NewCamera(cfg.Window.Width, cfg.Window.Height)
	w.SetPhysics(ecs.NewPhysicsWorld(cfg.Scale))

	render := system.NewRenderSystem(w, cam, cfg.Scale, cfg.TransitionSpeed)
	// Render goes last so the transition trajectory overrides the follow
	// camera on transition frames.
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewMovementSystem(render))
	w.AddSystem(system.NewAnimationSystem())
	w.AddSystem(system.NewDissolveSystem())
	w.AddSystem(system.NewBoundarySystem(w, render, cfg.Scale))
	w.AddSystem(system.NewCameraSystem(w, cam, render, cfg.Scale))
	w.AddSystem(render)

	g := &Game{
		cfg:    cfg,
		world:  w,
		cam:    cam,
		render: render,
	}
	if err := g.loadStart(startMap); err != nil {
		return nil, err
	}
	if debug {
		g.debug = NewDebugUI()
	}
	if len(watchDirs) > 0 {
		watcher, err := maps.NewWatcher(watchDirs...)
		if err != nil {
			return nil, fmt.Errorf("game: watch: %w", err)
		}
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) loadStart(name string) error {
	def, err := maps.Load(name)
	if err != nil {
		return err
	}
	m := obj.NewMap(def)
	g.world.Physics().Rebuild(m)
	for _, s := range def.Spawns {
		if s.Type == "player" {
			entity.NewPlayer(g.world, s.X*g.cfg.Scale, s.Y*g.cfg.Scale, g.cfg.Scale, g.cfg.PlayerSpeed)
			break
		}
	}
	entity.SpawnWisps(g.world, def, g.cfg.Scale)
	g.world.Events().MapLoaded.Publish(ecs.MapLoaded{Map: m})
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.world.Update(1.0 / float64(ebiten.TPS()))
	if g.debug != nil {
		g.debug.Update(g)
	}
	return nil
}

// pollWatcher applies dev-mode file changes: map definitions reload in place
// when they belong to the active map, shader sources recompile.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyFileChange(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) applyFileChange(path string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kage":
		if err := shaders.ReloadFile(path); err != nil {
			log.Printf("game: reload shader %q: %v", path, err)
			return
		}
		log.Printf("game: reloaded shader %q", path)
	case ".yaml":
		active := g.render.ActiveMap()
		if active == nil || g.render.Transitioning() {
			return
		}
		base := strings.TrimSuffix(filepath.Base(path), ".yaml")
		if base != active.Name() {
			return
		}
		def, err := maps.LoadFile(path)
		if err != nil {
			log.Printf("game: reload map %q: %v", path, err)
			return
		}
		m := obj.NewMap(def)
		g.world.Physics().Rebuild(m)
		entity.ClearWisps(g.world)
		entity.SpawnWisps(g.world, def, g.cfg.Scale)
		g.world.Events().MapLoaded.Publish(ecs.MapLoaded{Map: m})
		log.Printf("game: reloaded map %q", base)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	if g.debug != nil {
		g.debug.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.render.Close()
}
