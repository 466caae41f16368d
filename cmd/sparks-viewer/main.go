// Package main provides an interactive viewer for particle effect files,
// used to iterate on effect authoring without a host game.
//
// Usage:
//
//	go run ./cmd/sparks-viewer [flags]
//
// Flags:
//
//	--effects <dir>   Directory of effect YAML files (default "data/effects")
//	--seed <n>        Random seed (default 1, fixed for reproducible runs)
//
// Controls:
//
//	Mouse Click       - Move the active effect to the cursor
//	Left/Right Arrow  - Switch to previous/next effect
//	Space             - Burst 50 particles from every emitter
//	R                 - Rebuild the active effect (clears all particles)
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/sparks/pkg/config"
	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/pmath"
	"github.com/gonewx/sparks/pkg/render"
)

const (
	screenWidth  = 1024
	screenHeight = 640
)

// Game cycles through loaded effect configurations, ticking and rendering
// the active one.
type Game struct {
	configs  []*config.EffectConfig
	index    int
	effect   *particles.Effect
	renderer *render.Renderer
	rng      *pmath.Rand
	err      error
}

func (g *Game) rebuild() {
	cfg := g.configs[g.index]
	effect, err := cfg.Build(g.rng)
	if err != nil {
		g.err = err
		g.effect = nil
		return
	}
	g.err = nil
	g.effect = effect
	g.effect.SetPosition(pmath.Vec2{X: screenWidth / 2, Y: screenHeight / 2})
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.index = (g.index + 1) % len(g.configs)
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.index = (g.index + len(g.configs) - 1) % len(g.configs)
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rebuild()
	}

	if g.effect == nil {
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.effect.SetPosition(pmath.Vec2{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.effect.Burst(50)
	}

	g.effect.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\n%v", g.configs[g.index].Name, g.err))
		return
	}

	g.renderer.Draw(screen, g.effect)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s (%d/%d)  particles: %d\narrows: switch  click: move  space: burst  r: reset",
		g.effect.Name, g.index+1, len(g.configs), g.effect.Count()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadConfigs(dir string) ([]*config.EffectConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects directory %s: %w", dir, err)
	}

	var configs []*config.EffectConfig
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		cfg, err := config.Load(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[Viewer] Warning: skipping %s: %v", name, err)
			continue
		}
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })

	if len(configs) == 0 {
		return nil, fmt.Errorf("no loadable effect files in %s", dir)
	}
	return configs, nil
}

func main() {
	effectsDir := flag.String("effects", "data/effects", "directory of effect YAML files")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	configs, err := loadConfigs(*effectsDir)
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}
	log.Printf("[Viewer] Loaded %d effects from %s", len(configs), *effectsDir)

	game := &Game{
		configs:  configs,
		renderer: render.NewRenderer(nil, render.WithAdditiveBlend()),
		rng:      pmath.NewRand(*seed),
	}
	game.rebuild()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sparks viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
