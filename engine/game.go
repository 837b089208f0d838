package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/blockworld/config"
	"github.com/lixenwraith/blockworld/engine/status"
	"github.com/lixenwraith/blockworld/entity"
	"github.com/lixenwraith/blockworld/input"
	"github.com/lixenwraith/blockworld/level"
	"github.com/lixenwraith/blockworld/parameter"
	"github.com/lixenwraith/blockworld/physics"
	"github.com/lixenwraith/blockworld/render"
)

// ErrMissingDependency is returned by NewGame when a required collaborator is nil
var ErrMissingDependency = errors.New("missing dependency")

// Surface is a render backend that can be resized and shown on a terminal
type Surface interface {
	render.Backend
	Resize(width, height int)
	Present(s tcell.Screen)
}

// Sound plays the block edit cues
type Sound interface {
	PlayPlace()
	PlayBreak()
}

type nopSound struct{}

func (nopSound) PlayPlace() {}
func (nopSound) PlayBreak() {}

// zombieSkin is the face region of the 64x32 character skin
var zombieSkin = render.UVRect{U0: 8.0 / 64, V0: 8.0 / 32, U1: 16.0 / 64, V1: 16.0 / 32}

// statusHold keeps a HUD status message visible
const statusHold = 2 * time.Second

// Deps are the collaborators a Game drives; Screen, Sound, Metrics, Clock, Rand and Logger are optional
type Deps struct {
	Config  *config.Config
	Grid    *level.Grid
	Surface Surface
	Screen  tcell.Screen
	Input   *input.State
	Sound   Sound
	Metrics *status.Registry
	Clock   Clock
	Rand    *rand.Rand
	Logger  *zap.Logger

	TerrainTexture int
	SkinTexture    int
}

// Game owns the world, its entities and the per-frame sequence
type Game struct {
	cfg      *config.Config
	grid     *level.Grid
	renderer *render.WorldRenderer
	surface  Surface
	screen   tcell.Screen
	input    *input.State
	sound    Sound
	metrics  *status.Registry
	clock    Clock
	timer    *Timer
	camera   Camera
	logger   *zap.Logger

	player       *entity.Player
	zombies      []*entity.Zombie
	zombiesDrawn int
	skinTex      int

	hit    render.HitResult
	hasHit bool

	start       time.Time
	lastDiag    time.Time
	frames      int
	lastFPS     int
	lastUpdates int
	status      string
	statusUntil time.Time
	quit        bool
}

func NewGame(d Deps) (*Game, error) {
	switch {
	case d.Config == nil:
		return nil, fmt.Errorf("%w: config", ErrMissingDependency)
	case d.Grid == nil:
		return nil, fmt.Errorf("%w: grid", ErrMissingDependency)
	case d.Surface == nil:
		return nil, fmt.Errorf("%w: surface", ErrMissingDependency)
	case d.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingDependency)
	}

	if d.Clock == nil {
		d.Clock = NewTimeProvider()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(d.Clock.Now().UnixNano()))
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Sound == nil {
		d.Sound = nopSound{}
	}
	if d.Metrics == nil {
		d.Metrics = status.NewRegistry()
	}

	cfg := d.Config
	now := d.Clock.Now()
	g := &Game{
		cfg:      cfg,
		grid:     d.Grid,
		surface:  d.Surface,
		screen:   d.Screen,
		input:    d.Input,
		sound:    d.Sound,
		metrics:  d.Metrics,
		clock:    d.Clock,
		camera:   Camera{FOV: cfg.Camera.FOV, Near: cfg.Camera.Near, Far: cfg.Camera.Far},
		logger:   d.Logger,
		skinTex:  d.SkinTexture,
		start:    now,
		lastDiag: now,
	}

	g.timer = NewTimer(d.Clock, float64(cfg.Engine.TicksPerSecond))
	g.timer.TimeScale = cfg.Engine.TimeScale

	g.renderer = render.NewWorldRenderer(d.Grid, d.Surface, render.DefaultTiles(), render.Options{
		Texture:    d.TerrainTexture,
		Parallel:   cfg.Render.Parallel,
		PickRadius: cfg.Camera.PickRadius,
		Logger:     d.Logger,
	})

	g.player = entity.NewPlayer(d.Grid, d.Rand)
	g.zombies = make([]*entity.Zombie, 0, cfg.Engine.Zombies)
	for i := 0; i < cfg.Engine.Zombies; i++ {
		g.zombies = append(g.zombies, entity.NewZombie(d.Grid, d.Rand))
	}

	fog := cfg.Render.FogColor
	d.Surface.SetFogParams(cfg.Render.FogDensity,
		float32(fog>>16&0xff)/255, float32(fog>>8&0xff)/255, float32(fog&0xff)/255)
	d.Surface.SetCull(true)

	g.logger.Info("game ready",
		zap.Int("zombies", len(g.zombies)),
		zap.Int("ticks_per_second", cfg.Engine.TicksPerSecond),
		zap.Bool("parallel_meshing", cfg.Render.Parallel),
	)
	return g, nil
}

func (g *Game) Player() *entity.Player          { return g.player }
func (g *Game) Zombies() []*entity.Zombie       { return g.zombies }
func (g *Game) Renderer() *render.WorldRenderer { return g.renderer }
func (g *Game) Timer() *Timer                   { return g.timer }
func (g *Game) Quit() bool                      { return g.quit }

// Hit returns the block face under the crosshair from the last frame
func (g *Game) Hit() (render.HitResult, bool) {
	return g.hit, g.hasHit
}

// Run drives frames at the target rate until quit, ctx cancellation or a closed event channel
// The world is saved on the way out
func (g *Game) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.Engine.TargetFPS))
	defer ticker.Stop()

	for !g.quit {
		select {
		case <-ctx.Done():
			g.quit = true
		case <-ticker.C:
		drainInput:
			for {
				select {
				case ev, ok := <-events:
					if !ok {
						g.quit = true
						break drainInput
					}
					g.input.Apply(ev)
				default:
					break drainInput
				}
			}
			if !g.quit {
				g.Frame()
			}
		}
	}

	return g.Save()
}

// Frame runs one iteration: ticks, look, pick, edits, render
func (g *Game) Frame() {
	g.timer.AdvanceTime()
	for i := 0; i < g.timer.Ticks; i++ {
		g.tick()
	}
	g.metrics.Ticks.Add(float64(g.timer.Ticks))
	a := g.timer.A

	if g.input.Pressed(input.KeyQuit) {
		g.quit = true
	}

	dx, dy := g.input.MouseDelta()
	sens := g.cfg.Camera.MouseSensitivity
	g.player.Body().Turn(float32(dx)*sens, float32(dy)*sens)

	g.syncSize()
	g.pick(a)
	g.handleButtons()

	if g.input.Pressed(input.KeySave) {
		_ = g.Save()
	}

	g.render(a)
	g.diagnostics()
}

func (g *Game) tick() {
	for _, z := range g.zombies {
		z.Tick(g.grid, entity.Intent{})
	}
	g.player.Tick(g.grid, g.intent())
}

// intent maps held keys to a movement request
func (g *Game) intent() entity.Intent {
	var in entity.Intent
	if g.input.IsKeyDown(input.KeyForward) {
		in.ZA--
	}
	if g.input.IsKeyDown(input.KeyBack) {
		in.ZA++
	}
	if g.input.IsKeyDown(input.KeyLeft) {
		in.XA--
	}
	if g.input.IsKeyDown(input.KeyRight) {
		in.XA++
	}
	in.Jump = g.input.IsKeyDown(input.KeyJump)
	in.Reset = g.input.IsKeyDown(input.KeyReset)
	return in
}

// syncSize fits the framebuffer to the terminal, leaving the bottom row for the HUD
func (g *Game) syncSize() {
	w, h := g.input.Size()
	if (w <= 0 || h <= 0) && g.screen != nil {
		w, h = g.screen.Size()
	}
	if w <= 0 || h <= 0 {
		return
	}
	g.surface.Resize(w, max(h-1, 1)*2)
}

func (g *Game) pick(a float32) {
	s := g.surface
	vp := s.Viewport()
	s.SetProjection(g.camera.PickProjection(vp))
	s.SetModelView(g.camera.View(g.player.Body(), a))

	s.BeginSelect()
	g.renderer.Pick(g.player.Body().BB)
	g.hit, g.hasHit = render.ClosestHit(s.EndSelect())
	if g.hasHit {
		g.metrics.Picks.Inc()
	}
}

// handleButtons applies queued clicks: right breaks the picked block, left places against the picked face
func (g *Game) handleButtons() {
	for {
		ev, ok := g.input.NextButtonEvent()
		if !ok {
			return
		}
		if !ev.Down || !g.hasHit {
			continue
		}

		switch ev.Button {
		case input.ButtonRight:
			g.grid.SetTile(g.hit.X, g.hit.Y, g.hit.Z, parameter.BlockAir)
			g.sound.PlayBreak()
			g.metrics.TileChanged(status.ActionBreak)
		case input.ButtonLeft:
			x, y, z := g.hit.Adjacent()
			if !g.inWorld(x, y, z) {
				continue
			}
			g.grid.SetTile(x, y, z, parameter.BlockSolid)
			g.sound.PlayPlace()
			g.metrics.TileChanged(status.ActionPlace)
		}
	}
}

func (g *Game) inWorld(x, y, z int) bool {
	w, h, d := g.grid.Extents()
	return x >= 0 && y >= 0 && z >= 0 && x < w && y < d && z < h
}

func (g *Game) render(a float32) {
	s := g.surface
	vp := s.Viewport()
	sky := g.cfg.Render.SkyColor

	s.Clear(sky[0], sky[1], sky[2])
	s.SetProjection(g.camera.Projection(vp))
	s.SetModelView(g.camera.View(g.player.Body(), a))
	s.SetCull(true)

	// Lit layer without fog, then entities, then the shadowed layer fogged
	s.SetFog(false)
	stats := g.renderer.Render(0)
	g.renderZombies(a)
	s.SetFog(true)
	stats = stats.Add(g.renderer.Render(1))

	s.EnableTexture(false)
	if g.hasHit {
		g.renderer.RenderHit(g.hit, g.clock.Now().UnixMilli())
	}
	s.SetFog(false)

	g.metrics.ChunkRebuilds.Add(float64(stats.Rebuilt))
	g.metrics.Frames.Inc()
	g.frames++

	if g.screen != nil {
		s.Present(g.screen)
		g.drawHUD(g.screen)
		g.screen.Show()
	}
}

// renderZombies draws every zombie whose interpolated body volume is inside the view volume
func (g *Game) renderZombies(a float32) {
	frustum := render.CalcFrustum(g.surface.Projection(), g.surface.ModelView())
	secs := g.clock.Now().Sub(g.start).Seconds()
	const w = parameter.BodyHalfWidth

	g.zombiesDrawn = 0
	for _, z := range g.zombies {
		if !frustum.AABBInFrustum(z.Body().InterpolatedBB(a)) {
			continue
		}
		g.zombiesDrawn++
		p := z.Body().Interpolated(a)
		feet, head := z.ModelSpan(secs)
		bb := physics.NewAABB(p.X-w, p.Y+feet, p.Z-w, p.X+w, p.Y+head, p.Z+w)
		g.renderer.RenderEntity(bb, g.skinTex, zombieSkin)
	}
}

// diagnostics reports frames and chunk updates once per interval
func (g *Game) diagnostics() {
	now := g.clock.Now()
	if g.status != "" && now.After(g.statusUntil) {
		g.status = ""
	}
	for now.Sub(g.lastDiag) >= parameter.DiagnosticInterval {
		g.lastFPS = g.frames
		g.lastUpdates = g.renderer.TakeUpdates()
		g.metrics.FPS.Set(float64(g.frames))
		g.logger.Info("frame stats",
			zap.Int("fps", g.frames),
			zap.Int("chunk_updates", g.lastUpdates),
		)
		g.frames = 0
		g.lastDiag = g.lastDiag.Add(parameter.DiagnosticInterval)
	}
}

// Save writes the world to the configured path
func (g *Game) Save() error {
	path := g.cfg.World.SavePath
	if err := g.grid.Save(path); err != nil {
		g.logger.Error("save failed", zap.String("path", path), zap.Error(err))
		g.setStatus("save failed")
		return err
	}
	g.setStatus("saved")
	return nil
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.clock.Now().Add(statusHold)
}
