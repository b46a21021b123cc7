// Package render draws the simulation as a vehicle-centered top-down view in
// the terminal and runs the frame loop around it.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/voidrun/slipstream/geom"
	"github.com/voidrun/slipstream/input"
	"github.com/voidrun/slipstream/race"
	"github.com/voidrun/slipstream/sim"
	"github.com/voidrun/slipstream/track"
)

// World units per terminal cell. Vertical cells cover more distance because
// terminal glyphs are roughly twice as tall as wide.
const (
	cellsPerUnitX = 0.5
	cellsPerUnitZ = 0.25

	edgeSampleStep = 4.0 // world units between boundary sample points
)

var (
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCheck    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleVehicle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBoost    = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleShield   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleAsteroid = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTurb     = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleAnomaly  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	stylePickup   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Viewer owns the screen and the frame loop.
type Viewer struct {
	screen tcell.Screen
	sim    *sim.Simulation
	logger *zap.Logger

	keyboard      input.Keyboard
	width, height int
	frameRate     int
}

// NewViewer initializes the terminal screen.
func NewViewer(s *sim.Simulation, frameRate int, logger *zap.Logger) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newViewer(screen, s, frameRate, logger)
}

func newViewer(screen tcell.Screen, s *sim.Simulation, frameRate int,
	logger *zap.Logger,
) (*Viewer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	v := &Viewer{
		screen:    screen,
		sim:       s,
		logger:    logger,
		frameRate: frameRate,
	}
	v.width, v.height = screen.Size()
	return v, nil
}

// Run drives the tick/draw loop until quit. Blocks the calling goroutine.
func (v *Viewer) Run() {
	defer v.screen.Fini()

	interval := time.Second / time.Duration(v.frameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Fini makes PollEvent return nil and the closed quit channel unblocks
	// any pending send, so the poll goroutine always exits with Run.
	quit := make(chan struct{})
	defer close(quit)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			v.sim.Tick(v.keyboard.Intent(now), dt)
			v.draw(v.sim.Snapshot())
		}
	}
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			v.logger.Info("quit requested")
			return false
		}
		v.keyboard.HandleEvent(ev, time.Now())

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// toScreen maps a world-space offset from the vehicle to a screen cell.
// World -z (ahead) points up the screen.
func (v *Viewer) toScreen(dx, dz float64) (int, int) {
	x := v.width/2 + int(dx*cellsPerUnitX*2)
	y := v.height/2 + int(dz*cellsPerUnitZ*2)
	return x, y
}

func (v *Viewer) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *Viewer) draw(snap sim.Snapshot) {
	v.screen.Clear()

	v.drawTrack(snap)
	v.drawEntities(snap)

	// Vehicle stays centered; the world scrolls under it.
	style := styleVehicle
	switch {
	case snap.Boosting:
		style = styleBoost
	case snap.Shielded:
		style = styleShield
	}
	v.set(v.width/2, v.height/2, '^', style)

	v.drawHUD(snap)
	v.drawBanner(snap)

	v.screen.Show()
}

// drawTrack samples both corridor edges of every live segment. Checkpoint
// segments render their full crossing plane instead of edge dots.
func (v *Viewer) drawTrack(snap sim.Snapshot) {
	for _, s := range snap.Segments {
		right := geom.RightOf(s.Dir)
		half := s.Width / 2

		length := s.End.Sub(s.Start).Len()
		for along := 0.0; along <= length; along += edgeSampleStep {
			p := s.Start.Add(s.Dir.Mul(along))
			for _, side := range []float64{-half, half} {
				q := p.Add(right.Mul(side))
				x, y := v.toScreen(q.X()-snap.Position.X(), q.Z()-snap.Position.Z())
				v.set(x, y, '|', styleEdge)
			}
		}

		if s.Checkpoint {
			for off := -half; off <= half; off += edgeSampleStep / 2 {
				q := s.End.Add(right.Mul(off))
				x, y := v.toScreen(q.X()-snap.Position.X(), q.Z()-snap.Position.Z())
				v.set(x, y, '=', styleCheck)
			}
		}
	}
}

func (v *Viewer) drawEntities(snap sim.Snapshot) {
	for _, h := range snap.Hazards {
		if !h.Active {
			continue
		}
		var r rune
		var style tcell.Style
		switch h.Kind {
		case track.HazardAsteroid:
			r, style = '*', styleAsteroid
		case track.HazardTurbulence:
			r, style = '~', styleTurb
		case track.HazardGravityAnomaly:
			r, style = '@', styleAnomaly
		}
		x, y := v.toScreen(h.Position.X()-snap.Position.X(), h.Position.Z()-snap.Position.Z())
		v.set(x, y, r, style)
	}

	for _, p := range snap.PowerUps {
		if !p.Active {
			continue
		}
		r := 'B'
		if p.Kind == track.PowerUpShield {
			r = 'S'
		}
		x, y := v.toScreen(p.Position.X()-snap.Position.X(), p.Position.Z()-snap.Position.Z())
		v.set(x, y, r, stylePickup)
	}
}

func (v *Viewer) drawHUD(snap sim.Snapshot) {
	status := ""
	if snap.Boosting {
		status += " BOOST"
	}
	if snap.Shielded {
		status += " SHIELD"
	}
	lines := []string{
		fmt.Sprintf("lap %d/%d  score %d", snap.Lap, snap.TotalLaps, snap.Score),
		fmt.Sprintf("health %3.0f  speed %4.2f%s", snap.Health, snap.Speed, status),
		fmt.Sprintf("time %6.2fs  best %6.2fs",
			snap.Elapsed.Seconds(), snap.BestLap.Seconds()),
		fmt.Sprintf("alt %+5.1f", snap.Position.Y()),
	}
	for i, line := range lines {
		v.printAt(1, 1+i, line, styleHUD)
	}
}

func (v *Viewer) drawBanner(snap sim.Snapshot) {
	var msg string
	switch snap.Phase {
	case race.PhaseReady:
		msg = "SLIPSTREAM - press any key to launch"
	case race.PhaseGameOver:
		msg = fmt.Sprintf("DESTROYED - score %d - press R to restart", snap.Score)
	case race.PhaseFinished:
		msg = fmt.Sprintf("RACE COMPLETE - score %d - press R to restart", snap.Score)
	default:
		return
	}
	v.printAt((v.width-len(msg))/2, v.height/3, msg, styleBanner)
}

func (v *Viewer) printAt(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.set(x+i, y, r, style)
	}
}
