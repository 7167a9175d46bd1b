package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shapelab/internal/geom"
	"shapelab/internal/scene"
	"shapelab/internal/storage"
)

const (
	moveStep   = 5.0  // world units per keypress
	rotateStep = 0.1  // radians per keypress
	spinStep   = 0.05 // radians per tick in spin mode
	spinRate   = 30   // ticks per second
	chromeRows = 3    // status + pairs + help lines under the canvas
	worldPad   = 30.0 // world units of margin around the scene
)

// Options holds the runtime settings for a sandbox session.
type Options struct {
	Width    int // terminal columns
	Height   int // terminal rows
	TickRate int // spin mode tick rate; 0 means spinRate
}

// SandboxModel is the Bubble Tea model for the interactive collision
// sandbox: pick a body, push it around, watch intersections light up.
type SandboxModel struct {
	scene *scene.Scene
	store *storage.Store
	opts  Options

	keys KeyMap
	help help.Model

	selected int
	spinning bool
	pairs    []scene.Pair
	hot      map[string]bool

	started  time.Time
	runSaved bool
	quitting bool
}

// NewSandboxModel creates a sandbox over the given scene. The store may be
// nil; run recording is then skipped.
func NewSandboxModel(sc *scene.Scene, store *storage.Store, opts Options) SandboxModel {
	if opts.TickRate <= 0 {
		opts.TickRate = spinRate
	}
	m := SandboxModel{
		scene:   sc,
		store:   store,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}
	m.recompute()
	return m
}

// Init starts the model. No tick is scheduled until spin mode is on.
func (m SandboxModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SandboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m SandboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextBody):
		if n := len(m.scene.Bodies); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevBody):
		if n := len(m.scene.Bodies); n > 0 {
			m.selected = (m.selected + n - 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.moveSelected(-moveStep, 0), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveSelected(moveStep, 0), nil
	case key.Matches(msg, m.keys.Up):
		// y-down world: up on screen is negative y.
		return m.moveSelected(0, -moveStep), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveSelected(0, moveStep), nil

	case key.Matches(msg, m.keys.RotateCW):
		return m.rotateSelected(rotateStep), nil
	case key.Matches(msg, m.keys.RotateCCW):
		return m.rotateSelected(-rotateStep), nil

	case key.Matches(msg, m.keys.ToggleSpin):
		m.spinning = !m.spinning
		if m.spinning {
			return m, tickCmd(m.opts.TickRate)
		}
		return m, nil
	}

	return m, nil
}

func (m SandboxModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.spinning || m.quitting {
		return m, nil
	}
	next := m.rotateSelected(spinStep)
	return next, tickCmd(m.opts.TickRate)
}

func (m SandboxModel) moveSelected(dx, dy float64) SandboxModel {
	if b := m.selectedBody(); b != nil {
		b.MoveBy(dx, dy)
		m.recompute()
	}
	return m
}

func (m SandboxModel) rotateSelected(angle float64) SandboxModel {
	if b := m.selectedBody(); b != nil {
		b.RotateBy(angle)
		m.recompute()
	}
	return m
}

func (m *SandboxModel) selectedBody() *scene.Body {
	if len(m.scene.Bodies) == 0 {
		return nil
	}
	return m.scene.Bodies[m.selected]
}

// recompute refreshes the colliding pairs and the hot-body set.
func (m *SandboxModel) recompute() {
	m.pairs = m.scene.CollidingPairs()
	m.hot = make(map[string]bool, 2*len(m.pairs))
	for _, p := range m.pairs {
		m.hot[p.A] = true
		m.hot[p.B] = true
	}
}

// saveRun records a summary of the session, best effort.
func (m *SandboxModel) saveRun() {
	if m.store == nil || m.runSaved {
		return
	}
	//nolint:errcheck // Best-effort save, session ends regardless
	m.store.RecordRun(m.scene.Name, m.scene.PairCount(), len(m.pairs), time.Since(m.started))
	m.runSaved = true
}

// worldWindow returns the view window: the union of all body boxes, padded.
func (m SandboxModel) worldWindow() geom.Rect {
	if len(m.scene.Bodies) == 0 {
		return geom.NewRect(-worldPad, -worldPad, 2*worldPad, 2*worldPad)
	}
	first := m.scene.Bodies[0].CurrentShape().BoundingBox()
	minX, maxX := first.MinX(), first.MaxX()
	minY, maxY := first.MinY(), first.MaxY()
	for _, b := range m.scene.Bodies[1:] {
		bb := b.CurrentShape().BoundingBox()
		if bb.MinX() < minX {
			minX = bb.MinX()
		}
		if bb.MaxX() > maxX {
			maxX = bb.MaxX()
		}
		if bb.MinY() < minY {
			minY = bb.MinY()
		}
		if bb.MaxY() > maxY {
			maxY = bb.MaxY()
		}
	}
	return geom.NewRect(minX-worldPad, minY-worldPad, maxX-minX+2*worldPad, maxY-minY+2*worldPad)
}

// View renders the canvas and the status chrome.
func (m SandboxModel) View() string {
	if m.quitting {
		return ""
	}

	w := m.opts.Width
	h := m.opts.Height - chromeRows
	if w < 10 || h < 4 {
		return "terminal too small"
	}

	canvas := NewCanvas(w, h, m.worldWindow())
	for _, b := range m.scene.Bodies {
		canvas.DrawPath(b.CurrentShape().Path(), m.hot[b.ID])
	}

	var sb strings.Builder
	sb.Grow(w*h*3 + 256)

	for y := 0; y < canvas.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		// Group consecutive cells by hotness to limit ANSI escapes.
		x := 0
		for x < canvas.Width() {
			r, isHot := canvas.Cell(x, y)
			startHot := isHot
			var run strings.Builder
			for x < canvas.Width() {
				r, isHot = canvas.Cell(x, y)
				if isHot != startHot {
					break
				}
				run.WriteRune(r)
				x++
			}
			if startHot {
				sb.WriteString(hotStyle.Render(run.String()))
			} else {
				sb.WriteString(canvasStyle.Render(run.String()))
			}
		}
	}

	sb.WriteRune('\n')
	sb.WriteString(m.statusLine())
	sb.WriteRune('\n')
	sb.WriteString(m.pairsLine())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m SandboxModel) statusLine() string {
	name := m.scene.Name
	if name == "" {
		name = "(unnamed)"
	}
	sel := "-"
	if b := m.selectedBody(); b != nil {
		sel = b.ID
	}
	spin := ""
	if m.spinning {
		spin = "  [spinning]"
	}
	return titleStyle.Render(name) +
		statusStyle.Render(fmt.Sprintf("  %d bodies  selected: ", len(m.scene.Bodies))) +
		selectedStyle.Render(sel) +
		statusStyle.Render(spin)
}

func (m SandboxModel) pairsLine() string {
	if len(m.pairs) == 0 {
		return statusStyle.Render("no collisions")
	}
	parts := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		parts[i] = p.String()
	}
	return hitListStyle.Render(fmt.Sprintf("colliding: %s", strings.Join(parts, ", ")))
}

// IsQuitting reports whether the user asked to leave.
func (m SandboxModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a local sandbox session.
func Run(sc *scene.Scene, store *storage.Store, opts Options) error {
	model := NewSandboxModel(sc, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
