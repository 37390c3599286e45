// Package tui implements the interactive region selector: a terminal stand-in
// for the original drag-select interaction. The selection is moved and
// resized with the keyboard over a minimap of the scene, and confirming it
// hands the session to the capture pipeline.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/levelsnap/levelsnap/internal/capture"
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
	"github.com/levelsnap/levelsnap/internal/scene"
)

// minimap grid size in cells
const (
	mapCols = 48
	mapRows = 16
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Grow    key.Binding
	Shrink  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		Grow:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow selection")),
		Shrink:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "shrink selection")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "capture")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "cancel")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Grow, k.Shrink, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grow, k.Shrink, k.Confirm, k.Cancel, k.Help},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mapStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model driving the selection. The session's bounds
// are updated in place as the selection moves, so the caller's session holds
// the final region once the program exits.
type Model struct {
	session *capture.Session
	scene   *scene.Scene
	keys    keyMap
	help    help.Model

	// viewport is the world region the minimap shows
	viewport geom.Rect
	// step is the world-unit distance one keypress moves the selection
	step float32

	confirmed bool
	canceled  bool
}

// New creates a selector over the given session and scene. The minimap
// viewport covers the union of the scene entities with some padding, or a
// default square for an empty scene.
func New(session *capture.Session, sc *scene.Scene) Model {
	viewport := geom.NewRect(-8, -8, 16, 16)
	if len(sc.Entities) > 0 {
		union := sc.Entities[0].Rect
		for _, e := range sc.Entities[1:] {
			union = union.Union(e.Rect)
		}
		pad := union.Size.Scale(0.25)
		viewport = geom.NewRect(union.Min.X-pad.X, union.Min.Y-pad.Y,
			union.Size.X+2*pad.X, union.Size.Y+2*pad.Y)
	}

	if session.Bounds.Size.X <= 0 || session.Bounds.Size.Y <= 0 {
		center := viewport.Center()
		session.SetDrag(
			geom.Vec2{X: center.X - viewport.Size.X/4, Y: center.Y - viewport.Size.Y/4},
			geom.Vec2{X: center.X + viewport.Size.X/4, Y: center.Y + viewport.Size.Y/4},
		)
	}

	return Model{
		session:  session,
		scene:    sc,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport,
		step:     viewport.Size.X / mapCols,
	}
}

// Confirmed reports whether the user confirmed the selection.
func (m Model) Confirmed() bool { return m.confirmed }

// Canceled reports whether the user backed out.
func (m Model) Canceled() bool { return m.canceled }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(0, m.step)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(0, -m.step)
		case key.Matches(msg, m.keys.Left):
			m.moveSelection(-m.step, 0)
		case key.Matches(msg, m.keys.Right):
			m.moveSelection(m.step, 0)
		case key.Matches(msg, m.keys.Grow):
			m.resizeSelection(m.step)
		case key.Matches(msg, m.keys.Shrink):
			m.resizeSelection(-m.step)
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) moveSelection(dx, dy float32) {
	b := m.session.Bounds
	b.Center = b.Center.Add(geom.Vec2{X: dx, Y: dy})
	m.session.SetBounds(b)
}

func (m *Model) resizeSelection(delta float32) {
	b := m.session.Bounds
	b.Size.X += delta
	b.Size.Y += delta
	if b.Size.X < m.step {
		b.Size.X = m.step
	}
	if b.Size.Y < m.step {
		b.Size.Y = m.step
	}
	m.session.SetBounds(b)
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	title := m.scene.Name
	if title == "" {
		title = m.session.ScenePath
	}
	sb.WriteString(titleStyle.Render("levelsnap: "+title) + "\n")
	sb.WriteString(mapStyle.Render(m.renderMinimap()) + "\n")

	b := m.session.Bounds
	sb.WriteString(statusStyle.Render(fmt.Sprintf(
		"selection %s   ppu %g   margin %g",
		b.String(), m.session.Params.PixelsPerUnit, m.session.Params.Margin,
	)) + "\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// renderMinimap draws entities as '#' and the selection border as '+' on a
// character grid covering the viewport.
func (m Model) renderMinimap() string {
	grid := make([][]rune, mapRows)
	for r := range grid {
		grid[r] = make([]rune, mapCols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	for _, e := range m.scene.Entities {
		m.stampRect(grid, e.Rect, '#', false)
	}
	m.stampRect(grid, m.session.Bounds.Rect(), '+', true)

	rows := make([]string, mapRows)
	for r := range grid {
		rows[r] = string(grid[r])
	}
	return strings.Join(rows, "\n")
}

// stampRect marks a world rect on the grid, either filled or border-only.
// World +Y is up, grid row 0 is the top.
func (m Model) stampRect(grid [][]rune, r geom.Rect, mark rune, borderOnly bool) {
	toCell := func(v geom.Vec2) (col, row int) {
		col = int((v.X - m.viewport.Min.X) / m.viewport.Size.X * mapCols)
		row = int((m.viewport.Max().Y - v.Y) / m.viewport.Size.Y * mapRows)
		return col, row
	}

	c0, r1 := toCell(r.Min)
	c1, r0 := toCell(r.Max())

	for row := max(r0, 0); row <= min(r1, mapRows-1); row++ {
		for col := max(c0, 0); col <= min(c1, mapCols-1); col++ {
			if borderOnly && row != r0 && row != r1 && col != c0 && col != c1 {
				continue
			}
			grid[row][col] = mark
		}
	}
}

// Run drives the selector to completion. It returns ErrSelectionCanceled if
// the user backed out, in which case the caller aborts silently.
func Run(session *capture.Session, sc *scene.Scene) error {
	final, err := tea.NewProgram(New(session, sc)).Run()
	if err != nil {
		return fmt.Errorf("selector: %w", err)
	}
	if m, ok := final.(Model); ok && m.Canceled() {
		return errors.ErrSelectionCanceled
	}
	return nil
}
