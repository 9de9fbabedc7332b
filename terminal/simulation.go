package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Simulation is an in-memory console over a tcell simulation screen
// Drawing is inspected with Cell and Row; input is injected through tcell
type Simulation struct {
	*tcellConsole
	screen tcell.SimulationScreen
}

// NewSimulation creates an in-memory console of the given size
func NewSimulation(width, height int, opts ...Option) (*Simulation, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, newIOError("tcell.Init", err)
	}
	screen.SetSize(width, height)

	o := newOptions(opts)
	return &Simulation{
		tcellConsole: newTcellConsole(screen, o.configOrDefault(), o),
		screen:       screen,
	}, nil
}

// Screen exposes the underlying simulation screen
func (s *Simulation) Screen() tcell.SimulationScreen {
	return s.screen
}

// Cell returns the character and colors at (x, y); blank cells read as ' '
func (s *Simulation) Cell(x, y int) (ch rune, bg, fg Color) {
	mainc, _, style, _ := s.screen.GetContent(x, y)
	if mainc == 0 {
		mainc = ' '
	}
	tfg, tbg, _ := style.Decompose()
	return mainc, tcellToColor[tbg], tcellToColor[tfg]
}

// Background returns the background color at (x, y)
func (s *Simulation) Background(x, y int) Color {
	_, bg, _ := s.Cell(x, y)
	return bg
}

// Row returns the characters of row y
func (s *Simulation) Row(y int) string {
	w, _ := s.screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, comb, _, width := s.screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
		for _, c := range comb {
			sb.WriteRune(c)
		}
		if width == 2 {
			x++
		}
	}
	return sb.String()
}

// InjectKey posts a key press
func (s *Simulation) InjectKey(key tcell.Key, r rune, mod tcell.ModMask) {
	s.screen.InjectKey(key, r, mod)
}

// InjectMouse posts a mouse report with the buttons currently held
func (s *Simulation) InjectMouse(x, y int, buttons tcell.ButtonMask, mod tcell.ModMask) {
	s.screen.InjectMouse(x, y, buttons, mod)
}

// Resize changes the screen size and posts the resize notification
func (s *Simulation) Resize(width, height int) {
	s.screen.SetSize(width, height)
	s.screen.PostEvent(tcell.NewEventResize(width, height))
}
