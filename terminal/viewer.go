// Package terminal displays a mosaic in the terminal using tcell.
package terminal

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"mosaic/core"
	"mosaic/grid"
)

// screenSurface adapts a tcell screen to core.Surface. Each terminal cell
// counts as one pixel, painted as a background-colored space.
type screenSurface struct {
	screen tcell.Screen
}

func (s *screenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *screenSurface) FillRect(x, y, w, h int, c core.Color) {
	style := tcell.StyleDefault.Background(toTcellColor(c))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func toTcellColor(c core.Color) tcell.Color {
	cc := c.Clamped()
	return tcell.NewRGBColor(
		int32(cc.R*255+0.5),
		int32(cc.G*255+0.5),
		int32(cc.B*255+0.5),
	)
}

// Viewer renders a mosaic full-screen in the terminal and lets the user
// toggle its display flags interactively.
//
// Key bindings:
//
//	q, Esc    quit
//	g         toggle grouting on/off
//	a         toggle grouting around unset cells
//	3         toggle the 3D bevel
//	r         fill every cell with a random color
//	c         clear every cell
type Viewer struct {
	mosaic *grid.Mosaic
	rng    *rand.Rand
}

// NewViewer creates a viewer for the given mosaic. The seed drives the 'r'
// randomize binding.
func NewViewer(m *grid.Mosaic, seed int64) *Viewer {
	return &Viewer{
		mosaic: m,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run takes over the terminal until the user quits. The mosaic repaints
// itself whenever the terminal is resized, following the screen's current
// dimensions. The screen is restored and the surface detached on return.
func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	v.mosaic.SetSurface(&screenSurface{screen: screen})
	defer v.mosaic.SetSurface(nil)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.mosaic.Repaint()
			screen.Show()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
			screen.Show()
		}
	}
}

// handleKey applies a key event to the mosaic; a true return means quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'g':
			if _, ok := v.mosaic.GroutingColor(); ok {
				v.mosaic.ClearGroutingColor()
			} else {
				v.mosaic.SetGroutingColor(core.Gray)
			}
		case 'a':
			v.mosaic.SetAlwaysDrawGrouting(!v.mosaic.AlwaysDrawGrouting())
		case '3':
			v.mosaic.SetUse3D(!v.mosaic.Use3D())
		case 'r':
			v.randomize()
		case 'c':
			v.mosaic.Clear()
		}
	}
	return false
}

func (v *Viewer) randomize() {
	for row := 0; row < v.mosaic.Rows(); row++ {
		for col := 0; col < v.mosaic.Columns(); col++ {
			v.mosaic.SetRGB(row, col, v.rng.Float64(), v.rng.Float64(), v.rng.Float64())
		}
	}
}
