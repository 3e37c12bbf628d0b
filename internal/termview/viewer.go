package termview

import (
	"github.com/gdamore/tcell/v2"

	"exobio/internal/bodyplan"
)

// Source supplies specimens to the viewer.
type Source interface {
	Specimen() bodyplan.Specimen
	Title() string
	Summary() string
	Next() error
	Regenerate() error
}

const help = "n next  r redraw  i invert  q quit"

// Viewer is an interactive terminal loop over a Source.
type Viewer struct {
	screen  tcell.Screen
	source  Source
	palette Palette
	status  string
}

// NewViewer binds a viewer to an initialised screen.
func NewViewer(screen tcell.Screen, source Source) *Viewer {
	return &Viewer{screen: screen, source: source, palette: Fossil}
}

// Render repaints the whole screen.
func (v *Viewer) Render() {
	v.screen.Clear()
	_, h := Draw(v.screen, v.source.Specimen().Bitmap, 0, 0, v.palette)
	text := tcell.StyleDefault
	DrawText(v.screen, 0, h, v.source.Title(), text.Bold(true))
	DrawText(v.screen, 0, h+1, v.source.Summary(), text)
	if v.status != "" {
		DrawText(v.screen, 0, h+2, v.status, text.Foreground(tcell.ColorRed))
	}
	DrawText(v.screen, 0, h+3, help, text.Dim(true))
	v.screen.Show()
}

// Handle applies one event and reports whether the viewer should exit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.key(ev.Key(), ev.Rune())
	}
	return false
}

func (v *Viewer) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case 'n':
			v.apply(v.source.Next())
		case 'r':
			v.apply(v.source.Regenerate())
		case 'i':
			if v.palette == Fossil {
				v.palette = Ink
			} else {
				v.palette = Fossil
			}
		}
	}
	return false
}

func (v *Viewer) apply(err error) {
	v.status = ""
	if err != nil {
		v.status = err.Error()
	}
}

// Run renders and processes events until the user quits.
func (v *Viewer) Run() {
	for {
		v.Render()
		ev := v.screen.PollEvent()
		if ev == nil || v.Handle(ev) {
			return
		}
	}
}
