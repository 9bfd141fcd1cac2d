package viz

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/surface"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(36)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

// sparkWidth is the sparkline width and the number of depth samples kept.
const sparkWidth = 24

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  → L N Space - Next step             ║
║  ← H P       - Previous step         ║
║  Home / End  - First / last step     ║
║  T           - Cycle themes          ║
║  ?           - Toggle this help      ║
║  Q           - Quit                  ║
╚══════════════════════════════════════╝
`

// Player is the Bubble Tea model driving a Stepper from the keyboard.
type Player struct {
	title         string
	stepper       *anim.Stepper
	tree          *surface.Tree
	unit          Unit
	theme         int
	showHelp      bool
	err           error
	depthHistory  []float64
	width, height int
}

// NewPlayer wraps a constructed stepper and the tree it mutates.
func NewPlayer(title string, st *anim.Stepper, tree *surface.Tree, unit Unit, theme string) Player {
	p := Player{
		title:   title,
		stepper: st,
		tree:    tree,
		unit:    unit,
		width:   80,
		height:  24,
	}
	for i, name := range ThemeNames() {
		if name == theme {
			p.theme = i
		}
	}
	p.depthHistory = append(p.depthHistory, float64(st.UndoDepth()))
	return p
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(p Player) error {
	_, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}

func (p Player) Init() tea.Cmd { return nil }

// CanPrevious stops at step 1; step 0 is only reachable programmatically.
func (p Player) CanPrevious() bool { return p.stepper.StepIndex() > 1 }

func (p Player) CanNext() bool { return p.stepper.CanAdvance() }

func (p Player) Theme() Theme { return Themes[p.theme] }

func (p Player) Err() error { return p.err }

// Update handles input events and moves the stepper.
func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case "right", "l", "n", " ":
			if p.CanNext() {
				p.move(p.stepper.Advance)
			}
		case "left", "h", "p":
			if p.CanPrevious() {
				p.move(p.stepper.Retreat)
			}
		case "home":
			p.move(func() error { return p.stepper.Seek(min(1, p.stepper.Len())) })
		case "end":
			p.move(func() error { return p.stepper.Seek(p.stepper.Len()) })
		case "t":
			p.theme = (p.theme + 1) % len(Themes)
		case "?":
			p.showHelp = !p.showHelp
		}
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	}
	return p, nil
}

func (p *Player) move(fn func() error) {
	p.err = fn()
	p.depthHistory = append(p.depthHistory, float64(p.stepper.UndoDepth()))
	if over := len(p.depthHistory) - sparkWidth; over > 0 {
		p.depthHistory = slices.Clone(p.depthHistory[over:])
	}
}

// View renders the TUI interface.
func (p Player) View() string {
	theme := p.Theme()
	canvas := Rasterize(p.tree, p.unit, theme)
	canvasView := canvasStyle.Render(canvas.Render(theme))

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(p.title)) + "\n\n")

	k, n := p.stepper.StepIndex(), p.stepper.Len()
	progress := 0.0
	if n > 0 {
		progress = float64(k) / float64(n)
	}
	s.WriteString(MetricLabel.Render("Step") + MetricValue.Render(fmt.Sprintf("%d / %d", k, n)) + "\n")
	s.WriteString(ProgressBar(progress, sparkWidth) + "\n\n")
	s.WriteString(MetricLabel.Render("Elements") + MetricValue.Render(fmt.Sprintf("%d", len(p.tree.Frame()))) + "\n")
	s.WriteString(MetricLabel.Render("Undo") + MetricValue.Render(fmt.Sprintf("%d", p.stepper.UndoDepth())) + "\n")
	s.WriteString(SparklineChart(p.depthHistory, sparkWidth) + "\n")
	s.WriteString(MetricLabel.Render("Theme") + MetricValue.Render(theme.Name) + "\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		Button("◀ Previous", p.CanPrevious()),
		" ",
		Button("Next ▶", p.CanNext()),
	)
	s.WriteString(buttons + "\n")

	if p.err != nil {
		s.WriteString(ErrorText.Render(p.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render(KeyHint.Render("←/→:Step  T:Theme  ?:Help  Q:Quit")))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if p.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}
