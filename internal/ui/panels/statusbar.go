package panels

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/cewatch/internal/compiler"
	"github.com/justinpbarnett/cewatch/internal/ui/styles"
	"github.com/justinpbarnett/cewatch/internal/ui/text"
)

const flashDurationVal = 5 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width    int
	file     string
	compiler string
	panel    string
	focused  bool

	compiling bool
	spinning  bool
	spinner   spinner.Model

	hasResult bool
	exitCode  int
	execCode  *int
	elapsed   time.Duration

	// err is the latest recoverable error. It stays until the next
	// successful compile.
	err string

	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewStatusBar(file, compilerID string) StatusBar {
	return StatusBar{
		file:     filepath.Base(file),
		compiler: compilerID,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.StatusRunning)),
		),
	}
}

// Update advances the spinner while a compile is in flight and lets it
// stop otherwise.
func (s StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return s, nil
	}
	if !s.compiling {
		s.spinning = false
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	appName := styles.TextSecondaryStyle.Render("cewatch " + Version)
	file := styles.TextPrimaryStyle.Render(s.file)
	comp := styles.TextSecondaryStyle.Render(s.compiler)

	left := " " + appName + sep + file + sep + comp

	if state := s.compileState(); state != "" {
		left += sep + state
	}

	if s.err != "" {
		left += sep + styles.ErrorStyle.Render("✗ "+s.err)
	}

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusRunning
		}
		flashStr := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + s.flash)
		left += sep + flashStr
	}

	panel := s.panel
	if s.focused {
		panel += " (focus)"
	}
	right := ""
	if panel != "" {
		right = styles.TextSecondaryStyle.Render(panel) + "  "
	}
	right += styles.TextSecondaryStyle.Render("?:help") + " "

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := s.width - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	if s.width > 0 && lipgloss.Width(line) > s.width {
		line = text.Truncate(line, s.width)
	}
	return line
}

func (s StatusBar) compileState() string {
	if s.compiling {
		return s.spinner.View() + " " + styles.TextSecondaryStyle.Render("compiling")
	}
	if !s.hasResult {
		return ""
	}
	exit := lipgloss.NewStyle().Foreground(styles.ExitCodeColor(s.exitCode)).
		Render(fmt.Sprintf("exit %d", s.exitCode))
	out := exit
	if s.execCode != nil {
		out += " " + lipgloss.NewStyle().Foreground(styles.ExitCodeColor(*s.execCode)).
			Render(fmt.Sprintf("run %d", *s.execCode))
	}
	return out + " " + styles.TextDimStyle.Render(text.FormatElapsed(s.elapsed))
}

// SetCompiling marks a compile as in flight or finished. The returned
// command starts the spinner when it is not already running.
func (s *StatusBar) SetCompiling(on bool) tea.Cmd {
	s.compiling = on
	if on && !s.spinning {
		s.spinning = true
		return s.spinner.Tick
	}
	return nil
}

// SetResult records the outcome of a successful round trip and clears any
// previous error.
func (s *StatusBar) SetResult(r *compiler.Result, elapsed time.Duration) {
	s.hasResult = true
	s.exitCode = r.ExitCode
	s.execCode = nil
	if r.Execution != nil {
		code := r.Execution.ExitCode
		s.execCode = &code
	}
	s.elapsed = elapsed
	s.err = ""
}

// SetError shows a recoverable error. An empty message clears it.
func (s *StatusBar) SetError(msg string) {
	s.err = msg
}

// SetPanel names the selected panel.
func (s *StatusBar) SetPanel(name string, focused bool) {
	s.panel = name
	s.focused = focused
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
