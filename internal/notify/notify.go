// Package notify prints foldercat's console notifications.
package notify

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/taigrr/foldercat/internal/matcher"
	"github.com/taigrr/foldercat/internal/types"
)

const rule = "=================================================="

type styles struct {
	created  lipgloss.Style
	deleted  lipgloss.Style
	modified lipgloss.Style
	path     lipgloss.Style
	match    lipgloss.Style
	heading  lipgloss.Style
	label    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		created:  r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#00875f", Dark: "#5fd787"}),
		deleted:  r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#d70000", Dark: "#ff5f5f"}),
		modified: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#af8700", Dark: "#ffd75f"}),
		path:     r.NewStyle().Faint(true),
		match:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#af00af", Dark: "#ff87ff"}),
		heading:  r.NewStyle().Bold(true),
		label:    r.NewStyle().Faint(true),
	}
}

// Notifier turns watcher events into console lines. Creations are checked
// against the file or folder rules and each match is listed below the
// notice.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	files   types.Rules
	folders types.Rules
	styles  styles
}

// New creates a Notifier writing to out. color is one of types.ColorAuto,
// types.ColorAlways or types.ColorNever; auto enables colour only when out
// is a terminal.
func New(out io.Writer, files, folders types.Rules, color string) *Notifier {
	r := lipgloss.NewRenderer(out)
	switch color {
	case types.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case types.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Notifier{
		out:     out,
		files:   files,
		folders: folders,
		styles:  newStyles(r),
	}
}

// Handle prints the notice for one event and returns the match
// descriptions it printed, if any.
func (n *Notifier) Handle(event types.Event) []string {
	kind := "file"
	if event.IsDir {
		kind = "folder"
	}

	var (
		headline string
		matches  []string
	)
	switch event.Kind {
	case types.Created:
		headline = n.styles.created.Render(fmt.Sprintf("🐱 Meow! New %s spotted:", kind))
		rules := n.files
		if event.IsDir {
			rules = n.folders
		}
		matches = matcher.Describe(filepath.Base(event.Path), rules, event.IsDir)
	case types.Deleted:
		headline = n.styles.deleted.Render(fmt.Sprintf("🐱 Nya!? A %s vanished:", kind))
	case types.Modified:
		if event.IsDir {
			return nil
		}
		headline = n.styles.modified.Render("🐱 A file was modified:")
	default:
		return nil
	}

	var b strings.Builder
	b.WriteString(headline + " " + n.styles.path.Render(event.Path) + "\n")
	for _, m := range matches {
		b.WriteString("   " + n.styles.match.Render("🎯 "+m) + "\n")
	}

	n.write(b.String())
	return matches
}

// Banner prints the startup summary: the watched path and every non-empty
// rule category. Folders never list extensions since they are not checked.
func (n *Notifier) Banner(watchPath string, ignore []string) {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(n.styles.heading.Render("🐱 foldercat is on watch") + "\n")
	b.WriteString("   " + n.styles.label.Render("watching:") + " " + watchPath + "\n")

	b.WriteString("   📁 file patterns:\n")
	n.writeRules(&b, n.files, true)
	b.WriteString("   📂 folder patterns:\n")
	n.writeRules(&b, n.folders, false)

	if len(ignore) > 0 {
		b.WriteString("   " + n.styles.label.Render("ignoring:") + " " + strings.Join(ignore, ", ") + "\n")
	}
	b.WriteString("   Press Ctrl+C to stop\n")
	b.WriteString(rule + "\n")

	n.write(b.String())
}

func (n *Notifier) writeRules(b *strings.Builder, rules types.Rules, withExtensions bool) {
	row := func(label string, values []string) {
		if len(values) == 0 {
			return
		}
		fmt.Fprintf(b, "     %s %q\n", n.styles.label.Render(label+":"), values)
	}

	row("names", rules.Names)
	if withExtensions {
		row("extensions", rules.Extensions)
	}
	row("prefixes", rules.Prefixes)
	row("suffixes", rules.Suffixes)
}

// Farewell prints the goodbye line.
func (n *Notifier) Farewell() {
	n.write("\n" + n.styles.heading.Render("🐱 See you later, nya!") + "\n")
}

func (n *Notifier) write(s string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = io.WriteString(n.out, s)
}
