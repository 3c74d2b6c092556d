package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kls-dev/kls/internal/colors"
	"github.com/kls-dev/kls/internal/files"
	"github.com/muesli/termenv"
)

// Options controls the layout.
type Options struct {
	Long  bool
	All   bool
	Color bool
	// Colors holds LS_COLORS rules; nil means none.
	Colors colors.Table
	// Now is the reference time for date formatting; zero means time.Now().
	Now time.Time
}

// Printer writes listings to an io.Writer.
type Printer struct {
	out  io.Writer
	opts Options

	plain   lipgloss.Style
	dir     lipgloss.Style
	exec    lipgloss.Style
	symlink lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	return &Printer{
		out:     w,
		opts:    opts,
		plain:   r.NewStyle(),
		dir:     r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		exec:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		symlink: r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	}
}

// Print writes every list. With more than one list each is headed by its
// path and separated from the previous one by a blank line.
func (p *Printer) Print(lists []*files.List) error {
	for i, list := range lists {
		if i > 0 {
			if _, err := fmt.Fprintln(p.out); err != nil {
				return err
			}
		}
		if len(lists) > 1 {
			if _, err := fmt.Fprintf(p.out, "%s:\n", list.Path); err != nil {
				return err
			}
		}

		var err error
		if p.opts.Long {
			err = p.printLong(list)
		} else {
			err = p.printShort(list)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type named struct {
	entry *files.Entry
	name  string
}

// rows returns the entries to show, with "." and ".." first when All is set.
func (p *Printer) rows(list *files.List) []named {
	var out []named
	if p.opts.All && list.Dir != nil {
		out = append(out, named{list.Dir, "."})
		parent := list.Parent
		if parent == nil {
			parent = list.Dir
		}
		out = append(out, named{parent, ".."})
	}
	for _, e := range list.Entries {
		out = append(out, named{e, e.Name})
	}
	return out
}

func (p *Printer) printShort(list *files.List) error {
	rows := p.rows(list)
	if len(rows) == 0 {
		return nil
	}

	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = p.styleName(row.entry, row.name)
	}
	_, err := fmt.Fprintln(p.out, strings.Join(parts, "  "))
	return err
}

// columns holds one long-format row; the first six fields are padded.
type columns struct {
	mode, links, user, group, size, modified string
	name                                     string
}

func (c columns) padded() [6]string {
	return [6]string{c.mode, c.links, c.user, c.group, c.size, c.modified}
}

func (p *Printer) printLong(list *files.List) error {
	rows := p.rows(list)

	cols := make([]columns, len(rows))
	var widths [6]int
	for i, row := range rows {
		e := row.entry
		cols[i] = columns{
			mode:     e.ModeString(),
			links:    e.LinkCount(),
			user:     e.Owner(),
			group:    e.Group(),
			size:     strconv.FormatInt(e.Size, 10),
			modified: e.Modified(p.opts.Now),
			name:     p.longName(e, row.name),
		}
		for j, s := range cols[i].padded() {
			widths[j] = max(widths[j], lipgloss.Width(s))
		}
	}

	if _, err := fmt.Fprintf(p.out, "total %d\n", list.Total); err != nil {
		return err
	}
	for _, c := range cols {
		_, err := fmt.Fprintf(p.out, "%s %s %s %s %s %s %s\n",
			padLeft(c.mode, widths[0]),
			padLeft(c.links, widths[1]),
			padRight(c.user, widths[2]),
			padRight(c.group, widths[3]),
			padLeft(c.size, widths[4]),
			padLeft(c.modified, widths[5]),
			c.name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// styleName colors a display name by entry kind, then by LS_COLORS.
func (p *Printer) styleName(e *files.Entry, name string) string {
	var style lipgloss.Style
	switch {
	case e.Kind == files.KindSymlink:
		style = p.symlink
	case e.Kind == files.KindDir:
		style = p.dir
	case e.IsExecutable():
		style = p.exec
	default:
		style = p.plain
	}
	return p.render(p.opts.Colors.Apply(style, name), name)
}

// longName adds " -> target" for symlinks, colored by what the target is.
// The LS_COLORS rule for the link's name covers the whole line, arrow and
// target included.
func (p *Printer) longName(e *files.Entry, name string) string {
	styled := p.styleName(e, name)
	if e.Kind != files.KindSymlink {
		return styled
	}

	var style lipgloss.Style
	switch {
	case e.TargetKind == files.KindDir:
		style = p.dir
	case e.TargetKind == files.KindSymlink:
		style = p.symlink
	case e.TargetExec:
		style = p.exec
	default:
		style = p.plain
	}
	arrow := p.render(p.opts.Colors.Apply(p.plain, name), " -> ")
	return styled + arrow + p.render(p.opts.Colors.Apply(style, name), e.LinkTarget)
}

// render styles s without altering it: tabs are kept and each line of a
// multi-line name is rendered on its own so no padding is added. Without
// color s is returned as is.
func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.opts.Color {
		return s
	}
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
