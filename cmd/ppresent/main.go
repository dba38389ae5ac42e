package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/piraz/ppresent/presenter"
)

func main() {
	render := flag.Bool("render", false, "render slide bodies as markdown")
	marker := flag.String("marker", "", "slide heading prefix (default \"#\")")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ppresent [flags] <file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ppresent: %v\n", err)
		os.Exit(1)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	cfg := presenter.Config{
		SourceLabel: filepath.Base(path),
		Marker:      *marker,
		Overrides:   presenter.DefaultOverrides(),
		KeyMap:      presenter.DefaultKeyMap(),
		Style:       presenter.DefaultStyle(),
	}
	if *render {
		cfg.RenderBody = markdownRenderer()
	}

	p := tea.NewProgram(presenter.New(lines, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ppresent: %v\n", err)
		os.Exit(1)
	}
}

// markdownRenderer returns a body hook that renders slide bodies with
// glamour. On any renderer failure the body is shown verbatim instead.
func markdownRenderer() func([]string) []string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil
	}
	return func(lines []string) []string {
		out, err := r.Render(strings.Join(lines, "\n"))
		if err != nil {
			return lines
		}
		return strings.Split(strings.TrimRight(out, "\n"), "\n")
	}
}
