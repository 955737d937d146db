package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/services/board"
)

// Format selects the document type written for a board
type Format string

const (
	FormatTeX  Format = "tex"
	FormatHTML Format = "html"
)

// areaView is one board square as the templates see it
type areaView struct {
	Index       int
	Description string
}

// document is the data passed to every template
type document struct {
	Title string
	Areas []areaView
}

func newDocument(world *board.World, p *message.Printer) document {
	areas := world.Areas()
	doc := document{
		Title: world.Title(),
		Areas: make([]areaView, len(areas)),
	}
	for i, area := range areas {
		doc.Areas[i] = areaView{Index: i, Description: area.Describe(p)}
	}
	return doc
}

// OutputPath returns the sibling of worldPath sharing its stem, e.g.
// boards/river.toml becomes boards/river.tex
func OutputPath(worldPath string, format Format) string {
	base := filepath.Base(worldPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(worldPath), stem+"."+string(format))
}

// Write renders the board in the given format
func Write(w io.Writer, format Format, world *board.World, p *message.Printer) error {
	switch format {
	case FormatTeX:
		return WriteTeX(w, world, p)
	case FormatHTML:
		return WriteHTML(w, world, p)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteFile renders the board next to its board file and returns the path written
func WriteFile(worldPath string, format Format, world *board.World, p *message.Printer) (string, error) {
	path := OutputPath(worldPath, format)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	buf := bufio.NewWriter(f)
	if err := Write(buf, format, world, p); err != nil {
		f.Close()
		return "", err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
