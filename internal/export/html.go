package export

import (
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/services/board"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
section.area { border: 2px solid black; margin: 1em 0; }
section.area h2 { background: black; color: white; margin: 0; padding: 0.2em 0.5em; }
section.area p { margin: 0.2em 0.5em; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{- range .Areas }}
<section class="area" id="area-{{ .Index }}">
<h2>{{ .Index }}</h2>
{{- range splitList "\n" (trimSuffix "\n" .Description) }}
<p>{{ . }}</p>
{{- end }}
</section>
{{- end }}
</body>
</html>
`

var htmlDocument = template.Must(
	template.New("html").
		Funcs(sprig.HtmlFuncMap()).
		Parse(htmlTemplate),
)

// WriteHTML renders the board as a standalone page with one section per square
func WriteHTML(w io.Writer, world *board.World, p *message.Printer) error {
	return htmlDocument.Execute(w, newDocument(world, p))
}
