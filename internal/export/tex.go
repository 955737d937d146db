package export

import (
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/services/board"
)

// TeX braces clash with the default delimiters
const texTemplate = `\documentclass[11pt,dvipdfmx]{jsarticle}

\usepackage{tcolorbox}
\newtcolorbox{areabox}[2][]{colbacktitle=black,coltitle=white,title={#2}}

\begin{document}
\title{<< texEscape .Title >>}
\author{}
\date{}
\maketitle

<< range .Areas ->>
\begin{areabox}{<< .Index >>}
<< range splitList "\n" (trimSuffix "\n" .Description) ->>
<< texEscape . >>\\
<< end ->>
\end{areabox}

<< end ->>
\end{document}
`

var texFuncs = template.FuncMap{
	"texEscape": texEscape,
}

var texDocument = template.Must(
	template.New("tex").
		Delims("<<", ">>").
		Funcs(sprig.TxtFuncMap()).
		Funcs(texFuncs).
		Parse(texTemplate),
)

var texReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// texEscape quotes the characters LaTeX treats as commands
func texEscape(s string) string {
	return texReplacer.Replace(s)
}

// WriteTeX renders the board as a jsarticle document with one areabox per square
func WriteTeX(w io.Writer, world *board.World, p *message.Printer) error {
	return texDocument.Execute(w, newDocument(world, p))
}
