package tools

import (
	"fmt"
	"io"

	"github.com/stageworks/screenplay/playbook"

	md "github.com/russross/blackfriday/v2"
)

// RenderPlaybookHTML writes an HTML fragment documenting the
// playbook's behaviors.  Doc strings are treated as Markdown.
func RenderPlaybookHTML(p *playbook.Playbook, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	if p.Doc != "" {
		f(`<div class="playbookDoc doc">%s</div>`, md.Run([]byte(p.Doc)))
	}

	f(`<div class="callables"><table>`)
	for _, d := range p.Callables {
		f(`<tr class="callable"><td><span id="%s" class="callableName">%s</span></td>`, d.Name, d.Name)
		f(`<td><span class="kind">%s</span></td><td>`, d.Kind)

		if d.Doc != "" {
			f(`<div class="callableDoc doc">%s</div>`, md.Run([]byte(d.Doc)))
		}

		if 0 < len(d.Params) {
			f(`<div class="params"><table>`)
			for _, pd := range d.Params {
				f(`<tr><td><code>%s</code></td>`, pd.Name)
				if pd.Default != nil || pd.Optional {
					f(`<td>default: <code>%v</code></td>`, pd.Default)
				} else {
					f(`<td>required</td>`)
				}
				f(`</tr>`)
			}
			f(`</table></div>`)
		}

		if d.Source != "" {
			f(`<div class="code"><pre>%s</pre></div>`, d.Source)
		}

		f(`</td></tr>`)
	}
	f(`</table></div>`)

	return nil
}

// RenderPlaybookPage writes a complete HTML page for the playbook.
func RenderPlaybookPage(p *playbook.Playbook, out io.Writer, cssFiles []string) error {

	if cssFiles == nil {
		cssFiles = []string{"/static/playbook.css"}
	}

	title := p.Name
	if title == "" {
		title = "playbook"
	}

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, title)

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
    <h1>%s</h1>
`, title)

	if err := RenderPlaybookHTML(p, out); err != nil {
		return err
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)

	return nil
}
