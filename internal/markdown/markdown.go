// Package markdown renders the markdown subset used in lesson text for the
// terminal: headings, bullet and numbered lists, block quotes, horizontal
// rules, paragraphs, and inline **bold** and `code`.
package markdown

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/undergrad/internal/ui/theme"
)

const defaultWidth = 80

var (
	h1Style = lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Underline(true)
	h2Style = lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
	h3Style = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)

	bodyStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	boldStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
	codeStyle   = lipgloss.NewStyle().Foreground(theme.Error).Background(theme.BgCard)
	bulletStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	quoteStyle  = lipgloss.NewStyle().Italic(true).Foreground(theme.TextDim)
	ruleStyle   = lipgloss.NewStyle().Foreground(theme.Border)
)

var orderedItem = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Render converts src to styled terminal text wrapped to width columns.
// A non-positive width uses 80.
func Render(src string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var (
		blocks    []string
		para      []string
		list      []string
		quote     []string
		listIsOrd bool
	)

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, wrap(inline(strings.Join(para, " ")), width, ""))
			para = nil
		}
	}
	flushList := func() {
		if len(list) > 0 {
			blocks = append(blocks, strings.Join(list, "\n"))
			list = nil
		}
	}
	flushQuote := func() {
		if len(quote) > 0 {
			bar := bulletStyle.Render("│ ")
			text := wrap(quoteStyle.Render(strings.Join(quote, " ")), width-2, "")
			lines := strings.Split(text, "\n")
			for i, l := range lines {
				lines[i] = bar + l
			}
			blocks = append(blocks, strings.Join(lines, "\n"))
			quote = nil
		}
	}
	flush := func() {
		flushPara()
		flushList()
		flushQuote()
	}

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flush()

		case strings.HasPrefix(line, "### "):
			flush()
			blocks = append(blocks, wrap(h3Style.Render(line[4:]), width, ""))
		case strings.HasPrefix(line, "## "):
			flush()
			blocks = append(blocks, wrap(h2Style.Render(line[3:]), width, ""))
		case strings.HasPrefix(line, "# "):
			flush()
			blocks = append(blocks, wrap(h1Style.Render(line[2:]), width, ""))

		case line == "---" || line == "***":
			flush()
			blocks = append(blocks, ruleStyle.Render(strings.Repeat("─", width)))

		case strings.HasPrefix(line, "> ") || line == ">":
			flushPara()
			flushList()
			quote = append(quote, strings.TrimSpace(strings.TrimPrefix(line, ">")))

		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			flushPara()
			flushQuote()
			if listIsOrd {
				flushList()
			}
			listIsOrd = false
			list = append(list, item(bulletStyle.Render("•")+" ", line[2:], width))

		case orderedItem.MatchString(line):
			flushPara()
			flushQuote()
			if !listIsOrd {
				flushList()
			}
			listIsOrd = true
			m := orderedItem.FindStringSubmatch(line)
			list = append(list, item(bulletStyle.Render(m[1]+".")+" ", m[2], width))

		default:
			flushList()
			flushQuote()
			para = append(para, line)
		}
	}
	flush()

	return strings.Join(blocks, "\n\n")
}

// item renders a list entry with a hanging indent under the marker.
func item(marker, text string, width int) string {
	indent := strings.Repeat(" ", ansi.StringWidth(marker))
	return marker + wrap(inline(text), width-len(indent), indent)
}

// wrap word-wraps s and prefixes continuation lines with indent.
func wrap(s string, width int, indent string) string {
	if width < 10 {
		width = 10
	}
	lines := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	if indent != "" {
		for i := 1; i < len(lines); i++ {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// inline styles **bold** and `code` spans. Unclosed markers are kept as
// literal text.
func inline(s string) string {
	var b strings.Builder
	for len(s) > 0 {
		bold := strings.Index(s, "**")
		code := strings.IndexByte(s, '`')

		switch {
		case bold >= 0 && (code < 0 || bold < code):
			end := strings.Index(s[bold+2:], "**")
			if end < 0 {
				b.WriteString(bodyStyle.Render(s))
				return b.String()
			}
			b.WriteString(bodyStyle.Render(s[:bold]))
			b.WriteString(boldStyle.Render(s[bold+2 : bold+2+end]))
			s = s[bold+2+end+2:]

		case code >= 0:
			end := strings.IndexByte(s[code+1:], '`')
			if end < 0 {
				b.WriteString(bodyStyle.Render(s))
				return b.String()
			}
			b.WriteString(bodyStyle.Render(s[:code]))
			b.WriteString(codeStyle.Render(s[code+1 : code+1+end]))
			s = s[code+1+end+1:]

		default:
			b.WriteString(bodyStyle.Render(s))
			return b.String()
		}
	}
	return b.String()
}
