package printer

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"

	"github.com/colonyops/jobform/internal/core/styles"
)

var jsonLiterals = []string{"true", "false", "null"}

// ColorizeJSON indents data and colors keys, strings, numbers, and literals
// with the current theme. Invalid JSON is returned unchanged.
func ColorizeJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	raw := buf.String()
	var out strings.Builder

	for i := 0; i < len(raw); {
		ch := raw[i]

		switch {
		case ch == '"':
			end := stringEnd(raw, i)
			str := raw[i : end+1]
			if isKey(raw[end+1:]) {
				out.WriteString(styles.TextPrimaryStyle.Render(str))
			} else {
				out.WriteString(styles.SuccessStyle.Render(str))
			}
			i = end + 1

		case ch == ':':
			out.WriteString(styles.TextMutedStyle.Render(":"))
			i++

		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := i + 1
			for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
				end++
			}
			out.WriteString(styles.InfoStyle.Render(raw[i:end]))
			i = end

		case strings.IndexByte("{}[]", ch) >= 0:
			out.WriteString(styles.TextForegroundStyle.Render(string(ch)))
			i++

		default:
			n := writeLiteral(&out, raw[i:])
			if n == 0 {
				out.WriteByte(ch)
				n = 1
			}
			i += n
		}
	}

	return out.String()
}

func writeLiteral(out *strings.Builder, rest string) int {
	for _, lit := range jsonLiterals {
		if !strings.HasPrefix(rest, lit) {
			continue
		}
		style := styles.InfoStyle
		if lit == "null" {
			style = styles.ErrorStyle
		}
		out.WriteString(style.Render(lit))
		return len(lit)
	}
	return 0
}

func isKey(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	return rest != "" && rest[0] == ':'
}

// stringEnd returns the index of the quote closing the string opened at pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}
