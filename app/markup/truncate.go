package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements that never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// TruncateWordsHTML cuts an HTML fragment after the given number of
// words. Tags are never split and any tag left open at the cut point is
// closed, so the result is always well-formed. An ellipsis is appended
// when anything was dropped.
func TruncateWordsHTML(fragment string, words int) string {
	if words <= 0 {
		return ""
	}

	var out strings.Builder
	var open []string
	remaining := words
	truncated := false
	ellipsized := false

	tok := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		token := tok.Token()

		switch tt {
		case html.StartTagToken:
			if remaining == 0 {
				continue
			}
			out.WriteString(token.String())
			if !voidElements[token.Data] {
				open = append(open, token.Data)
			}
		case html.SelfClosingTagToken:
			if remaining == 0 {
				continue
			}
			out.WriteString(token.String())
		case html.EndTagToken:
			// Only close what was actually opened in the output.
			if len(open) > 0 && open[len(open)-1] == token.Data {
				open = open[:len(open)-1]
				out.WriteString(token.String())
			}
		case html.TextToken:
			if remaining == 0 {
				if strings.TrimSpace(token.Data) != "" {
					truncated = true
				}
				continue
			}
			fields := strings.Fields(token.Data)
			if len(fields) <= remaining {
				out.WriteString(token.String())
				remaining -= len(fields)
				continue
			}
			// Cut inside this text node.
			kept := strings.Join(fields[:remaining], " ")
			out.WriteString(html.EscapeString(kept) + " …")
			remaining = 0
			truncated = true
			ellipsized = true
		}
	}

	if truncated && !ellipsized {
		out.WriteString(" …")
	}
	for i := len(open) - 1; i >= 0; i-- {
		out.WriteString("</" + open[i] + ">")
	}
	return out.String()
}
