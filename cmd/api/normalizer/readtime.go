package normalizer

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const wordsPerMinute = 200

// StripTags extracts the plain text of an HTML fragment by walking its text
// nodes.
func StripTags(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return htmlStr
	}

	var b strings.Builder

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)
	return b.String()
}

// WordCount counts whitespace-separated tokens in the text content of an HTML
// fragment.
func WordCount(htmlStr string) int {
	return len(strings.Fields(StripTags(htmlStr)))
}

// ReadTime estimates reading time at 200 words per minute. Always at least
// "1 min read".
func ReadTime(htmlStr string) string {
	minutes := (WordCount(htmlStr) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
