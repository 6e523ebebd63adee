package regcore

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// maxErrorPageBytes caps how much of an error response body is read for
// diagnostics. Django debug pages fit comfortably; anything larger is noise.
const maxErrorPageBytes = 1 << 20

// parseErrorPage extracts the exception title and message from a
// Django-style HTML debug page: the first h1 inside the #summary block and
// the first element carrying the exception_value class. Returns ok=false
// when the body is not such a page.
func parseErrorPage(body []byte) (title, detail string, ok bool) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", "", false
	}

	summary := findByID(doc, "summary")
	if summary == nil {
		return "", "", false
	}

	h1 := findElement(summary, "h1")
	value := findByClass(summary, "exception_value")
	if h1 == nil || value == nil {
		return "", "", false
	}

	return strings.TrimSpace(textContent(h1)), strings.TrimSpace(textContent(value)), true
}

func findByID(n *html.Node, id string) *html.Node {
	return find(n, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
}

func findElement(n *html.Node, tag string) *html.Node {
	return find(n, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	})
}

func findByClass(n *html.Node, class string) *html.Node {
	return find(n, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	})
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
