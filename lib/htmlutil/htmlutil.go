package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace reduces every whitespace run (including line
// breaks) to a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// ExtractBodyText reduces an HTML document to the plain text of its
// body, with script and style subtrees removed and whitespace
// normalized. Returns "" when the document has no body.
func ExtractBodyText(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		return ""
	}
	body.Find("script,style").Remove()

	var buffer bytes.Buffer
	for _, node := range body.Nodes {
		buffer.WriteString(GetText(node))
	}
	return CollapseWhitespace(buffer.String())
}
