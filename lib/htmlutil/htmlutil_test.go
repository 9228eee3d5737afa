package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestExtractBodyText(t *testing.T) {
	testCases := []struct {
		html     string
		expected string
	}{
		{
			html:     "<body><script>x</script>  Hello   World  </body>",
			expected: "Hello World",
		},
		{
			html:     "<html><body><style>p { color: red }</style><p>Interpelacja</p>\n\n<p>w sprawie dróg</p></body></html>",
			expected: "Interpelacja w sprawie dróg",
		},
		{
			html:     "<body></body>",
			expected: "",
		},
		{
			// text nodes concatenate directly, no separator is
			// invented between elements
			html:     "<body><div>a</div><script>var x = 1;</script><div>b</div></body>",
			expected: "ab",
		},
	}

	for _, test := range testCases {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(test.html))
		require.NoError(t, err)
		require.Equal(t, test.expected, ExtractBodyText(doc))
	}
}

func TestCollapseWhitespace(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"  a  b  ", "a b"},
		{"a\n\n\nb", "a b"},
		{"\t\t", ""},
		{"already clean", "already clean"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CollapseWhitespace(test.in))
	}
}
