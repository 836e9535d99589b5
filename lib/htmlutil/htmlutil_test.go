package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "JPMorgan Chase", CleanText("\n  JPMorgan \t Chase​ \n"))
	require.Equal(t, "", CleanText(" \n\t"))
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<td>
			<span class="flagicon"><a href="/wiki/United_States"><img alt="United States"></a></span>
			<a href="/wiki/JPMorgan_Chase" title="JPMorgan Chase">JPMorgan
				<b>Chase</b></a>
		</td>`))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Len(t, anchors, 2)
	require.Equal(t, Anchor{Name: "", Href: "/wiki/United_States"}, anchors[0])
	require.Equal(t, Anchor{Name: "JPMorgan Chase", Href: "/wiki/JPMorgan_Chase"}, anchors[1])
}
