package search

import (
	"regexp"

	domsearch "github.com/competia/searchapi/internal/domain/search"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// highlightItems wraps every case-insensitive occurrence of the query in
// each item's title and description with <mark> tags. A field only shows
// up in Highlights when something actually matched; items without any
// match keep a nil map.
func highlightItems(items []domsearch.ResultItem, query string) []domsearch.ResultItem {
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil || query == "" {
		return items
	}

	out := make([]domsearch.ResultItem, len(items))
	for i, item := range items {
		highlights := make(map[string][]string, 2)
		if marked := re.ReplaceAllString(item.Title, markOpen+"$0"+markClose); marked != item.Title {
			highlights["title"] = []string{marked}
		}
		if marked := re.ReplaceAllString(item.Description, markOpen+"$0"+markClose); marked != item.Description {
			highlights["description"] = []string{marked}
		}
		if len(highlights) > 0 {
			item.Highlights = highlights
		}
		out[i] = item
	}
	return out
}
