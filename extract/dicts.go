package extract

import (
	"strings"

	"github.com/poiesic/collegium/lexicon"
	"github.com/poiesic/collegium/storage"
)

// matchedTags returns the dictionary tags with at least one surface form
// occurring in the query, in Tags() order.
func matchedTags(query string, d lexicon.Dict) []string {
	var tags []string
	for _, tag := range d.Tags() {
		for _, form := range d[tag] {
			if strings.Contains(query, form) {
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags
}

// orGroup collapses conditions into a single condition: the condition
// itself when there is one, an OpAnyOf group otherwise.
func orGroup(conds ...storage.Condition) storage.Condition {
	if len(conds) == 1 {
		return conds[0]
	}
	return storage.AnyOf(conds...)
}
