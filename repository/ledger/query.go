package ledger

import (
	"net/url"
	"strconv"
	"strings"
)

// setFilter adds a list filter to the query. The value "all" (any case) is
// the UI's "no filter" and is omitted, never sent literally; so are blanks.
func setFilter(q url.Values, key, val string) {
	val = strings.TrimSpace(val)
	if val == "" || strings.EqualFold(val, "all") {
		return
	}
	q.Set(key, val)
}

func setPage(q url.Values, limit, offset int) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
}
