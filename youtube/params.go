package youtube

import "strings"

const (
	DefaultMaxResults = 20
	MaxResultsLimit   = 100

	OrderRelevance = "relevance"
	OrderTime      = "time"
)

// NormalizeListParams clamps maxResults into [1,100] (nil means the default
// of 20) and case-folds order, falling back to relevance for anything other
// than relevance or time.
func NormalizeListParams(maxResults *int, order string) (int, string) {
	mr := DefaultMaxResults
	if maxResults != nil {
		mr = *maxResults
		if mr < 1 {
			mr = 1
		}
		if mr > MaxResultsLimit {
			mr = MaxResultsLimit
		}
	}

	od := strings.ToLower(order)
	if od != OrderRelevance && od != OrderTime {
		od = OrderRelevance
	}
	return mr, od
}
