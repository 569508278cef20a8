package discovery

import "fmt"

// ContentTypes are the long-form content phrases combined with the subject
// to build the search matrix. Each phrase targets a format in which the
// subject speaks directly for most of the runtime.
var ContentTypes = []string{
	"full interview",
	"keynote speech",
	"documentary",
	"fireside chat",
	"lecture",
}

// YearWindow is the number of trailing years appended to each content type
// for recency-targeted probes.
const YearWindow = 5

// Expand turns one subject into the full search matrix: for each content
// type, a bare term (relevance) followed by one term per recent year
// (recency), most recent first. The breadth of the matrix is what defeats
// the provider's per-query result cap, so the output is deliberately
// large: len(ContentTypes) * (1 + YearWindow) terms.
//
// Deterministic given (subject, year); no network or state.
func Expand(subject string, year int) []string {
	terms := make([]string, 0, len(ContentTypes)*(1+YearWindow))
	for _, contentType := range ContentTypes {
		terms = append(terms, subject+" "+contentType)
		for y := year; y > year-YearWindow; y-- {
			terms = append(terms, fmt.Sprintf("%s %s %d", subject, contentType, y))
		}
	}
	return terms
}
