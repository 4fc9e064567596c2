package classifier

import "github.com/rizzabh6717/zentigrity-supernova/internal/model"

// candidateLabels is the fixed zero-shot label set sent with every
// classification request. Order matters: the remote API scores entries in
// input order and ties resolve to the first occurrence.
var candidateLabels = []string{
	"road pothole", "broken street light", "graffiti vandalism",
	"fallen tree", "water leak", "garbage dumping", "broken sidewalk",
	"missing street sign", "flooding", "damaged public property",
}

var (
	highPriorityLabels = map[string]struct{}{
		"water leak":          {},
		"flooding":            {},
		"fallen tree":         {},
		"broken street light": {},
	}
	mediumPriorityLabels = map[string]struct{}{
		"road pothole":            {},
		"damaged public property": {},
		"missing street sign":     {},
	}
)

// priorityFor maps a winning label to its priority tier and resolution
// estimate. Labels outside the explicit tiers default to low.
func priorityFor(label string) (model.Priority, int) {
	if _, ok := highPriorityLabels[label]; ok {
		return model.PriorityHigh, 3
	}
	if _, ok := mediumPriorityLabels[label]; ok {
		return model.PriorityMedium, 7
	}
	return model.PriorityLow, 14
}
