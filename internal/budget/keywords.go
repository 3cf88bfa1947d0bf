package budget

import "strings"

// budgetKeywords flag a chat message as budget-related, which makes the
// reply carry a budget summary in addition to the assistant's text.
var budgetKeywords = []string{
	"budget", "cost", "price", "spend", "afford", "over budget",
	"per person", "cheaper", "reduce", "expensive", "save", "money",
}

// IsBudgetQuery reports whether a user message mentions budget concerns.
func IsBudgetQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range budgetKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
