// Package rules implements the three compliance evaluators: component reuse,
// token binding, and shared-style usage. Evaluators are pure: identical node
// state and config always produce the identical issue list.
package rules

import "github.com/designlint/designlint/internal/domain"

// Meta carries the identity of the node under evaluation.
type Meta struct {
	ID   string
	Name string
	Kind domain.Kind
}

func critical(cat domain.Category, msg string) domain.Issue {
	return domain.Issue{Message: msg, Category: cat, Severity: domain.SeverityCritical}
}

func warning(cat domain.Category, msg string) domain.Issue {
	return domain.Issue{Message: msg, Category: cat, Severity: domain.SeverityWarning}
}

func confirm(cat domain.Category, msg string) domain.Issue {
	return domain.Issue{Message: msg, Category: cat, Severity: domain.SeverityInfo}
}

// Compliant reports whether an issue list leaves a node compliant: only
// blocking issues count, positive confirmations never do.
func Compliant(issues []domain.Issue) bool {
	for _, is := range issues {
		if is.Blocking() {
			return false
		}
	}
	return true
}
