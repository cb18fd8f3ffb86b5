package rules

import (
	"fmt"
	"strings"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/extract"
)

// reusableVocabulary drives the naming heuristic for elements that look
// like they should be library components.
var reusableVocabulary = []string{"button", "input", "card", "icon"}

// EvaluateComponent checks component reuse for one node. Instances must
// originate from a shared library; non-instances whose name suggests a
// reusable element get a soft warning.
func EvaluateComponent(meta Meta, props extract.Props, cfg domain.EngineConfig) []domain.Issue {
	if !cfg.CheckComponents {
		return nil
	}

	switch meta.Kind {
	case domain.KindInstance:
		if props.Origin == nil {
			// Origin read failed at the host boundary; treated as omitted.
			return nil
		}
		if props.Origin.Remote {
			return []domain.Issue{confirm(domain.CategoryComponent,
				fmt.Sprintf("instance of library component %q", props.Origin.Name))}
		}
		return []domain.Issue{warning(domain.CategoryComponent,
			fmt.Sprintf("instance of local component %q; publish it to a shared library", props.Origin.Name))}

	case domain.KindComponent, domain.KindComponentSet:
		// Component definitions are reusable by construction.
		return nil

	default:
		if matchesReusableName(meta.Name) {
			return []domain.Issue{warning(domain.CategoryComponent,
				fmt.Sprintf("layer %q looks like a reusable element but is not a component instance", meta.Name))}
		}
		return nil
	}
}

func matchesReusableName(name string) bool {
	lower := strings.ToLower(name)
	for _, word := range reusableVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
