package standards

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

const similarityFloor = 0.85

// ResolveSubjects maps configured subject names onto catalog entries so
// filters like "mathematics" select "Mathematics (B.E.S.T.)". An empty
// filter selects the full catalog. Exact normalized substring matches
// win; otherwise the most similar catalog entry above the similarity
// floor is taken. Names resolving nowhere are kept verbatim so a
// retargeted source can still use them.
func ResolveSubjects(configured []string) []string {
	if len(configured) == 0 {
		return Subjects
	}

	resolved := make([]string, 0, len(configured))
	for _, name := range configured {
		resolved = append(resolved, resolveSubject(name))
	}
	return resolved
}

func resolveSubject(name string) string {
	normalized := normalizeName(name)
	for _, subject := range Subjects {
		if strings.Contains(normalizeName(subject), normalized) {
			return subject
		}
	}

	var bestScore float64
	var best string
	for _, subject := range Subjects {
		score := matchr.JaroWinkler(normalized, normalizeName(subject), false)
		if score > bestScore {
			bestScore = score
			best = subject
		}
	}
	if bestScore >= similarityFloor {
		return best
	}

	slog.Warn("subject not found in catalog, keeping verbatim", "subject", name)
	return name
}
