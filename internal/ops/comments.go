package ops

import (
	"fmt"
	"strings"

	"opsagent/internal/fault"
)

// SimilarComments selects the most similar pair of comments from
// comments.txt and writes the two lines newline-joined. Similarity is
// the Jaccard index over lowercased word sets; the earliest pair wins
// ties, so the selection is deterministic.
func (l *Library) SimilarComments() (string, error) {
	_, data, err := l.readInput(CommentsFile)
	if err != nil {
		return "", err
	}

	var comments []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			comments = append(comments, line)
		}
	}
	if len(comments) < 2 {
		return "", fault.New(fault.MalformedInput, "Not enough comments for analysis.")
	}

	bestI, bestJ := 0, 1
	bestScore := -1.0
	for i := 0; i < len(comments); i++ {
		for j := i + 1; j < len(comments); j++ {
			if score := jaccard(comments[i], comments[j]); score > bestScore {
				bestScore = score
				bestI, bestJ = i, j
			}
		}
	}

	pair := comments[bestI] + "\n" + comments[bestJ]
	out, err := l.writeOutput(CommentsOutFile, []byte(pair))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Similar comments written to %s", out), nil
}

func jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	shared := 0
	for w := range setA {
		if setB[w] {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	return float64(shared) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
