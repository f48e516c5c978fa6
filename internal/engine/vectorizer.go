package engine

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	defaultMaxFeatures = 500
	defaultNGramMax    = 2
)

// termSpace is the shared vocabulary and weighting model for one matching
// run. It is built from the corpus texts plus the query text and never
// reused across runs: document frequencies depend on the full input set.
type termSpace struct {
	terms    []string
	index    map[string]int
	idf      []float64
	ngramMax int
}

// buildTermSpace constructs the coordinate space. The query counts as one
// additional document, so a term seen only in the query still has a defined
// document frequency. With no corpus documents the space is empty and every
// vector degenerates to zero.
func buildTermSpace(docs []string, query string, cfg Config) *termSpace {
	maxFeatures := cfg.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}
	ngramMax := cfg.NGramMax
	if ngramMax <= 0 {
		ngramMax = defaultNGramMax
	}

	space := &termSpace{index: make(map[string]int), ngramMax: ngramMax}
	if len(docs) == 0 {
		return space
	}

	all := make([]string, 0, len(docs)+1)
	all = append(all, docs...)
	all = append(all, query)

	frequency := make(map[string]int)
	documentFrequency := make(map[string]int)

	for _, text := range all {
		terms := ngramTerms(tokenize(text), ngramMax)
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			frequency[term]++
			if !seen[term] {
				seen[term] = true
				documentFrequency[term]++
			}
		}
	}

	candidates := make([]string, 0, len(frequency))
	for term := range frequency {
		candidates = append(candidates, term)
	}

	// Deterministic cut: highest corpus-wide frequency first, alphabetical on ties.
	sort.Slice(candidates, func(i, j int) bool {
		if frequency[candidates[i]] != frequency[candidates[j]] {
			return frequency[candidates[i]] > frequency[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxFeatures {
		candidates = candidates[:maxFeatures]
	}

	// Stable coordinate order within the run.
	sort.Strings(candidates)

	space.terms = candidates
	space.idf = make([]float64, len(candidates))

	total := float64(len(all))
	for i, term := range candidates {
		space.index[term] = i
		space.idf[i] = math.Log(total / float64(documentFrequency[term]))
	}

	return space
}

func (s *termSpace) Size() int {
	return len(s.terms)
}

// Vector converts text into a dense tf-idf vector in the space's coordinates.
func (s *termSpace) Vector(text string) []float64 {
	vector := make([]float64, len(s.terms))
	if len(s.terms) == 0 {
		return vector
	}

	for _, term := range ngramTerms(tokenize(text), s.ngramMax) {
		if i, ok := s.index[term]; ok {
			vector[i] += s.idf[i]
		}
	}
	return vector
}

// tokenize lower-cases text and splits on word boundaries, keeping + # .
// inside tokens so c++, c# and node.js survive. Stop-words and single-rune
// tokens are dropped.
func tokenize(text string) []string {
	var (
		tokens []string
		word   strings.Builder
	)

	flush := func() {
		token := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(token)) < 2 || stopWords[token] {
			return
		}
		tokens = append(tokens, token)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// ngramTerms expands tokens into unigrams plus n-grams up to max, joined
// with single spaces.
func ngramTerms(tokens []string, max int) []string {
	terms := make([]string, 0, len(tokens)*max)
	terms = append(terms, tokens...)

	for n := 2; n <= max; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
