package engine

import "strings"

// SkillQuery is the candidate's normalized skill token set: case-folded,
// deduplicated, in first-seen order. An empty query is legal and scores zero
// against every document.
type SkillQuery struct {
	tokens []string
	index  map[string]bool
}

// NewSkillQuery normalizes the provided skill keywords into a query.
func NewSkillQuery(skills []string) SkillQuery {
	query := SkillQuery{index: make(map[string]bool)}

	for _, skill := range skills {
		token := strings.ToLower(strings.TrimSpace(skill))
		if token == "" || query.index[token] {
			continue
		}
		query.index[token] = true
		query.tokens = append(query.tokens, token)
	}

	return query
}

func (q SkillQuery) Tokens() []string {
	tokens := make([]string, len(q.tokens))
	copy(tokens, q.tokens)
	return tokens
}

func (q SkillQuery) IsEmpty() bool {
	return len(q.tokens) == 0
}

func (q SkillQuery) Len() int {
	return len(q.tokens)
}

// Has reports whether the query contains the token, case-insensitively.
func (q SkillQuery) Has(token string) bool {
	return q.index[strings.ToLower(strings.TrimSpace(token))]
}

// Text renders the query as one document for the vectorizer.
func (q SkillQuery) Text() string {
	return strings.Join(q.tokens, " ")
}
