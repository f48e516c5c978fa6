package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// knownSkills is the fixed technology dictionary scanned against posting
// descriptions to build the requirement vocabulary for gap analysis.
var knownSkills = []string{
	"python", "java", "javascript", "typescript", "kotlin", "golang", "ruby", "php", "c++", "c#",
	"react", "react native", "angular", "vue.js", "node.js", "express", "redux",
	"django", "flask", "spring boot", "laravel", ".net",
	"html5", "css3", "figma", "adobe xd",
	"flutter", "android", "ios", "firebase",
	"sql", "mysql", "postgresql", "mongodb", "redis",
	"rest api", "graphql", "microservices",
	"aws", "azure", "google cloud", "docker", "kubernetes", "terraform", "jenkins", "linux",
	"git", "github", "jira", "agile", "scrum",
	"selenium", "etl",
}

// ExtractSkills scans text for entries of the technology dictionary and
// returns the requirement tokens found, lower-cased, in dictionary order.
// Matches respect word boundaries, so "java" does not match "javascript".
func ExtractSkills(text string) []string {
	lowered := strings.ToLower(text)

	var found []string
	for _, skill := range knownSkills {
		if containsToken(lowered, skill) {
			found = append(found, skill)
		}
	}
	return found
}

func containsToken(text, token string) bool {
	for start := 0; start <= len(text)-len(token); {
		idx := strings.Index(text[start:], token)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(token)

		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (idx == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
