package engine

import (
	"sort"
	"strings"

	"github.com/skillradar/skillradar/internal/corpus"
)

// emptyReferenceCoverage is the coverage reported when the reference
// vocabulary is empty: a posting that demands nothing is fully covered.
const emptyReferenceCoverage = 100.0

// ReferenceKind tags the source of the requirement vocabulary for a gap
// analysis.
type ReferenceKind int

const (
	// ReferencePosting analyzes against one posting's extracted skills.
	ReferencePosting ReferenceKind = iota
	// ReferenceCorpus analyzes against the skill union of the whole corpus.
	ReferenceCorpus
)

// GapReference is the explicit choice of requirement vocabulary. Callers
// state their intent instead of the engine inferring it.
type GapReference struct {
	kind    ReferenceKind
	posting *corpus.JobPosting
	corpus  *corpus.Corpus
}

func PostingReference(p *corpus.JobPosting) GapReference {
	return GapReference{kind: ReferencePosting, posting: p}
}

func CorpusReference(c *corpus.Corpus) GapReference {
	return GapReference{kind: ReferenceCorpus, corpus: c}
}

func (r GapReference) Kind() ReferenceKind {
	return r.kind
}

// vocabulary returns the reference requirement tokens, lower-cased and
// deduplicated, sorted alphabetically.
func (r GapReference) vocabulary() []string {
	var raw []string
	switch r.kind {
	case ReferencePosting:
		if r.posting != nil {
			raw = r.posting.Skills
		}
	case ReferenceCorpus:
		if r.corpus != nil {
			raw = r.corpus.SkillVocabulary()
		}
	}

	seen := make(map[string]bool, len(raw))
	vocabulary := make([]string, 0, len(raw))
	for _, skill := range raw {
		token := strings.ToLower(strings.TrimSpace(skill))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		vocabulary = append(vocabulary, token)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// SkillGapReport partitions the reference vocabulary into possessed and
// missing skills. Possessed ∪ Missing is always exactly the reference
// vocabulary.
type SkillGapReport struct {
	Possessed []string `json:"possessed"`
	Missing   []string `json:"missing"`
	// Coverage is the percentage of the reference vocabulary the candidate
	// holds, rounded to one decimal for display.
	Coverage float64 `json:"coverage"`
	// Ratio keeps the raw possessed/reference fraction for further
	// computation.
	Ratio float64 `json:"-"`
}

// analyzeGap compares the query against the reference vocabulary. Missing
// skills are ordered by descending market demand so the most commonly
// required gap surfaces first; ties are alphabetical.
func analyzeGap(query SkillQuery, ref GapReference, demand map[string]int) *SkillGapReport {
	vocabulary := ref.vocabulary()

	report := &SkillGapReport{
		Possessed: []string{},
		Missing:   []string{},
	}

	for _, skill := range vocabulary {
		if query.Has(skill) {
			report.Possessed = append(report.Possessed, skill)
		} else {
			report.Missing = append(report.Missing, skill)
		}
	}

	sort.SliceStable(report.Missing, func(i, j int) bool {
		di, dj := demand[report.Missing[i]], demand[report.Missing[j]]
		if di != dj {
			return di > dj
		}
		return report.Missing[i] < report.Missing[j]
	})

	if len(vocabulary) == 0 {
		report.Ratio = 1
		report.Coverage = emptyReferenceCoverage
		return report
	}

	report.Ratio = float64(len(report.Possessed)) / float64(len(vocabulary))
	report.Coverage = roundPercent(report.Ratio * 100)
	return report
}
