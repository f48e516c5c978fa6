package corpus

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

// JobPosting is a single job record. The Description field is the text the
// engine matches against; Skills holds the requirement tokens extracted from
// it at load time.
type JobPosting struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	SalaryRange string   `json:"salary_range,omitempty"`
	ClosingDate string   `json:"closing_date,omitempty"`
	URL         string   `json:"url,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// CombinedText returns the text used for vectorization: title plus description.
func (p *JobPosting) CombinedText() string {
	return strings.TrimSpace(p.Title + " " + p.Description)
}

// Corpus is an immutable snapshot of postings for one matching run.
type Corpus struct {
	Items []*JobPosting
}

func (c *Corpus) Len() int {
	return len(c.Items)
}

func (c *Corpus) FindByID(id string) *JobPosting {
	for _, posting := range c.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

// Texts returns the combined text of every posting in snapshot order.
func (c *Corpus) Texts() []string {
	texts := make([]string, 0, len(c.Items))
	for _, posting := range c.Items {
		texts = append(texts, posting.CombinedText())
	}
	return texts
}

// SkillVocabulary returns the union of extracted requirement skills across
// all postings, sorted alphabetically.
func (c *Corpus) SkillVocabulary() []string {
	seen := make(map[string]bool)
	for _, posting := range c.Items {
		for _, skill := range posting.Skills {
			seen[skill] = true
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for skill := range seen {
		vocabulary = append(vocabulary, skill)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// SkillDemand counts, for every skill in the vocabulary, how many postings
// require it.
func (c *Corpus) SkillDemand() map[string]int {
	demand := make(map[string]int)
	for _, posting := range c.Items {
		for _, skill := range posting.Skills {
			demand[skill]++
		}
	}
	return demand
}

// ReportByCompany groups postings by company for display.
func (c *Corpus) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range c.Items {
		report[posting.Company] = append(report[posting.Company], map[string]string{
			"title":    posting.Title,
			"location": posting.Location,
			"salary":   posting.SalaryRange,
			"closes":   posting.ClosingDate,
			"url":      posting.URL,
		})
	}
	return report
}

func (c *Corpus) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Remove returns a copy of the corpus without the postings whose index is in
// drop. The snapshot itself is never mutated.
func (c *Corpus) Remove(drop map[int]bool) *Corpus {
	if len(drop) == 0 {
		return c
	}
	kept := make([]*JobPosting, 0, len(c.Items))
	for idx, posting := range c.Items {
		if !drop[idx] {
			kept = append(kept, posting)
		}
	}
	return &Corpus{Items: kept}
}
