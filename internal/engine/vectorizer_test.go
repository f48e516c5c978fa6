package engine

import (
	"testing"
)

func TestTokenizeKeepsTechTokens(t *testing.T) {
	tokens := tokenize("Looking for C++ and Node.js developers.")

	expected := []string{"looking", "c++", "node.js", "developers"}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, tokens)
	}
	for i, token := range expected {
		if tokens[i] != token {
			t.Fatalf("expected token %q at %d, got %q", token, i, tokens[i])
		}
	}
}

func TestTokenizeDropsStopWordsAndShortTokens(t *testing.T) {
	tokens := tokenize("the a an experience with R")

	if len(tokens) != 1 || tokens[0] != "experience" {
		t.Fatalf("expected only %q, got %v", "experience", tokens)
	}
}

func TestNgramTerms(t *testing.T) {
	terms := ngramTerms([]string{"react", "node.js", "mongodb"}, 2)

	expected := []string{"react", "node.js", "mongodb", "react node.js", "node.js mongodb"}
	if len(terms) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, terms)
	}
	for i, term := range expected {
		if terms[i] != term {
			t.Fatalf("expected term %q at %d, got %q", term, i, terms[i])
		}
	}
}

func TestBuildTermSpaceDegenerateCorpus(t *testing.T) {
	space := buildTermSpace(nil, "python react", Config{})

	if space.Size() != 0 {
		t.Fatalf("expected empty term space, got %d terms", space.Size())
	}

	vector := space.Vector("python react")
	if len(vector) != 0 {
		t.Fatalf("expected zero-length vector, got %d", len(vector))
	}
}

func TestBuildTermSpaceCapsVocabulary(t *testing.T) {
	docs := []string{
		"python python python react mongodb docker kubernetes",
		"python react react mongodb terraform",
	}

	space := buildTermSpace(docs, "", Config{MaxFeatures: 3, NGramMax: 1})

	if space.Size() != 3 {
		t.Fatalf("expected vocabulary of 3, got %d", space.Size())
	}

	// python (4) and react (3) are the most frequent terms and must survive
	// the cut.
	for _, term := range []string{"python", "react"} {
		if _, ok := space.index[term]; !ok {
			t.Fatalf("expected %q in vocabulary %v", term, space.terms)
		}
	}
}

func TestQueryOnlyTermHasDefinedWeight(t *testing.T) {
	docs := []string{"python developer wanted"}

	space := buildTermSpace(docs, "rust", Config{NGramMax: 1})

	vector := space.Vector("rust")
	var sum float64
	for _, w := range vector {
		if w < 0 {
			t.Fatalf("negative weight in vector: %v", vector)
		}
		sum += w
	}
	if sum == 0 {
		t.Fatalf("expected a defined non-zero weight for a query-only term, got %v", vector)
	}
}

func TestVectorIsStableWithinRun(t *testing.T) {
	docs := []string{"python react mongodb", "java spring boot"}

	space := buildTermSpace(docs, "python", Config{})

	first := space.Vector(docs[0])
	second := space.Vector(docs[0])

	if len(first) != len(second) {
		t.Fatalf("vector lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("coordinate %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
