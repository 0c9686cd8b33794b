package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed data/curriculum.yaml
var curriculumYAML []byte

//go:embed data/topics.yaml
var topicsYAML []byte

// tables holds the parsed embedded data.
type tables struct {
	// curriculum maps grade -> subject -> unit titles.
	curriculum map[string]map[string][]string
	// topics maps folded unit title -> authored detail.
	topics map[string]TopicDetail
}

var (
	tablesOnce sync.Once
	loaded     tables
)

func embedded() tables {
	tablesOnce.Do(func() {
		t, err := parseTables(curriculumYAML, topicsYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data: %v", err))
		}
		loaded = t
	})
	return loaded
}

func parseTables(curriculum, topics []byte) (tables, error) {
	var t tables
	if err := yaml.Unmarshal(curriculum, &t.curriculum); err != nil {
		return tables{}, fmt.Errorf("parse curriculum: %w", err)
	}

	var raw map[string]TopicDetail
	if err := yaml.Unmarshal(topics, &raw); err != nil {
		return tables{}, fmt.Errorf("parse topics: %w", err)
	}
	t.topics = make(map[string]TopicDetail, len(raw))
	for title, d := range raw {
		key := fold(title)
		if _, dup := t.topics[key]; dup {
			return tables{}, fmt.Errorf("duplicate topic %q", title)
		}
		t.topics[key] = d
	}
	return t, nil
}

// fold normalizes a unit title for case-insensitive lookup.
func fold(title string) string {
	return cases.Fold().String(title)
}

// Lookup returns the authored detail for a unit title, matched
// case-insensitively. The second result is false if none is authored.
func Lookup(title string) (TopicDetail, bool) {
	d, ok := embedded().topics[fold(title)]
	return d, ok
}

// IsTopicIncomplete reports whether a unit title has no authored detail,
// i.e. its lessons come from the in-development template.
func IsTopicIncomplete(title string) bool {
	_, ok := Lookup(title)
	return !ok
}

// DetailFor returns the authored detail for title, or the synthesized
// placeholder if none exists.
func DetailFor(title string) TopicDetail {
	if d, ok := Lookup(title); ok {
		return d
	}
	return placeholderDetail(title)
}

// placeholderDetail builds the in-development template for an unauthored
// unit. Its single question's correct answer acknowledges the status.
func placeholderDetail(title string) TopicDetail {
	return TopicDetail{
		Definition: fmt.Sprintf("This module for %q is currently being drafted by our curriculum team.", title),
		Why:        "This unit is a core part of the grade-level curriculum and will be fully expanded soon.",
		Objectives: []string{"Review upcoming objectives", "Prepare for modular logic"},
		Problem:    fmt.Sprintf("Wait for unique content for %s.", title),
		Steps:      []string{"Content arriving soon.", "Check the Content Status page for updates."},
		Quiz: []QuizQuestion{{
			ID:   "gen_" + fold(title),
			Text: `Is this unit currently marked as "In Development"?`,
			Options: []string{
				"Yes, checking the Status Page for more info",
				"No, it is complete",
				"I'm not sure",
			},
			CorrectIndex: 0,
			Explanation:  "We are actively adding deep specific content to every unit.",
		}},
	}
}

// unitTitles returns the unit titles for a grade and subject, falling back
// to six placeholder slots when the pair has no curriculum entry.
func unitTitles(grade, subject string) []string {
	if titles, ok := embedded().curriculum[grade][subject]; ok && len(titles) > 0 {
		return titles
	}
	return []string{
		fmt.Sprintf("Grade %s %s Unit 1", grade, subject),
		"Unit 2", "Unit 3", "Unit 4", "Unit 5", "Unit 6",
	}
}

// AuthoredTopics returns the number of authored topic entries.
func AuthoredTopics() int {
	return len(embedded().topics)
}
