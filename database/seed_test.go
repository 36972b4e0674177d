package database

import (
	"encoding/json"
	"testing"
)

func TestSampleQuestionsAreWellFormed(t *testing.T) {
	questions := SampleQuestions()
	if len(questions) == 0 {
		t.Fatal("expected sample questions")
	}

	for i, q := range questions {
		if q.TestType == "" || q.Section == "" || q.QuestionText == "" {
			t.Errorf("question %d: missing required fields", i)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %d: needs at least two options", i)
		}
		if !q.HasValidAnswer() {
			t.Errorf("question %d: correct answer %d out of range for %d options", i, q.CorrectAnswer, len(q.Options))
		}
	}
}

func TestSampleUniversitiesAreWellFormed(t *testing.T) {
	universities := SampleUniversities()
	if len(universities) == 0 {
		t.Fatal("expected sample universities")
	}

	countries := make(map[string]bool)
	for i, u := range universities {
		if u.Name == "" || u.Country == "" {
			t.Errorf("university %d: missing required fields", i)
		}
		countries[u.Country] = true

		// Scholarships column must hold a JSON string list
		if len(u.Scholarships) > 0 {
			var scholarships []string
			if err := json.Unmarshal(u.Scholarships, &scholarships); err != nil {
				t.Errorf("university %d: scholarships is not a JSON string list: %v", i, err)
			}
		}
	}

	// Directory fixtures should span several countries for the country filter
	if len(countries) < 3 {
		t.Errorf("expected fixtures from at least 3 countries, got %d", len(countries))
	}
}
