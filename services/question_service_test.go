package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/sahilchouksey/testprep-api/model"
)

func sampleQuestion() *model.Question {
	return &model.Question{
		ID:            7,
		TestType:      "gre",
		Section:       "verbal",
		QuestionText:  "Pick the synonym of 'laconic'.",
		Options:       pq.StringArray{"verbose", "terse", "jovial", "morose"},
		CorrectAnswer: 1,
		Explanation:   "Laconic means using very few words.",
		Difficulty:    model.DifficultyMedium,
	}
}

func TestGradeAnswerCorrect(t *testing.T) {
	check := GradeAnswer(sampleQuestion(), 1)

	if !check.Correct {
		t.Error("expected correct = true")
	}
	if check.CorrectAnswer != 1 {
		t.Errorf("CorrectAnswer = %d, want 1", check.CorrectAnswer)
	}
	if check.Explanation != "Laconic means using very few words." {
		t.Errorf("unexpected explanation %q", check.Explanation)
	}
}

func TestGradeAnswerIncorrectRevealsSameExplanation(t *testing.T) {
	question := sampleQuestion()
	wrong := GradeAnswer(question, 0)
	right := GradeAnswer(question, 1)

	if wrong.Correct {
		t.Error("expected correct = false")
	}
	if wrong.CorrectAnswer != right.CorrectAnswer {
		t.Error("correct index should not depend on the submitted answer")
	}
	if wrong.Explanation != right.Explanation {
		t.Error("explanation should not depend on the submitted answer")
	}
}

func TestGradeAnswerOutOfRangeIsIncorrect(t *testing.T) {
	if check := GradeAnswer(sampleQuestion(), 99); check.Correct {
		t.Error("out-of-range submission must not grade as correct")
	}
}

func TestHasValidAnswer(t *testing.T) {
	question := sampleQuestion()
	if !question.HasValidAnswer() {
		t.Error("expected valid answer index")
	}

	question.CorrectAnswer = 4
	if question.HasValidAnswer() {
		t.Error("index equal to len(options) must be invalid")
	}

	question.CorrectAnswer = -1
	if question.HasValidAnswer() {
		t.Error("negative index must be invalid")
	}
}
