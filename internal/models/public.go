package models

import "time"

// PublicQuestion is a question as shown to quiz takers. It has no answer field.
type PublicQuestion struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"`
}

type PublicQuiz struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"createdAt"`
	Questions []PublicQuestion `json:"questions"`
}

// RedactForPublic projects a quiz into the form handed to readers without
// authoring rights. Question order is preserved.
func RedactForPublic(quiz *Quiz) PublicQuiz {
	public := PublicQuiz{
		ID:        quiz.ID,
		Title:     quiz.Title,
		CreatedAt: quiz.CreatedAt,
		Questions: make([]PublicQuestion, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		var options []string
		if src := q.Options(); len(src) > 0 {
			options = make([]string, len(src))
			copy(options, src)
		}
		public.Questions = append(public.Questions, PublicQuestion{
			ID:      q.ID,
			Type:    q.Type(),
			Prompt:  q.Prompt,
			Options: options,
		})
	}
	return public
}

func Summarize(quiz *Quiz) QuizSummary {
	return QuizSummary{
		ID:        quiz.ID,
		Title:     quiz.Title,
		CreatedAt: quiz.CreatedAt,
	}
}
