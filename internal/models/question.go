package models

import (
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	MultipleChoiceType QuestionType = "mcq"
	TrueFalseType      QuestionType = "truefalse"
	FreeTextType       QuestionType = "text"
)

// QuestionTypes lists every supported question type in display order.
var QuestionTypes = []QuestionType{MultipleChoiceType, TrueFalseType, FreeTextType}

func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoiceType, TrueFalseType, FreeTextType:
		return true
	}
	return false
}

// QuestionBody is the type-specific part of a question. It is implemented
// only by MultipleChoice, TrueFalse and FreeText.
type QuestionBody interface {
	Type() QuestionType
	correctAnswer() string
}

// MultipleChoice holds the ordered options and the option that is correct.
type MultipleChoice struct {
	Options []string
	Answer  string
}

func (MultipleChoice) Type() QuestionType      { return MultipleChoiceType }
func (m MultipleChoice) correctAnswer() string { return m.Answer }

type TrueFalse struct {
	Answer bool
}

func (TrueFalse) Type() QuestionType { return TrueFalseType }
func (t TrueFalse) correctAnswer() string {
	if t.Answer {
		return "true"
	}
	return "false"
}

type FreeText struct {
	Answer string
}

func (FreeText) Type() QuestionType      { return FreeTextType }
func (f FreeText) correctAnswer() string { return f.Answer }

// Question is one entry of a quiz. ID is assigned by storage and is empty on drafts.
type Question struct {
	ID     string
	Prompt string
	Body   QuestionBody
}

func (q Question) Type() QuestionType {
	if q.Body == nil {
		return ""
	}
	return q.Body.Type()
}

// CorrectAnswer returns the stored answer in wire form ("true"/"false" for truefalse).
func (q Question) CorrectAnswer() string {
	if q.Body == nil {
		return ""
	}
	return q.Body.correctAnswer()
}

// Options returns the mcq options, nil for any other type.
func (q Question) Options() []string {
	if mc, ok := q.Body.(MultipleChoice); ok {
		return mc.Options
	}
	return nil
}

// questionJSON is the flat wire shape shared with existing clients.
type questionJSON struct {
	ID            string       `json:"id,omitempty"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	if q.Body == nil {
		return nil, fmt.Errorf("question %q has no body", q.ID)
	}
	return json.Marshal(questionJSON{
		ID:            q.ID,
		Type:          q.Type(),
		Prompt:        q.Prompt,
		Options:       q.Options(),
		CorrectAnswer: q.CorrectAnswer(),
	})
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var raw questionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	body, err := NewQuestionBody(raw.Type, raw.Options, raw.CorrectAnswer)
	if err != nil {
		return err
	}
	q.ID = raw.ID
	q.Prompt = raw.Prompt
	q.Body = body
	return nil
}

// NewQuestionBody builds a typed body from the flat storage representation.
// It checks only what the type system needs; shape rules live in the validator.
func NewQuestionBody(questionType QuestionType, options []string, correctAnswer string) (QuestionBody, error) {
	switch questionType {
	case MultipleChoiceType:
		opts := make([]string, len(options))
		copy(opts, options)
		return MultipleChoice{Options: opts, Answer: correctAnswer}, nil
	case TrueFalseType:
		switch correctAnswer {
		case "true":
			return TrueFalse{Answer: true}, nil
		case "false":
			return TrueFalse{Answer: false}, nil
		}
		return nil, fmt.Errorf("truefalse answer must be \"true\" or \"false\"")
	case FreeTextType:
		return FreeText{Answer: correctAnswer}, nil
	default:
		return nil, fmt.Errorf("unsupported question type: %q", questionType)
	}
}
