package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_JSONShape(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		want     string
	}{
		{
			name:     "mcq",
			question: Question{ID: "q1", Prompt: "Pick", Body: MultipleChoice{Options: []string{"A", "B"}, Answer: "B"}},
			want:     `{"id":"q1","type":"mcq","prompt":"Pick","options":["A","B"],"correctAnswer":"B"}`,
		},
		{
			name:     "truefalse",
			question: Question{ID: "q2", Prompt: "Yes?", Body: TrueFalse{Answer: true}},
			want:     `{"id":"q2","type":"truefalse","prompt":"Yes?","correctAnswer":"true"}`,
		},
		{
			name:     "text",
			question: Question{ID: "q3", Prompt: "Name", Body: FreeText{Answer: "Ada"}},
			want:     `{"id":"q3","type":"text","prompt":"Name","correctAnswer":"Ada"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.question)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var decoded Question
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.question, decoded)
		})
	}
}

func TestQuestion_UnmarshalRejectsUnknownType(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id":"q1","type":"essay","prompt":"Write","correctAnswer":"x"}`), &q)
	assert.Error(t, err)
}

func TestQuestion_UnmarshalRejectsBadTrueFalse(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"type":"truefalse","prompt":"P","correctAnswer":"yes"}`), &q)
	assert.Error(t, err)
}

func TestQuestion_MarshalWithoutBody(t *testing.T) {
	_, err := json.Marshal(Question{ID: "q1", Prompt: "P"})
	assert.Error(t, err)
}

func TestNewQuestionBody_CopiesOptions(t *testing.T) {
	options := []string{"A", "B"}
	body, err := NewQuestionBody(MultipleChoiceType, options, "A")
	require.NoError(t, err)

	options[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, body.(MultipleChoice).Options)
}

func TestQuestion_OptionsOnlyForMultipleChoice(t *testing.T) {
	assert.Nil(t, Question{Body: FreeText{Answer: "x"}}.Options())
	assert.Nil(t, Question{Body: TrueFalse{}}.Options())
	assert.Equal(t, QuestionType(""), Question{}.Type())
}
