package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_CustomTags(t *testing.T) {
	type row struct {
		Type   string `json:"type" validate:"question_type"`
		Prompt string `json:"prompt" validate:"not_blank"`
	}

	v := New()
	assert.NoError(t, v.ValidateStruct(row{Type: "truefalse", Prompt: "Sky is blue"}))
	assert.Error(t, v.ValidateStruct(row{Type: "essay", Prompt: "Sky is blue"}))
	assert.Error(t, v.ValidateStruct(row{Type: "text", Prompt: "  "}))
}
