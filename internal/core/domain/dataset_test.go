package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath_InsertsSuffixBeforeExtension(t *testing.T) {
	assert.Equal(t, "train.valid.jsonl", OutputPath("train.jsonl", ".valid"))
	assert.Equal(t, "data/eval.valid.jsonl", OutputPath("data/eval.jsonl", ".valid"))
}

func TestOutputPath_DefaultSuffix(t *testing.T) {
	assert.Equal(t, "train.valid.jsonl", OutputPath("train.jsonl", ""))
}

func TestOutputPath_CustomSuffix(t *testing.T) {
	assert.Equal(t, "train.clean.jsonl", OutputPath("train.jsonl", ".clean"))
}

func TestOutputPath_NoExtension(t *testing.T) {
	assert.Equal(t, "dataset.valid", OutputPath("dataset", ".valid"))
}

func TestRecognisedExtension(t *testing.T) {
	assert.True(t, RecognisedExtension("train.jsonl"))
	assert.True(t, RecognisedExtension("train.ndjson"))
	assert.True(t, RecognisedExtension("TRAIN.JSONL"))
	assert.False(t, RecognisedExtension("train.json"))
	assert.False(t, RecognisedExtension("train.csv"))
	assert.False(t, RecognisedExtension("train"))
}

func TestRequiredRoles(t *testing.T) {
	assert.Equal(t, []string{"user", "assistant"}, RequiredRoles())
}

func TestVerdict_Accept(t *testing.T) {
	v := Accept(3)

	assert.True(t, v.Accepted)
	assert.Equal(t, 3, v.Line)
	assert.Empty(t, v.Reason)
}

func TestVerdict_Reject(t *testing.T) {
	v := Reject(7, "missing required role \"assistant\"")

	assert.False(t, v.Accepted)
	assert.Equal(t, 7, v.Line)
	assert.Equal(t, "missing required role \"assistant\"", v.Reason)
}

func TestSplitResult_Counts(t *testing.T) {
	result := SplitResult{
		Split:    SplitTrain,
		Accepted: []Record{{Line: 1}, {Line: 3}},
		Rejections: []Rejection{
			{Line: 2, Reason: "record is not a JSON object"},
		},
	}

	assert.Equal(t, 2, result.AcceptedCount())
	assert.Equal(t, 1, result.RejectedCount())
}
