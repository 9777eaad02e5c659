package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONArray(t *testing.T) {
	payload := `[
		{"question": "Q1?", "optionA": "a", "correctAnswer": "B"},
		{"question": "Q2?", "option_a": "a"}
	]`

	records, err := ParseJSON(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Q1?", records[0]["question"])
	assert.Equal(t, "B", records[0]["correctAnswer"])
	assert.Equal(t, "a", records[1]["option_a"])
}

func TestParseJSONWrappedObject(t *testing.T) {
	payload := `{"questions": [{"question": "Q1?", "correctAnswer": "C"}]}`

	records, err := ParseJSON(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "C", records[0]["correctAnswer"])
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON(strings.NewReader("{nope"))
	assert.Error(t, err)
}

func TestParseCSVLowercasesHeadersAndHandlesQuotes(t *testing.T) {
	payload := "Question,Option_A,Option_B,Correct_Answer\n" +
		"\"What does CPU, in short, stand for?\",Central Processing Unit,Computer Processing Unit,A\n" +
		"What does RAM stand for?,Read Access Memory,Random Access Memory,B\n"

	records, err := ParseCSV(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "What does CPU, in short, stand for?", records[0]["question"])
	assert.Equal(t, "Central Processing Unit", records[0]["option_a"])
	assert.Equal(t, "A", records[0]["correct_answer"])
	assert.Equal(t, "B", records[1]["correct_answer"])
}

func TestParseCSVSkipsBlankRows(t *testing.T) {
	payload := "question,optiona\nQ1?,a\n,\n"

	records, err := ParseCSV(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Q1?", records[0]["question"])
}

func TestParseCSVShortRows(t *testing.T) {
	payload := "question,optiona,optionb\nQ1?,a\n"

	records, err := ParseCSV(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0]["optionb"], "missing trailing cells read as empty")
}

func TestParseDispatchesOnExtension(t *testing.T) {
	records, err := Parse("bank.JSON", strings.NewReader(`[{"question": "Q?"}]`))
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = Parse("bank.txt", strings.NewReader("whatever"))
	assert.Error(t, err)
}
