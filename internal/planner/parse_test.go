package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "\n  {\"a\":1}  \n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"upper case info", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"missing closing fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"only a fence", "```json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestParseResponse(t *testing.T) {
	raw, err := ParseResponse("```json\n{\"summary\":\"ok\"}\n```")
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"ok"}`, string(raw))
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "```json\n```", "Sure! Here is your plan: {", "{'summary': 'x'}"} {
		_, err := ParseResponse(in)
		require.Error(t, err, in)
		assert.Equal(t, KindMalformedResponse, KindOf(err), in)

		var me *MalformedResponseError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, in, me.Raw)
	}
}
