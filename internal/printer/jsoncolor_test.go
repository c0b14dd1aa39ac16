package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/jobform/pkg/tuitest"
)

func TestColorizeJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "report",
			input: `{"valid":false,"errors":{"email":"Email is required"},"attempts":2,"summary":null}`,
			want: `{
  "valid": false,
  "errors": {
    "email": "Email is required"
  },
  "attempts": 2,
  "summary": null
}`,
		},
		{
			name:  "array and numbers",
			input: `[-1,3.14,1e10,true]`,
			want: `[
  -1,
  3.14,
  1e10,
  true
]`,
		},
		{
			name:  "escaped quotes",
			input: `{"msg":"hello \"world\""}`,
			want: `{
  "msg": "hello \"world\""
}`,
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tuitest.StripANSI(ColorizeJSON([]byte(tt.input))))
		})
	}
}

func TestColorizeJSON_InvalidInput(t *testing.T) {
	assert.Equal(t, "not json at all", ColorizeJSON([]byte("not json at all")))
}
