package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/taskhub/pkg/tuitest"
)

func TestColorizeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "object is indented",
			in:   `{"id":7,"title":"Essay"}`,
			want: "{\n  \"id\": 7,\n  \"title\": \"Essay\"\n}",
		},
		{
			name: "literals and negative numbers",
			in:   `[true,false,null,-1.5e3]`,
			want: "[\n  true,\n  false,\n  null,\n  -1.5e3\n]",
		},
		{
			name: "escaped quotes stay inside the string",
			in:   `{"note":"say \"hi\": now"}`,
			want: "{\n  \"note\": \"say \\\"hi\\\": now\"\n}",
		},
		{
			name: "invalid input is returned unchanged",
			in:   `{"id":`,
			want: `{"id":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tuitest.StripANSI(ColorizeJSON([]byte(tt.in))))
		})
	}
}
