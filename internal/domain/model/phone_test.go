package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{
			name:  "parenthesized format",
			phone: "(330) 555-0199",
			want:  "3305550199",
		},
		{
			name:  "dotted format",
			phone: "330.555.0199",
			want:  "3305550199",
		},
		{
			name:  "leading US country code dropped",
			phone: "+1 330 555 0199",
			want:  "3305550199",
		},
		{
			name:  "eleven digits starting with one",
			phone: "13305550199",
			want:  "3305550199",
		},
		{
			name:  "ten digits starting with one kept as-is",
			phone: "1330555019",
			want:  "1330555019",
		},
		{
			name:  "already bare digits",
			phone: "3305550199",
			want:  "3305550199",
		},
		{
			name:  "empty string",
			phone: "",
			want:  "",
		},
		{
			name:  "no digits at all",
			phone: "call me",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}
