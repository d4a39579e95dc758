// SPDX-License-Identifier: MIT

package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips common indent",
			in: "\n" +
				"    fire\n" +
				"      smoke\n" +
				"    logs\n" +
				"  ",
			want: "fire\n  smoke\nlogs",
		},
		{
			name: "keeps relative indentation",
			in: "\n" +
				"        a\n" +
				"    b\n" +
				"  ",
			want: "    a\nb",
		},
		{
			name: "blank lines do not define the indent",
			in: "\n" +
				"    a\n" +
				"\n" +
				"    b\n" +
				"  ",
			want: "a\n\nb",
		},
		{
			name: "no indent",
			in:   "\na\nb\n",
			want: "a\nb",
		},
		{
			name: "too short",
			in:   "a\nb",
			want: "",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedent(tt.in))
		})
	}
}
