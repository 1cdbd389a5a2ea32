package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestActsAndSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []ActSection
	}{
		{
			name: "array with both spellings",
			raw:  `[{"under_act":"Indian Penal Code","under_section":"302"},{"act":"Arms Act","section":"25"}]`,
			want: []ActSection{
				{UnderAct: Ptr("Indian Penal Code"), UnderSection: Ptr("302")},
				{UnderAct: Ptr("Arms Act"), UnderSection: Ptr("25")},
			},
		},
		{
			name: "single object",
			raw:  `{"Under Act(s)":"NI Act","Under Section(s)":"138"}`,
			want: []ActSection{{UnderAct: Ptr("NI Act"), UnderSection: Ptr("138")}},
		},
		{
			name: "section only",
			raw:  `[{"under_section":"420"}]`,
			want: []ActSection{{UnderSection: Ptr("420")}},
		},
		{
			name: "both absent dropped",
			raw:  `[{"under_act":"-","under_section":""},{"remarks":"x"},"stray"]`,
			want: []ActSection{},
		},
		{
			name: "not a container",
			raw:  `"IPC 302"`,
			want: []ActSection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActsAndSections(gjson.Parse(tt.raw)))
		})
	}
}
