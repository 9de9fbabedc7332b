package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportedSize(t *testing.T) {
	s := reportedSize{width: 80, height: 24}
	tests := []struct {
		name    string
		w, h    int
		changed bool
	}{
		{"unchanged", 80, 24, false},
		{"wider", 100, 24, true},
		{"repeated", 100, 24, false},
		{"shorter", 100, 10, true},
		{"back", 80, 24, true},
		{"back again", 80, 24, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.changed, s.update(tt.w, tt.h), tt.name)
		assert.Equal(t, reportedSize{width: tt.w, height: tt.h}, s, tt.name)
	}
}
