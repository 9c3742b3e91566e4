package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDateNumFmt(t *testing.T) {
	tests := []struct {
		id   int
		want bool
	}{
		{0, false},
		{1, false},
		{4, false},
		{10, false},
		{14, true},
		{22, true},
		{27, true},
		{36, true},
		{45, true},
		{47, true},
		{49, false},
		{58, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isDateNumFmt(tt.id, nil), "id %d", tt.id)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"d/m/yy h:mm", true},
		{"hh:mm:ss", true},
		{"[h]:mm", true},
		{"[mm]", true},
		{"[$-409]mmmm d, yyyy", true},
		{"General", false},
		{"0.00", false},
		{"#,##0", false},
		{`0.0 "days"`, false},
		{`\d0`, false},
		{"[Red]0.00", false},
		{"0.00;[Red]yyyy", false},
		{"0%", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormatCode(tt.code))
		})
	}

	custom := "yyyy"
	assert.True(t, isDateNumFmt(0, &custom))
	custom = "0.000"
	assert.False(t, isDateNumFmt(14, &custom))
}
