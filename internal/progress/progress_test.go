package progress

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percentage float64
		size       int
		filled     int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{33, 3, 1},
		{150, 4, 4},
		{-5, 4, 0},
	}
	for _, tt := range tests {
		bar := Bar(tt.percentage, tt.size)
		assert.Equal(t, tt.size, utf8.RuneCountInString(bar))
		assert.Equal(t, tt.filled, strings.Count(bar, full), "percentage %v", tt.percentage)
	}
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	Display(&buf, 1, 4, 0.5, 2, 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " 25.00% EPOCH 2/10"), lines[0])
	assert.Equal(t, "cost: 0.50000000000000000000", lines[1])
}

func TestDisplay_CapsLargeCost(t *testing.T) {
	var buf bytes.Buffer
	Display(&buf, 4, 4, 5e9, 1, 1)
	assert.Contains(t, buf.String(), "100.00% EPOCH 1/1")
	assert.Contains(t, buf.String(), "cost: +1000000\n")
}
