package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func window(start, end time.Duration) Window {
	return Window{Start: start, End: end}
}

// TestOverlaps covers the interval inclusion rule: a line matches iff
// start < window.end AND end > window.start.
func TestOverlaps(t *testing.T) {
	base := 138 * time.Second // 00:02:18
	w := window(base, base+time.Second)

	tests := []struct {
		name  string
		start time.Duration
		end   time.Duration
		want  bool
	}{
		{"fully inside", base + 200*time.Millisecond, base + 800*time.Millisecond, true},
		{"spans window", base - time.Second, base + 2*time.Second, true},
		{"overlaps start", base - 500*time.Millisecond, base + 500*time.Millisecond, true},
		{"overlaps end", base + 500*time.Millisecond, base + 2*time.Second, true},
		{"ends exactly at window start", base - time.Second, base, false},
		{"starts exactly at window end", base + time.Second, base + 2*time.Second, false},
		{"well before", base - 10*time.Second, base - 5*time.Second, false},
		{"well after", base + 10*time.Second, base + 15*time.Second, false},
		{"ends just inside", base - time.Second, base + time.Millisecond, true},
		{"starts just inside", base + time.Second - time.Millisecond, base + 2*time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := DialogueLine{Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, line.Overlaps(w))
		})
	}
}

// TestPlain strips override tags and flattens line breaks
func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no tags", "It comprises three parts.", "It comprises three parts."},
		{"leading tag", `{\i1}Emphasis{\i0} here`, "Emphasis here"},
		{"hard break", `First line\NSecond line`, "First line Second line"},
		{"soft break", `First\nSecond`, "First Second"},
		{"tag with break", `{\an8}Sign text\Nmore`, "Sign text more"},
		{"empty", "", ""},
		{"only tags", `{\pos(640,360)}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := DialogueLine{Text: tt.text}
			assert.Equal(t, tt.want, line.Plain())
		})
	}
}
