package subtitles

import (
	"strconv"
	"strings"
	"time"

	"github.com/petzku/qc2md/internal/core/domain"
)

const srtArrow = "-->"

// parseSRT extracts the cues from an SRT document. SRT has no positioned
// events, so every well-formed cue is dialogue.
func parseSRT(text string) []domain.DialogueLine {
	var lines []domain.DialogueLine

	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		cue := strings.Split(strings.TrimSpace(block), "\n")
		if len(cue) < 2 {
			continue
		}

		// The numeric cue counter is optional in the wild.
		if _, err := strconv.Atoi(strings.TrimSpace(cue[0])); err == nil {
			cue = cue[1:]
		}
		if len(cue) < 2 || !strings.Contains(cue[0], srtArrow) {
			continue
		}

		timing := strings.SplitN(cue[0], srtArrow, 2)
		start, err := parseSRTTime(strings.TrimSpace(timing[0]))
		if err != nil {
			continue
		}
		end, err := parseSRTTime(strings.TrimSpace(timing[1]))
		if err != nil || start >= end {
			continue
		}

		// Hard breaks become \N so the text field round-trips the same
		// way as ASS dialogue.
		text := strings.Join(cue[1:], `\N`)
		lines = append(lines, domain.DialogueLine{
			Start: start,
			End:   end,
			Text:  text,
			Raw:   strings.TrimSpace(cue[0]) + ": " + text,
		})
	}

	return lines
}

// parseSRTTime parses an HH:MM:SS,mmm timestamp. A period in place of the
// comma is tolerated.
func parseSRTTime(s string) (time.Duration, error) {
	s = strings.Replace(s, ",", ".", 1)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, strconv.ErrSyntax
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second)), nil
}
