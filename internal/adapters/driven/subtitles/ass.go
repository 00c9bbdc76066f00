package subtitles

import (
	"strconv"
	"strings"
	"time"

	"github.com/petzku/qc2md/internal/core/domain"
)

// defaultEventFormat is the standard V4+ Styles event layout, used when the
// [Events] section carries no Format line of its own.
var defaultEventFormat = []string{
	"Layer", "Start", "End", "Style", "Name",
	"MarginL", "MarginR", "MarginV", "Effect", "Text",
}

// parseASS extracts the dialogue events from an ASS/SSA document.
//
// Only Dialogue rows in the [Events] section are kept. Rows whose text
// carries a \pos override are typesetting, not dialogue, and are dropped.
// That check is a heuristic but accurate in practice.
func parseASS(text string) []domain.DialogueLine {
	var (
		lines    []domain.DialogueLine
		inEvents bool
		format   = defaultEventFormat
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inEvents = strings.EqualFold(trimmed, "[Events]")
			continue
		}
		if !inEvents {
			continue
		}

		if value, ok := strings.CutPrefix(trimmed, "Format:"); ok {
			format = splitFields(value, len(strings.Split(value, ",")))
			continue
		}

		value, ok := strings.CutPrefix(trimmed, "Dialogue:")
		if !ok {
			// Comment, Picture, Sound and friends are not dialogue.
			continue
		}

		event, ok := parseEvent(value, format)
		if !ok {
			continue
		}
		if strings.Contains(event.Text, `\pos`) {
			continue
		}

		event.Raw = trimmed
		lines = append(lines, event)
	}

	return lines
}

// parseEvent splits one event row according to the section's Format
// columns. The Text column is last and may itself contain commas.
func parseEvent(value string, format []string) (domain.DialogueLine, bool) {
	fields := splitFields(value, len(format))
	if len(fields) != len(format) {
		return domain.DialogueLine{}, false
	}

	var event domain.DialogueLine
	for i, column := range format {
		switch column {
		case "Start":
			start, err := parseASSTime(fields[i])
			if err != nil {
				return domain.DialogueLine{}, false
			}
			event.Start = start
		case "End":
			end, err := parseASSTime(fields[i])
			if err != nil {
				return domain.DialogueLine{}, false
			}
			event.End = end
		case "Text":
			event.Text = fields[i]
		}
	}

	if event.Start >= event.End {
		return domain.DialogueLine{}, false
	}
	return event, true
}

// splitFields splits a comma-separated event row into at most n fields,
// trimming surrounding whitespace. The final field keeps its commas.
func splitFields(value string, n int) []string {
	fields := strings.SplitN(value, ",", n)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseASSTime parses an H:MM:SS.CC timestamp.
func parseASSTime(s string) (time.Duration, error) {
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
