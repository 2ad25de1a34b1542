package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/khmershop/labelbot/internal/common"
)

// Extractor turns one raw message into the template's field set.
// Matching is all-or-nothing: a message either yields every required field or
// nothing at all, so a label can never be printed with a silently blank
// critical field.
type Extractor struct {
	tpl      *Template
	patterns map[string]*regexp.Regexp
	log      *slog.Logger
}

// NewExtractor compiles the template's field patterns.
func NewExtractor(tpl *Template, log *slog.Logger) (*Extractor, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	patterns := make(map[string]*regexp.Regexp, len(tpl.Fields))
	for _, fs := range tpl.Fields {
		switch fs.Kind {
		case KindText:
			patterns[fs.Name] = regexp.MustCompile(`(?m)` + regexp.QuoteMeta(fs.Marker) + `[ \t]*(.*)$`)
		case KindAmount:
			patterns[fs.Name] = regexp.MustCompile(regexp.QuoteMeta(fs.Marker) + `[ \t]*\$?[ \t]*([0-9][0-9,]*(?:\.[0-9]+)?)`)
		case KindStatus:
			// matched line-wise, not by regexp
		}
	}
	return &Extractor{tpl: tpl, patterns: patterns, log: log}, nil
}

// Extract evaluates every field pattern against text.
//
// Returns common.ErrIgnorableInput when the header marker is absent (the
// message is simply not an order) and common.ErrMalformedOrder when the
// header is present but any required field fails to match. On success the
// returned map holds every template field, optional misses as "".
func (e *Extractor) Extract(text string) (map[string]string, error) {
	if !strings.Contains(text, e.tpl.Header) {
		return nil, common.ErrIgnorableInput
	}

	out := make(map[string]string, len(e.tpl.Fields))
	for _, fs := range e.tpl.Fields {
		value, ok := e.matchField(fs, text)
		if !ok {
			if fs.Required {
				return nil, fmt.Errorf("%w: field %s", common.ErrMalformedOrder, fs.Name)
			}
			value = ""
		}
		out[fs.Name] = value
	}
	return out, nil
}

func (e *Extractor) matchField(fs FieldSpec, text string) (string, bool) {
	if fs.Kind == KindStatus {
		return e.matchStatusLine(text)
	}
	m := e.patterns[fs.Name].FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if value == "" && fs.Required {
		return "", false
	}
	return value, true
}

// matchStatusLine scans for a line led by a status marker glyph whose phrase
// is in the closed status set, or a bare paid/unpaid line. The captured value
// is the whole trimmed line, marker included. A marker-led line with an
// unknown phrase fails the match: unknown statuses must not reach a label.
func (e *Extractor) matchStatusLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if e.isStatusPhrase(line) {
			return line, true
		}
		for _, marker := range e.tpl.StatusMarkers {
			if !strings.HasPrefix(line, marker) {
				continue
			}
			phrase := strings.TrimSpace(strings.TrimPrefix(line, marker))
			if e.isStatusPhrase(phrase) {
				return line, true
			}
			return "", false
		}
	}
	return "", false
}

func (e *Extractor) isStatusPhrase(s string) bool {
	for _, p := range e.tpl.StatusPhrases {
		if strings.EqualFold(s, p) {
			return true
		}
	}
	return false
}
