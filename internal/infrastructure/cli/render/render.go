// Package render formats monitoring results as ASCII-only terminal text.
//
// Every function is pure apart from writing to the given io.Writer. Status
// markers are derived from the typed states in internal/domain.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/claudectl/internal/domain"
)

// Status markers.
const (
	MarkOK   = "[OK]"
	MarkWarn = "[WARN]"
	MarkFail = "[FAIL]"
	MarkInfo = "[INFO]"
)

const (
	ruleWidth  = 60
	timeLayout = "2006-01-02 15:04:05"
)

func mark(h domain.HealthStatus) string {
	switch h {
	case domain.HealthOK:
		return MarkOK
	case domain.HealthDegraded:
		return MarkWarn
	default:
		return MarkFail
	}
}

func serviceMark(s domain.ServiceState) string {
	if s == domain.ServiceOptional {
		return MarkInfo
	}
	return mark(s.Health())
}

func configMark(s domain.ConfigState) string {
	if s == domain.ConfigNotNeeded {
		return MarkInfo
	}
	return mark(s.Health())
}

func bandMark(b domain.ScoreBand) string {
	switch b {
	case domain.BandGood:
		return MarkOK
	case domain.BandCaution:
		return MarkWarn
	default:
		return MarkFail
	}
}

// label turns an enum value such as "not_initialized" into "Not initialized".
func label(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// title turns a key such as "global_claude_md" into "Global Claude Md".
func title(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func banner(w io.Writer, text string) {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "  %s\n", text)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

func heading(w io.Writer, text string) {
	fmt.Fprintln(w, text)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

func hint(w io.Writer, indent, text string) {
	fmt.Fprintf(w, "%s-> %s\n", indent, text)
}
