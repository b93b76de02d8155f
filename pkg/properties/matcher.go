package properties

import (
	"regexp"
	"runtime"
	"strings"
)

// LineEnding is the terminator written after a rewritten line.
var LineEnding = lineEnding()

func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Matcher recognizes the line holding one key, active or commented out.
type Matcher struct {
	key string
	re  *regexp.Regexp
}

// NewMatcher builds a matcher for key. The key is matched literally, so
// regexp metacharacters in it (dots are common) have no special meaning.
func NewMatcher(key string) *Matcher {
	return &Matcher{
		key: key,
		re:  regexp.MustCompile(`^#?` + regexp.QuoteMeta(key) + `=(.*)$`),
	}
}

// Match reports whether line sets the matcher's key and returns the text
// after '='. Any line terminator is ignored.
func (m *Matcher) Match(line string) (string, bool) {
	groups := m.re.FindStringSubmatch(trimTerminator(line))
	if groups == nil {
		return "", false
	}
	return groups[1], true
}

// MatchLine is a convenience for a one-off NewMatcher(key).Match(line).
func MatchLine(key, line string) (string, bool) {
	return NewMatcher(key).Match(line)
}

// splitLines splits content after every '\n', keeping terminators so that
// unmatched lines can be copied back byte for byte.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// rewrite replaces every line matching key with "key=value" plus
// LineEnding. It returns the rebuilt content, the value found on the last
// matching line and whether any line matched.
func rewrite(content, key, value string) (string, string, bool) {
	m := NewMatcher(key)

	var (
		b        strings.Builder
		oldValue string
		found    bool
	)
	b.Grow(len(content) + len(value))

	for _, line := range splitLines(content) {
		if v, ok := m.Match(line); ok {
			oldValue = v
			found = true
			b.WriteString(key)
			b.WriteString("=")
			b.WriteString(value)
			b.WriteString(LineEnding)
			continue
		}
		b.WriteString(line)
	}

	return b.String(), oldValue, found
}
