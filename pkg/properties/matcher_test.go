package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLine(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		line      string
		wantValue string
		wantOK    bool
	}{
		{"active", "http.port", "http.port=18630\n", "18630", true},
		{"disabled", "http.port", "#http.port=18630\n", "18630", true},
		{"crlf terminator", "http.port", "http.port=18630\r\n", "18630", true},
		{"no terminator", "http.port", "http.port=18630", "18630", true},
		{"empty value", "http.port", "http.port=", "", true},
		{"prefix of longer key", "http.port", "http.portx=1\n", "", false},
		{"longer key ending in key", "port", "http.port=1\n", "", false},
		{"double comment", "http.port", "##http.port=1\n", "", false},
		{"leading space", "http.port", " http.port=1\n", "", false},
		{"dot is literal", "http.port", "httpXport=1\n", "", false},
		{"metacharacters", "a(b)*", "a(b)*=x\n", "x", true},
		{"spaces around equals", "http.port", "http.port = 1\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := MatchLine(tt.key, tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a\r\n", "b"}, splitLines("a\r\nb"))
	assert.Equal(t, []string{"\n", "\n"}, splitLines("\n\n"))
}

func TestRewrite(t *testing.T) {
	t.Run("every matching line is replaced", func(t *testing.T) {
		got, old, found := rewrite("#k=1\nk=2\n", "k", "3")
		assert.True(t, found)
		assert.Equal(t, "2", old, "value comes from the last matching line")
		assert.Equal(t, "k=3"+LineEnding+"k=3"+LineEnding, got)
	})

	t.Run("no match leaves content unchanged", func(t *testing.T) {
		got, old, found := rewrite("a=1\n", "k", "3")
		assert.False(t, found)
		assert.Empty(t, old)
		assert.Equal(t, "a=1\n", got)
	})
}
