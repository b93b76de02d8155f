package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/check-mode.txt":       {Data: []byte("Information about check mode")},
		"help/actions.md":           {Data: []byte("# Actions\n\nPipeline actions")},
		"help/option-backup.md":     {Data: []byte("# --backup\n\nKeep the original file")},
		"help/properties.txxt":      {Data: []byte("Properties Guide\n================")},
		"help/ignore.json":          {Data: []byte("This should be ignored")},
		"help/nested/connection.md": {Data: []byte("# Connection")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), "help")
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"check-mode", true, "Information about check mode"},
			{"actions", true, "# Actions\n\nPipeline actions"},
			{"connection", true, "# Connection"},
			{"properties", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), "help", Options{
			Extensions: []string{".txt", ".md", ".txxt"},
		})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("properties")
		require.True(t, exists)
		assert.Equal(t, "Properties Guide\n================", topic.Content)
	})

	t.Run("missing root is not an error", func(t *testing.T) {
		tm := New(testFS(), "nowhere")
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--backup", "-backup", "backup", "option-backup"} {
		_, exists := tm.GetTopic(name)
		assert.True(t, exists, name)
	}
}

func TestTopicManager_ListTopicsSorted(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"actions", "check-mode", "connection", "option-backup"}, tm.ListTopics())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "sdcops"}
	root.AddCommand(&cobra.Command{Use: "set", Short: "Set a property", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestInitialize_HelpTopics(t *testing.T) {
	root := newRoot()
	require.NoError(t, Initialize(root, testFS(), "help"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	listing := out.String()
	assert.Contains(t, listing, "General topics:")
	assert.Contains(t, listing, "  check-mode")
	assert.Contains(t, listing, "Option topics:")
	assert.Contains(t, listing, "  --backup")
	assert.Contains(t, listing, "Use 'sdcops help <topic>'")
}

func TestInitialize_HelpTopic(t *testing.T) {
	root := newRoot()
	require.NoError(t, Initialize(root, testFS(), "help"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "check-mode"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "Information about check mode", out.String())
}

func TestInitialize_HelpFallsBackToCommands(t *testing.T) {
	root := newRoot()
	require.NoError(t, Initialize(root, testFS(), "help"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "set"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Set a property")
}

func TestGlamourRenderer(t *testing.T) {
	r := NewGlamourRenderer(true)

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	rendered := r.Render("# Title\n\nBody text", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "Body text")
	assert.False(t, strings.HasPrefix(rendered, "# Title"), "markdown should be rendered")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# raw", r.Render("# raw", ".md"))
}
