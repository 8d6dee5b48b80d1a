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
		"conditions.md":          {Data: []byte("# Conditions\n\nRegular expressions")},
		"option-dry-run.txt":     {Data: []byte("Information about dry-run mode")},
		"nested/templates.txt":   {Data: []byte("Placeholders")},
		"config.txxt":            {Data: []byte("Configuration Guide")},
		"ignored.json":           {Data: []byte("{}")},
		"nested/deeper/notes.md": {Data: []byte("notes")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"conditions", "notes", "option-dry-run", "templates"}, tm.ListTopics())

		topic, ok := tm.GetTopic("templates")
		require.True(t, ok)
		assert.Equal(t, "Placeholders", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic_FlagStyle(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{})
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Information about dry-run mode", topic.Content)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

type upperRenderer struct{}

func (upperRenderer) Render(content, ext string) string { return strings.ToUpper(content) }

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "send", Short: "Send things", Run: func(*cobra.Command, []string) {}})
	_, err := Initialize(root, testFS(), opts)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	return root, out
}

func TestInitialize_HelpTopic(t *testing.T) {
	root, out := newRoot(t, Options{Renderer: upperRenderer{}})

	root.SetArgs([]string{"help", "conditions"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "# CONDITIONS\n\nREGULAR EXPRESSIONS", out.String())
}

func TestInitialize_ListTopics(t *testing.T) {
	root, out := newRoot(t, Options{})

	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "General topics:\n  conditions\n")
	assert.Contains(t, out.String(), "Option topics:\n  --dry-run\n")
	assert.Contains(t, out.String(), "Use 'app help <topic>'")
}

func TestInitialize_FallsBackToCommandHelp(t *testing.T) {
	root, out := newRoot(t, Options{})

	root.SetArgs([]string{"help", "send"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Send things")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	assert.Equal(t, "plain *text*", NewGlamourRenderer().Render("plain *text*", ".txt"))
}

func TestInitialize_FlagStyleTopic(t *testing.T) {
	root, out := newRoot(t, Options{})

	root.SetArgs([]string{"help", "--dry-run"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Information about dry-run mode", out.String())
}
