package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mdhtml-go"
)

// run executes the CLI with args and stdin, isolated from any user config.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRender_Stdin(t *testing.T) {
	out, _, err := run(t, "# Title", "render")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>\n", out)
}

func TestRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, os.WriteFile(path, []byte("A | B\n--|--\n1 | 2"), 0o644))

	out, _, err := run(t, "", "render", path, "--table-class", "summary-table")
	require.NoError(t, err)
	assert.Contains(t, out, `<table class="summary-table">`)
}

func TestRender_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "render", filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestRender_Segments(t *testing.T) {
	out, _, err := run(t, "# T\n- a\n- b", "render", "--segments")
	require.NoError(t, err)

	var got struct {
		HTML     string `json:"html"`
		Segments []struct {
			Kind  string   `json:"kind"`
			Items []string `json:"items"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "<h1>T</h1><ul><li>a</li><li>b</li></ul>", got.HTML)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, "heading", got.Segments[0].Kind)
	assert.Equal(t, "bullet_list", got.Segments[1].Kind)
	assert.Equal(t, []string{"a", "b"}, got.Segments[1].Items)
}

func TestRender_EnvAndConfigFile(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("MDHTML_TABLE_CLASS", "from-env")
		out, _, err := run(t, "A|B\n-|-\n1|2", "render")
		require.NoError(t, err)
		assert.Contains(t, out, `<table class="from-env">`)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mdhtml.yaml")
		require.NoError(t, os.WriteFile(path, []byte("table_class: from-file\nsanitize: true\n"), 0o644))

		out, _, err := run(t, "A|B\n-|-\n1|2\n\n<script>x</script>", "render", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, `<table class="from-file">`)
		assert.NotContains(t, out, "<script")
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("MDHTML_TABLE_CLASS", "from-env")
		out, _, err := run(t, "A|B\n-|-\n1|2", "render", "--table-class", "from-flag")
		require.NoError(t, err)
		assert.Contains(t, out, `<table class="from-flag">`)
	})

	t.Run("missing explicit config", func(t *testing.T) {
		_, _, err := run(t, "x", "render", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestRender_HTMLFallback(t *testing.T) {
	orig, origLogger := toMarkdown, mdhtml.Logger
	t.Cleanup(func() {
		toMarkdown = orig
		mdhtml.SetLogger(origLogger)
	})
	toMarkdown = func(string) (string, error) { return "", errors.New("broken input") }
	var logs bytes.Buffer
	mdhtml.SetLogger(log.New(&logs, "", 0))

	out, _, err := run(t, "**x**", "render", "--html", "--segments")
	require.NoError(t, err)

	var got struct {
		HTML string `json:"html"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "<p><strong>x</strong></p>", got.HTML)
	assert.Contains(t, logs.String(), "broken input")

	out, _, err = run(t, "# A", "outline", "--html")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "A"`)
}

func TestOutline(t *testing.T) {
	out, _, err := run(t, "## A\n\n- x\n- y\n\n> q", "outline")
	require.NoError(t, err)

	var got struct {
		Headings []struct {
			Level int    `json:"level"`
			Text  string `json:"text"`
		} `json:"headings"`
		Lists       int `json:"lists"`
		ListItems   int `json:"list_items"`
		Blockquotes int `json:"blockquotes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Headings, 1)
	assert.Equal(t, 2, got.Headings[0].Level)
	assert.Equal(t, "A", got.Headings[0].Text)
	assert.Equal(t, 1, got.Lists)
	assert.Equal(t, 2, got.ListItems)
	assert.Equal(t, 1, got.Blockquotes)
}

func TestSummaries(t *testing.T) {
	dir := t.TempDir()
	content := `[{"title": "A", "ai_summary": "**x**"}, {"title": "B"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "evergabe_results_20260101_120000.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "evergabe_results_20260202_120000.json"), []byte(content), 0o644))

	t.Run("stdout", func(t *testing.T) {
		out, errOut, err := run(t, "", "summaries", dir, "--workers", "2")
		require.NoError(t, err)
		assert.Contains(t, errOut, "rendered 1 of 2 summaries from evergabe_results_20260202_120000.json")

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "<p><strong>x</strong></p>", got[0]["ai_summary_html"])
		assert.NotContains(t, got[1], "ai_summary_html")
	})

	t.Run("out file", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "rendered.json")
		_, _, err := run(t, "", "summaries", filepath.Join(dir, "evergabe_results_20260202_120000.json"), "--out", outPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "ai_summary_html")
	})

	t.Run("empty dir", func(t *testing.T) {
		_, _, err := run(t, "", "summaries", t.TempDir())
		assert.Error(t, err)
	})
}
