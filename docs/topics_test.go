package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/cashbuddy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kinds of executable blocks in the documentation.
const (
	bashSetup    = "bash setup"    // starts a scenario in a fresh directory
	bashRun      = "bash run"      // output is kept for the next console check
	bashCheck    = "bash check"    // must exit successfully
	consoleCheck = "console check" // expected output of the last bash run
)

func TestTopics(t *testing.T) {
	topics, err := Topics()
	require.NoError(t, err)
	require.NotEmpty(t, topics)

	listed := make(map[string]bool)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Summary, topic.Name)
		_, err := GetTopic(topic.Name)
		assert.NoError(t, err, "listed topic %q does not load", topic.Name)
		listed[topic.Name] = true
	}

	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		if name != "readme" {
			assert.True(t, listed[name], "topic %q is not listed in readme.md", name)
		}
	}
}

func TestGetTopic(t *testing.T) {
	storage, err := GetTopic(" Storage ")
	require.NoError(t, err)
	assert.Contains(t, storage, "sqlite")

	// A command name is a topic too.
	usage, err := GetTopic("mark")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(usage, "## mark\n"))

	all, err := GetTopic("*")
	require.NoError(t, err)
	for _, name := range []string{"commands", "storage", "configuration"} {
		content, err := GetTopic(name)
		require.NoError(t, err)
		assert.Contains(t, all, content)
	}

	_, err = GetTopic("dance")
	assert.EqualError(t, err, `topic "dance" not found`)
	_, err = GetTopics("storage", "dance")
	assert.Error(t, err)
}

func TestCommandsMatchInterpreter(t *testing.T) {
	assert.Equal(t, cashbuddy.Commands, Commands())
}

func TestUsage(t *testing.T) {
	tests := []struct {
		command  string
		synopsis []string
		contains string
	}{
		{command: "add", synopsis: []string{"add a/AMOUNT desc/DESCRIPTION [cat/CATEGORY]"}, contains: "Uncategorized"},
		{command: "EDIT", synopsis: []string{"edit id/INDEX [a/AMOUNT] [desc/DESCRIPTION] [cat/CATEGORY]"}, contains: "stays marked"},
		{command: "find", synopsis: []string{"find cat/CATEGORY", "find desc/KEYWORD"}, contains: "Exactly one criterion"},
		{command: "bye", synopsis: []string{"bye"}, contains: "nothing is lost"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			usage, err := Usage(tt.command)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(usage, "## "+strings.ToLower(tt.command)+"\n"), "usage starts with its heading:\n%s", usage)
			assert.Contains(t, usage, tt.contains)
			assert.NotContains(t, usage, "\n## ", "usage stops at the next section")

			synopsis, err := Synopsis(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.synopsis, synopsis)
		})
	}
}

func TestUsageUnknownCommand(t *testing.T) {
	_, err := Usage("dance")
	assert.Error(t, err)
	_, err = Synopsis("")
	assert.Error(t, err)
}

func TestParseSections(t *testing.T) {
	content := []byte("# Title\n\nintro\n\n## one\n\n```\none X\n```\n\ntext\n\n```\nnot synopsis\n```\n\n### detail\n\nmore\n\n## two\n\nno block\n")
	secs := parseSections(content)
	require.Len(t, secs, 2)

	assert.Equal(t, "one", secs[0].name)
	assert.Equal(t, []string{"one X"}, secs[0].synopsis)
	assert.Equal(t, "## one\n\n```\none X\n```\n\ntext\n\n```\nnot synopsis\n```\n\n### detail\n\nmore\n", secs[0].content)

	assert.Equal(t, "two", secs[1].name)
	assert.Nil(t, secs[1].synopsis)
	assert.Equal(t, "## two\n\nno block\n", secs[1].content)
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	files = append(files, "../README.md")

	bin := buildCashbuddy(t)
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			newScenario(bin).run(t, extractBlocks(t, file))
		})
	}
}

// docBlock is an executable fenced code block of a markdown file.
type docBlock struct {
	kind    string
	content string
	file    string
	line    int
}

func (b docBlock) String() string { return fmt.Sprintf("%s:%d: %s", b.file, b.line, b.kind) }

// buildCashbuddy builds the cashbuddy executable and returns its path.
func buildCashbuddy(t *testing.T) string {
	t.Helper()
	output := filepath.Join(t.TempDir(), "cashbuddy")
	out, err := exec.Command("go", "build", "-o", output, "../cashbuddy/").CombinedOutput()
	require.NoError(t, err, "failed to build cashbuddy:\n%s", out)
	return output
}

// extractBlocks returns the executable blocks of a markdown file, in order.
func extractBlocks(t *testing.T, file string) []docBlock {
	t.Helper()
	content, err := os.ReadFile(file)
	require.NoError(t, err)

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	var blocks []docBlock
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(content))
		switch kind {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			body.Write(line.Value(content))
		}
		blocks = append(blocks, docBlock{
			kind:    kind,
			content: body.String(),
			file:    file,
			line:    bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// scenario runs blocks one after the other in a shared directory, with the
// cashbuddy binary on the PATH and a clean configuration.
type scenario struct {
	env        []string
	dir        string
	lastOutput string
}

func newScenario(bin string) *scenario {
	path := fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH"))
	return &scenario{
		env: append(os.Environ(), path,
			"CASHBUDDY_DATA=", "CASHBUDDY_BACKEND=", "CASHBUDDY_CURRENCY=", "CASHBUDDY_LOG_LEVEL=disabled"),
	}
}

func (s *scenario) run(t *testing.T, blocks []docBlock) {
	t.Helper()
	s.dir = t.TempDir()
	for _, b := range blocks {
		if b.kind == consoleCheck {
			got := strings.ReplaceAll(strings.TrimSpace(s.lastOutput), "\t", "        ")
			assert.Equal(t, strings.TrimSpace(b.content), got, "%s: output mismatch", b)
			continue
		}
		if b.kind == bashSetup {
			s.dir = t.TempDir()
		}

		cmd := exec.Command("bash", "-c", "set -e; "+b.content)
		cmd.Dir = s.dir
		cmd.Env = s.env
		output, err := cmd.CombinedOutput()
		if b.kind == bashRun {
			s.lastOutput = string(output)
		}
		if err == nil {
			continue
		}
		if b.kind == bashCheck {
			t.Errorf("%s failed: %v\n%s", b, err, output)
			continue
		}
		t.Fatalf("%s failed: %v\n%s", b, err, output)
	}
}
