// Package docs holds the user documentation of cashbuddy.
//
// Topics are markdown files embedded in the binary and listed in readme.md.
// The "commands" topic is also the source of the per-command usage shown by
// help and by error messages.
package docs

import (
	"embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var docs embed.FS

// Topic is an entry of the documentation overview.
type Topic struct {
	Name    string
	Summary string
}

// Topics returns the topics listed in the overview, as "* name: summary"
// items, in their order.
func Topics() ([]Topic, error) {
	content, err := docs.ReadFile("readme.md")
	if err != nil {
		return nil, err
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var topics []Topic
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		item, ok := n.(*ast.ListItem)
		if !entering || !ok || item.FirstChild() == nil {
			return ast.WalkContinue, nil
		}
		line := string(item.FirstChild().Lines().Value(content))
		if name, summary, found := strings.Cut(line, ":"); found {
			topics = append(topics, Topic{Name: strings.TrimSpace(name), Summary: strings.TrimSpace(summary)})
		}
		return ast.WalkSkipChildren, nil
	})
	return topics, err
}

// GetTopic returns the content of a documentation topic. "*" is every topic.
// A command name returns the usage of that command.
func GetTopic(topic string) (string, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	if content, err := docs.ReadFile(topic + ".md"); err == nil {
		return string(content), nil
	}
	if usage, err := Usage(topic); err == nil {
		return usage, nil
	}
	return "", fmt.Errorf("topic %q not found", topic)
}

// GetTopics returns the content of several topics, one after the other.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the names of the topics listed in the overview.
func GetAllTopics() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	return names, nil
}
