package docs

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// section is the documentation of a single command in commands.md.
type section struct {
	name     string
	synopsis []string // lines of the first code block
	content  string   // whole section, heading included
}

var (
	sectionsOnce sync.Once
	sections     []section
	sectionsErr  error
)

// loadSections parses commands.md once. Every level 2 heading starts the
// section of the command it names.
func loadSections() ([]section, error) {
	sectionsOnce.Do(func() {
		content, err := docs.ReadFile("commands.md")
		if err != nil {
			sectionsErr = err
			return
		}
		sections = parseSections(content)
	})
	return sections, sectionsErr
}

func parseSections(content []byte) []section {
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var result []section
	open := -1 // start offset of the current section, -1 outside any
	closeSection := func(end int) {
		if open >= 0 {
			result[len(result)-1].content = strings.TrimSpace(string(content[open:end])) + "\n"
		}
		open = -1
	}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level > 2 || n.Lines().Len() == 0 {
				continue
			}
			start := lineStart(content, n.Lines().At(0).Start)
			closeSection(start)
			if n.Level == 2 {
				open = start
				result = append(result, section{name: strings.TrimSpace(string(n.Lines().Value(content)))})
			}
		case *ast.FencedCodeBlock:
			if open < 0 || result[len(result)-1].synopsis != nil {
				continue
			}
			var lines []string
			for i := 0; i < n.Lines().Len(); i++ {
				line := n.Lines().At(i)
				lines = append(lines, strings.TrimRight(string(line.Value(content)), "\r\n"))
			}
			result[len(result)-1].synopsis = lines
		}
	}
	closeSection(len(content))
	return result
}

// lineStart returns the offset of the first byte of the line holding offset.
func lineStart(content []byte, offset int) int {
	return bytes.LastIndexByte(content[:offset], '\n') + 1
}

// Commands returns the documented commands in documentation order.
func Commands() []string {
	secs, err := loadSections()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(secs))
	for _, s := range secs {
		names = append(names, s.name)
	}
	return names
}

// Usage returns the full documentation section of a command.
func Usage(command string) (string, error) {
	s, err := find(command)
	if err != nil {
		return "", err
	}
	return s.content, nil
}

// Synopsis returns the argument syntax of a command, one form per line.
func Synopsis(command string) ([]string, error) {
	s, err := find(command)
	if err != nil {
		return nil, err
	}
	return s.synopsis, nil
}

func find(command string) (section, error) {
	secs, err := loadSections()
	if err != nil {
		return section{}, err
	}
	command = strings.ToLower(strings.TrimSpace(command))
	for _, s := range secs {
		if s.name == command {
			return s, nil
		}
	}
	return section{}, fmt.Errorf("no documentation for command %q", command)
}
