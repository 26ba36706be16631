package docs

import (
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	index, err := Index()
	if err != nil {
		t.Fatalf("Index() unexpected error: %v", err)
	}
	var listed []string
	for _, topic := range index {
		listed = append(listed, topic.Name)
		if topic.Description == "" {
			t.Errorf("topic %q has no description in the readme", topic.Name)
		}
		t.Run("load_"+topic.Name, func(t *testing.T) {
			if _, err := GetTopic(topic.Name); err != nil {
				t.Errorf("GetTopic(%q) unexpected error: %v", topic.Name, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	for _, name := range all {
		if !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) expected an error")
	}
}

func TestGetTopic_All(t *testing.T) {
	got, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) unexpected error: %v", err)
	}
	for _, h := range []string{"# Datasets", "# Price bands", "# Calculator", "# Configuration", "# Export"} {
		if !strings.Contains(got, h) {
			t.Errorf("GetTopic(*) does not contain %q", h)
		}
	}
}

// TestStructure checks that every topic has a single title and that every
// bash example calls silver.
func TestStructure(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range append(all, Readme) {
		t.Run(name, func(t *testing.T) {
			content, err := docs.ReadFile(name + ".md")
			if err != nil {
				t.Fatal(err)
			}
			titles, commands := parseMarkdown(content)
			if titles != 1 {
				t.Errorf("%s.md has %d titles, want 1", name, titles)
			}
			for _, cmd := range commands {
				if !strings.Contains(cmd, "silver ") {
					t.Errorf("%s.md bash example %q does not call silver", name, cmd)
				}
			}
		})
	}
}

// parseMarkdown counts the level 1 headings and returns the lines of the bash
// fenced code blocks.
func parseMarkdown(source []byte) (titles int, commands []string) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 1 {
				titles++
			}
		case *ast.FencedCodeBlock:
			if string(n.Language(source)) != "bash" {
				return ast.WalkSkipChildren, nil
			}
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				if line := strings.TrimSpace(string(seg.Value(source))); line != "" {
					commands = append(commands, line)
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return titles, commands
}
