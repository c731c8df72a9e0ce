package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestAllTopicsMatchFiles(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	names, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != len(files) {
		t.Fatalf("AllTopics() = %d topics, want %d files", len(names), len(files))
	}
	for _, file := range files {
		topic := strings.TrimSuffix(file, ".md")
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) failed: %v", topic, err)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) should fail")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range []string{"Tracking", "Metrics", "Storage"} {
		if !strings.Contains(all, topic) {
			t.Errorf("GetTopics(*) lacks the %s topic", topic)
		}
	}
}

// TestTopicStructure parses each topic and checks it opens with a level-1
// heading, so the rendered output always has a title.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("%s does not start with a heading", file)
			}
			if heading.Level != 1 {
				t.Errorf("%s starts with a level-%d heading, want level 1", file, heading.Level)
			}
		})
	}
}
