// Package docs embeds the silver documentation topics.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the name of the topic index.
const Readme = "readme"

// Topic is a documentation topic as listed in the index.
type Topic struct {
	Name        string
	Description string
}

var indexLine = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Index returns the topics listed in the readme, in order.
func Index() ([]Topic, error) {
	f, err := docs.Open(Readme + ".md")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var topics []Topic
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if m := indexLine.FindStringSubmatch(sc.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: strings.TrimSpace(m[2])})
		}
	}
	return topics, sc.Err()
}

// GetTopic returns the content of a topic. "*" returns every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates several topics.
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

// GetAllTopics returns the names of all topics but the readme, sorted.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if name := strings.TrimSuffix(e, ".md"); name != Readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
