package manifest

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Top-level keys that describe the repository itself, not document sections
var metadataKeys = map[string]bool{
	"version":      true,
	"last_updated": true,
	"description":  true,
	"stats":        true,
	"directories":  true,
}

// Keys whose values are lists of document records
var documentListKeys = map[string]bool{
	"specs":      true,
	"test_plans": true,
	"spec":       true,
}

// Keys never descended into while walking a section
var descriptiveKeys = map[string]bool{
	"category":    true,
	"description": true,
}

// Load reads and parses a manifest file from the given path.
// Parsing is node-level so entry positions survive for in-place rewriting.
func Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Parse parses manifest content from raw bytes
func Parse(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNotMapping
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	m := &Manifest{raw: data}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		value := root.Content[i+1]
		if metadataKeys[key.Value] {
			continue
		}
		m.walkSection(value, key.Value, "")
	}

	return m, nil
}

// walkSection recursively collects document entries from one manifest section.
// Section nesting follows the original taxonomy: categories hold versions,
// versions hold document lists, and some categories add one more grouping
// level below a version.
func (m *Manifest) walkSection(node *yaml.Node, section, subsection string) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]

			if documentListKeys[key.Value] {
				category := fmt.Sprintf("%s.%s%s", section, key.Value, subsection)
				m.collectEntries(value, category)
				continue
			}
			if descriptiveKeys[key.Value] {
				continue
			}
			m.walkSection(value, section, subsection+"."+key.Value)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			m.walkSection(item, section, subsection)
		}
	}
}

// collectEntries extracts entries from a document list node
func (m *Manifest) collectEntries(list *yaml.Node, category string) {
	if list.Kind != yaml.SequenceNode {
		return
	}

	for _, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}

		fileNode := mappingValue(item, "file")
		if fileNode == nil || fileNode.Kind != yaml.ScalarNode || fileNode.Value == "" {
			continue
		}

		entry := &Entry{
			File:     fileNode.Value,
			Category: category,
		}

		if pagesNode := mappingValue(item, "pages"); pagesNode != nil && pagesNode.Kind == yaml.ScalarNode {
			entry.PagesRaw = pagesNode.Value
			entry.pagesNode = pagesNode
			if n, err := strconv.Atoi(pagesNode.Value); err == nil && n >= 0 {
				entry.Pages = &n
			}
		}

		m.Entries = append(m.Entries, entry)
	}
}

// mappingValue returns the value node for key in a mapping node, or nil
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
