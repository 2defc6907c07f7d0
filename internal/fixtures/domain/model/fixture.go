package model

import "sort"

// Document represents a single seeded document. Content is free-form and is
// written to the target collection exactly as defined, without schema checks.
type Document map[string]interface{}

// DefinitionFormat identifies the on-disk encoding of a definition file.
type DefinitionFormat string

const (
	FormatJSON DefinitionFormat = "json"
	FormatYAML DefinitionFormat = "yaml"
)

// DefinitionFile represents one parsed definition file inside a fixture
// directory. Its content maps collection names to the documents seeded into
// them, so a single file may populate several collections.
type DefinitionFile struct {
	// Name is the file path relative to the fixture directory.
	Name   string
	Format DefinitionFormat
	// Sets maps a collection name to the documents defined for it.
	Sets map[string][]Document
}

// Collections returns the collection names defined by this file in sorted
// order. Sorting keeps the apply order deterministic across runs.
func (f *DefinitionFile) Collections() []string {
	names := make([]string, 0, len(f.Sets))
	for name := range f.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocumentCount returns the total number of documents defined by this file.
func (f *DefinitionFile) DocumentCount() int {
	count := 0
	for _, docs := range f.Sets {
		count += len(docs)
	}
	return count
}

// Fixture represents a named dataset: a directory under the fixtures root
// whose definition files describe the documents to seed.
type Fixture struct {
	// Name is the fixture directory name under the fixtures root.
	Name string
	// Dir is the resolved path of the fixture directory.
	Dir string
	// Files holds the parsed definition files sorted by Name.
	Files []DefinitionFile
}

// NewFixture creates a fixture with its definition files sorted by name.
func NewFixture(name, dir string, files []DefinitionFile) *Fixture {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return &Fixture{
		Name:  name,
		Dir:   dir,
		Files: files,
	}
}

// Collections returns the distinct collection names referenced across all
// definition files, sorted.
func (fx *Fixture) Collections() []string {
	seen := make(map[string]struct{})
	for _, file := range fx.Files {
		for name := range file.Sets {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocumentCount returns the total number of documents across all files.
func (fx *Fixture) DocumentCount() int {
	count := 0
	for _, file := range fx.Files {
		count += file.DocumentCount()
	}
	return count
}

// IsEmpty reports whether the fixture defines no documents at all.
func (fx *Fixture) IsEmpty() bool {
	return fx.DocumentCount() == 0
}
