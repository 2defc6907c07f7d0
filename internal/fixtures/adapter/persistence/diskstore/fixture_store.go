package diskstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/fixtures/domain/repository"
	apperrors "fixturehub/internal/shared/errors"
	"fixturehub/internal/shared/logger"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// definitionPatterns are the two recognized definition file patterns. Files
// not matching either are ignored by both the catalog and the loader.
var definitionPatterns = []string{"**/*.json", "**/*.yaml"}

// FixtureStore implements repository.FixtureSource over a directory tree.
// Fixture identity is the immediate subdirectory name under the root; the
// files inside it define documents per collection.
type FixtureStore struct {
	root string
	log  logger.Logger
}

// NewFixtureStore creates a fixture store rooted at the given directory.
func NewFixtureStore(root string, log logger.Logger) repository.FixtureSource {
	return &FixtureStore{
		root: root,
		log:  log,
	}
}

// ListFixtureNames scans the root for definition files and derives fixture
// names from the immediate parent directory of each match. The result is
// recomputed on every call and sorted only for determinism.
func (s *FixtureStore) ListFixtureNames(ctx context.Context) ([]string, error) {
	// Glob reports no matches for a missing or unreadable root instead of an
	// error, so probe the root first to keep scan failures visible.
	if _, err := os.ReadDir(s.root); err != nil {
		s.log.Errorf("Fixture catalog scan failed for root %s: %v", s.root, err)
		return nil, apperrors.NewCatalogScanError(err)
	}

	matches, err := s.globDefinitionFiles(s.root)
	if err != nil {
		s.log.Errorf("Fixture catalog scan failed for root %s: %v", s.root, err)
		return nil, apperrors.NewCatalogScanError(err)
	}

	cleanRoot := filepath.Clean(s.root)
	seen := make(map[string]struct{})
	for _, match := range matches {
		parent := filepath.Dir(match)
		// A definition file sitting directly in the root belongs to no
		// fixture directory and derives no name.
		if filepath.Clean(parent) == cleanRoot {
			continue
		}
		seen[filepath.Base(parent)] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	s.log.Debugf("Fixture catalog scan found %d fixtures under %s", len(names), s.root)
	return names, nil
}

// LoadFixture resolves the fixture directory and parses every definition file
// inside it.
func (s *FixtureStore) LoadFixture(ctx context.Context, name string) (*model.Fixture, error) {
	dir := filepath.Join(s.root, name)

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewFixtureNotFoundError(name)
		}
		return nil, fmt.Errorf("resolving fixture directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, apperrors.NewFixtureNotFoundError(name)
	}

	matches, err := s.globDefinitionFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning fixture directory %s: %w", dir, err)
	}

	files := make([]model.DefinitionFile, 0, len(matches))
	for _, match := range matches {
		file, err := parseDefinitionFile(dir, match)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	fixture := model.NewFixture(name, dir, files)
	s.log.Debugf("Loaded fixture %s: %d files, %d documents", name, len(fixture.Files), fixture.DocumentCount())
	return fixture, nil
}

// globDefinitionFiles expands both recognized patterns under dir and returns
// the sorted, de-duplicated matches.
func (s *FixtureStore) globDefinitionFiles(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	var matches []string

	for _, pattern := range definitionPatterns {
		expanded, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("expanding glob pattern %s: %w", pattern, err)
		}
		for _, match := range expanded {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			matches = append(matches, match)
		}
	}

	// Sort matches for deterministic ordering
	sort.Strings(matches)
	return matches, nil
}

// parseDefinitionFile reads one definition file and decodes its collection
// sets. The file content maps collection names to document arrays.
func parseDefinitionFile(fixtureDir, path string) (model.DefinitionFile, error) {
	rel, err := filepath.Rel(fixtureDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.DefinitionFile{}, fmt.Errorf("reading definition file %s: %w", rel, err)
	}

	var sets map[string][]model.Document
	format := formatForPath(path)
	switch format {
	case model.FormatYAML:
		if err := yaml.Unmarshal(data, &sets); err != nil {
			return model.DefinitionFile{}, fmt.Errorf("parsing YAML definition %s: %w", rel, err)
		}
	default:
		if err := json.Unmarshal(data, &sets); err != nil {
			return model.DefinitionFile{}, fmt.Errorf("parsing JSON definition %s: %w", rel, err)
		}
	}

	return model.DefinitionFile{
		Name:   filepath.ToSlash(rel),
		Format: format,
		Sets:   sets,
	}, nil
}

func formatForPath(path string) model.DefinitionFormat {
	if filepath.Ext(path) == ".yaml" {
		return model.FormatYAML
	}
	return model.FormatJSON
}
