// Package migrations holds the versioned schema applied by cmd/migrate.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed *.sql atlas.sum
var files embed.FS

// Dir is the migration directory, atlas.sum included.
func Dir() fs.FS {
	return files
}

// Files returns the migration file names in apply order, with their contents.
func Files() ([]string, map[string][]byte, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(names)

	contents := make(map[string][]byte, len(names))
	for _, name := range names {
		b, err := files.ReadFile(name)
		if err != nil {
			return nil, nil, err
		}
		contents[name] = b
	}
	return names, contents, nil
}
