// Package scan finds analyzable source files under a tree.
//
// The walk prunes build and dependency directories, filters by extension,
// and skips generated type-declaration files. Results are sorted so every
// run visits files in the same order.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the source extensions scanned when the project
// configures none.
var DefaultExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".vue", ".svelte"}

// declarationSuffixes mark generated type-declaration files, never scanned.
var declarationSuffixes = []string{".d.ts", ".d.mts", ".d.cts"}

// skipDirs are build and dependency directory names pruned during the walk.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".next":        true,
	".nuxt":        true,
	"vendor":       true,
}

// FindSources recursively collects source files with the given extensions
// under dirs. Unreadable entries are skipped silently; duplicate paths
// collapse. The result is sorted lexicographically.
func FindSources(dirs []string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	extSet := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		extSet[e] = true
	}

	var files []string
	seen := make(map[string]bool)

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if info.IsDir() {
				if skipDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if isDeclarationFile(path) {
				return nil
			}
			if !extSet[filepath.Ext(path)] {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func isDeclarationFile(path string) bool {
	for _, s := range declarationSuffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}
