// Package scanner enumerates candidate files for one mapping run: a
// directory walk with hidden-file rules, default build-directory skips,
// .gitignore support, and user ignore globs. The mapper itself never sees
// directory entries, only the resulting relative paths.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	gitignore "github.com/sabhiram/go-gitignore"
)

// skipDirs are never descended into, matching the conventional build and
// VCS directories codebases accumulate.
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"__pycache__":  true,
	"vendor":       true,
	"build":        true,
	"dist":         true,
	"target":       true,
}

type compiledPattern struct {
	pattern string
	glob    glob.Glob
	// dirGlob matches the directory itself for "dir/**"-style patterns so
	// the walk can prune it instead of visiting every child.
	dirGlob glob.Glob
}

// Scanner walks one analysis root.
type Scanner struct {
	root           string
	ignorePatterns []compiledPattern
	gitignore      *gitignore.GitIgnore
}

// New creates a scanner for root. Ignore patterns use glob syntax with '/'
// separators; when useGitignore is set and the root has a .gitignore, its
// rules apply on top of the defaults.
func New(root string, ignorePatterns []string, useGitignore bool) (*Scanner, error) {
	s := &Scanner{root: root}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		cp := compiledPattern{pattern: pattern, glob: g}
		if trimmed, ok := strings.CutSuffix(pattern, "/**"); ok {
			dg, err := glob.Compile(trimmed, '/')
			if err != nil {
				return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
			}
			cp.dirGlob = dg
		}
		s.ignorePatterns = append(s.ignorePatterns, cp)
	}

	if useGitignore {
		ignoreFile := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(ignoreFile); err == nil {
			gi, err := gitignore.CompileIgnoreFile(ignoreFile)
			if err != nil {
				return nil, fmt.Errorf("read .gitignore: %w", err)
			}
			s.gitignore = gi
		}
	}

	return s, nil
}

// Scan walks the root and returns candidate file paths relative to it,
// sorted for deterministic reports. Enumeration failure is the one fatal
// error of a mapping run.
func (s *Scanner) Scan() ([]string, error) {
	var paths []string

	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)
		base := filepath.Base(path)

		if info.IsDir() {
			if strings.HasPrefix(base, ".") || skipDirs[base] || s.ignored(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(base, ".") || s.ignored(relPath) {
			return nil
		}

		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", s.root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadFile loads one candidate's bytes, root-relative.
func (s *Scanner) ReadFile(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, filepath.FromSlash(relPath)))
}

func (s *Scanner) ignored(relPath string) bool {
	if s.gitignore != nil && s.gitignore.MatchesPath(relPath) {
		return true
	}
	isDir := strings.HasSuffix(relPath, "/")
	trimmed := strings.TrimSuffix(relPath, "/")
	for _, cp := range s.ignorePatterns {
		if cp.glob.Match(trimmed) {
			return true
		}
		if isDir && cp.dirGlob != nil && cp.dirGlob.Match(trimmed) {
			return true
		}
	}
	return false
}
