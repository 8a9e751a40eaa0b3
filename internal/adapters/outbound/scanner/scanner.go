package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// Directories that never hold skill content.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
}

// FileScanner implements domain.SkillScanner and domain.SkillFinder by
// walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan reads a skill directory in one pass: path type, the recursive file
// listing, and the skill document content. A listing failure is carried in
// the result rather than returned; only an unusable path is an error.
func (s *FileScanner) Scan(skillPath string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(skillPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSkillDirNotFound, absPath)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, absPath)
	}

	result := &domain.ScanResult{
		RootPath: absPath,
		DirName:  filepath.Base(absPath),
	}

	result.ListingErr = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != absPath && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		relPath, _ := filepath.Rel(absPath, path)
		result.Files = append(result.Files, relPath)
		return nil
	})

	// The document read is independent of the listing so a walk failure
	// only degrades the listing check.
	data, err := os.ReadFile(filepath.Join(absPath, domain.SkillDocName))
	switch {
	case err == nil:
		result.HasSkillDoc = true
		result.SkillDoc = string(data)
	case os.IsNotExist(err):
		// stays absent
	default:
		result.HasSkillDoc = true
		result.SkillDocErr = err
	}

	return result, nil
}

// FindSkills walks root and returns every directory containing a skill
// document, in lexical walk order.
func (s *FileScanner) FindSkills(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != absRoot && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == domain.SkillDocName {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dirs, nil
}
