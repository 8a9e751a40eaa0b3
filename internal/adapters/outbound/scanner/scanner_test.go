package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/scanner"
	"github.com/skillcheck/skillcheck/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScan_ReadsListingAndDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdf-processing")
	writeFile(t, filepath.Join(dir, "SKILL.md"), "---\nname: pdf-processing\n---\n")
	writeFile(t, filepath.Join(dir, "reference.md"), "notes")
	writeFile(t, filepath.Join(dir, "scripts", "run.py"), "print('hi')")

	scan, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, "pdf-processing", scan.DirName)
	assert.True(t, filepath.IsAbs(scan.RootPath))
	assert.True(t, scan.HasSkillDoc)
	assert.Contains(t, scan.SkillDoc, "name: pdf-processing")
	assert.NoError(t, scan.ListingErr)
	assert.Contains(t, scan.Files, "SKILL.md")
	assert.Contains(t, scan.Files, "reference.md")
	assert.Contains(t, scan.Files, filepath.Join("scripts", "run.py"))
}

func TestScan_SkipsToolingDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skill")
	writeFile(t, filepath.Join(dir, "SKILL.md"), "doc")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "index.js"), "x")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(dir, "vendor", "lib.go"), "x")

	scan, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"SKILL.md"}, scan.Files)
}

func TestScan_MissingDocumentIsNotAnError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bare")
	writeFile(t, filepath.Join(dir, "README.md"), "x")

	scan, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	assert.False(t, scan.HasSkillDoc)
	assert.Empty(t, scan.SkillDoc)
	assert.NoError(t, scan.SkillDocErr)
}

func TestScan_NonexistentPath(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSkillDirNotFound)
}

func TestScan_PathIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "SKILL.md")
	writeFile(t, file, "doc")

	_, err := scanner.New().Scan(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestFindSkills_NestedDiscovery(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "skills", "alpha", "SKILL.md"), "a")
	writeFile(t, filepath.Join(root, "skills", "nested", "beta", "SKILL.md"), "b")
	writeFile(t, filepath.Join(root, "skills", "not-a-skill", "README.md"), "r")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "SKILL.md"), "ignored")

	dirs, err := scanner.New().FindSkills(root)
	require.NoError(t, err)

	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, filepath.Base(d))
	}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestFindSkills_RootIsItselfASkill(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "SKILL.md"), "doc")

	dirs, err := scanner.New().FindSkills(root)
	require.NoError(t, err)
	require.Len(t, dirs, 1)

	abs, _ := filepath.Abs(root)
	assert.Equal(t, abs, dirs[0])
}
