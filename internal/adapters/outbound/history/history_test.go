package history_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/history"
	"github.com/skillcheck/skillcheck/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	h := history.New(t.TempDir())
	skill := filepath.Join(t.TempDir(), "pdf-processing")

	entry := domain.RunEntry{
		Timestamp:  "2026-08-25T10:00:00Z",
		CommitHash: "abc1234",
		Valid:      false,
		Errors:     2,
		Warnings:   3,
	}

	err := h.Save(skill, entry)
	require.NoError(t, err)

	entries, err := h.Load(skill)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Errors)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
}

func TestHistory_AppendKeepsOrder(t *testing.T) {
	h := history.New(t.TempDir())
	skill := filepath.Join(t.TempDir(), "pdf-processing")

	require.NoError(t, h.Save(skill, domain.RunEntry{Timestamp: "t1", Errors: 4}))
	require.NoError(t, h.Save(skill, domain.RunEntry{Timestamp: "t2", Errors: 1}))
	require.NoError(t, h.Save(skill, domain.RunEntry{Timestamp: "t3", Valid: true}))

	entries, err := h.Load(skill)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 4, entries[0].Errors)
	assert.True(t, entries[2].Valid)
}

func TestHistory_LoadEmpty(t *testing.T) {
	h := history.New(t.TempDir())

	entries, err := h.Load(filepath.Join(t.TempDir(), "never-validated"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_SkillsAreIsolated(t *testing.T) {
	h := history.New(t.TempDir())
	root := t.TempDir()

	require.NoError(t, h.Save(filepath.Join(root, "alpha"), domain.RunEntry{Timestamp: "t1"}))
	require.NoError(t, h.Save(filepath.Join(root, "beta"), domain.RunEntry{Timestamp: "t2"}))
	require.NoError(t, h.Save(filepath.Join(root, "beta"), domain.RunEntry{Timestamp: "t3"}))

	alpha, err := h.Load(filepath.Join(root, "alpha"))
	require.NoError(t, err)
	beta, err := h.Load(filepath.Join(root, "beta"))
	require.NoError(t, err)

	assert.Len(t, alpha, 1)
	assert.Len(t, beta, 2)
}

func TestDefaultBaseDir_HonorsOverride(t *testing.T) {
	t.Setenv("SKILLCHECK_HOME", "/custom/home")

	dir, err := history.DefaultBaseDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", dir)
}

func TestDefaultBaseDir_FallsBackToHome(t *testing.T) {
	t.Setenv("SKILLCHECK_HOME", "")

	dir, err := history.DefaultBaseDir()
	require.NoError(t, err)
	assert.Equal(t, ".skillcheck", filepath.Base(dir))
}
