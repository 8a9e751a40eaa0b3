package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// FileHistory implements domain.RunHistory with one JSON file per skill
// under a base directory. History lives outside the validated tree so a
// recorded run never changes what the next run sees.
type FileHistory struct {
	baseDir string
}

// New creates a FileHistory rooted at baseDir.
func New(baseDir string) *FileHistory {
	return &FileHistory{baseDir: baseDir}
}

// DefaultBaseDir returns ~/.skillcheck, honoring the SKILLCHECK_HOME
// override.
func DefaultBaseDir() (string, error) {
	if dir := os.Getenv("SKILLCHECK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".skillcheck"), nil
}

func (h *FileHistory) Save(skillPath string, entry domain.RunEntry) error {
	entries, err := h.Load(skillPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := h.filePath(skillPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(skillPath string) ([]domain.RunEntry, error) {
	data, err := os.ReadFile(h.filePath(skillPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// filePath keys a skill by its absolute path, so a renamed or moved skill
// starts a fresh history.
func (h *FileHistory) filePath(skillPath string) string {
	abs, err := filepath.Abs(skillPath)
	if err != nil {
		abs = skillPath
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(h.baseDir, "history", hex.EncodeToString(sum[:8])+".json")
}
