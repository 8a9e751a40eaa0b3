package domain

import "errors"

// SkillDocName is the document every skill package carries at its root.
const SkillDocName = "SKILL.md"

// Sentinel errors returned by SkillScanner implementations when the target
// path cannot serve as a skill directory.
var (
	ErrSkillDirNotFound = errors.New("skill directory not found")
	ErrNotADirectory    = errors.New("not a directory")
)

// SkillScanner reads a skill directory in one pass: the recursive file
// listing plus the skill document content.
type SkillScanner interface {
	Scan(skillPath string) (*ScanResult, error)
}

// SkillFinder locates skill directories beneath a root path.
type SkillFinder interface {
	FindSkills(root string) ([]string, error)
}

// ScanResult holds everything a validation run reads from disk.
type ScanResult struct {
	RootPath    string   // absolute path of the skill directory
	DirName     string   // base name of the skill directory
	Files       []string // relative paths of regular files, lexical order
	ListingErr  error    // non-fatal walk error; degrades the listing check
	HasSkillDoc bool
	SkillDoc    string // raw SKILL.md content when present and readable
	SkillDocErr error  // read failure for an existing SKILL.md
}

// ConfigLoader resolves the rule configuration for a skill directory.
type ConfigLoader interface {
	Load(skillPath string) (RuleConfig, error)
}

// RunHistory records and replays validation runs per skill.
type RunHistory interface {
	Save(skillPath string, entry RunEntry) error
	Load(skillPath string) ([]RunEntry, error)
}

// GitInfo resolves version-control provenance for a path.
type GitInfo interface {
	CommitHash(path string) (string, error)
}
