package domain

// Check identifiers for the fixed rule battery. Structural checks
// (directory, file, frontmatter) are recorded by the validation run itself
// when it cannot reach the battery.
const (
	CheckSkillDirectory = "skill_directory"
	CheckSkillFile      = "skill_file"
	CheckFrontmatter    = "frontmatter"

	CheckNamePresent        = "name_present"
	CheckNameFormat         = "name_format"
	CheckNameLength         = "name_length"
	CheckNameReservedWords  = "name_reserved_words"
	CheckNameDirectoryMatch = "name_directory_match"

	CheckDescriptionPresent       = "description_present"
	CheckDescriptionLength        = "description_length"
	CheckDescriptionMarkup        = "description_markup"
	CheckDescriptionUsageGuidance = "description_usage_guidance"
	CheckDescriptionVoice         = "description_voice"

	CheckAllowedTools   = "allowed_tools"
	CheckLicense        = "license"
	CheckMetadataFields = "metadata_fields"

	CheckDocumentLength = "document_length"
	CheckWindowsPaths   = "windows_paths"
	CheckFileListing    = "file_listing"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// checkSeverity is the fixed classification of every check identifier.
// It is consulted only at aggregation time: a failed error-tier check
// blocks the verdict, a failed warning-tier check is reported without
// blocking, a failed info-tier check stays visible in the check map only.
var checkSeverity = map[string]string{
	CheckSkillDirectory: SeverityError,
	CheckSkillFile:      SeverityError,
	CheckFrontmatter:    SeverityError,

	CheckNamePresent:        SeverityError,
	CheckNameFormat:         SeverityError,
	CheckNameLength:         SeverityError,
	CheckNameReservedWords:  SeverityError,
	CheckNameDirectoryMatch: SeverityWarning,

	CheckDescriptionPresent:       SeverityError,
	CheckDescriptionLength:        SeverityError,
	CheckDescriptionMarkup:        SeverityError,
	CheckDescriptionUsageGuidance: SeverityWarning,
	CheckDescriptionVoice:         SeverityWarning,

	CheckAllowedTools:   SeverityInfo,
	CheckLicense:        SeverityInfo,
	CheckMetadataFields: SeverityInfo,

	CheckDocumentLength: SeverityWarning,
	CheckWindowsPaths:   SeverityWarning,
	CheckFileListing:    SeverityInfo,
}

// SeverityFor returns the tier for a check identifier. Unknown identifiers
// classify as errors so a misregistered check can never pass silently.
func SeverityFor(name string) string {
	if s, ok := checkSeverity[name]; ok {
		return s
	}
	return SeverityError
}

// Skippable reports whether a check may be disabled via configuration.
// Only warning- and info-tier checks qualify; error-tier policy is fixed.
func Skippable(name string) bool {
	s, ok := checkSeverity[name]
	return ok && s != SeverityError
}

// CheckResult is the outcome of a single rule evaluation.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
	Skipped bool   `json:"skipped,omitempty"`
}

// Report aggregates every check outcome of one validation run. It is
// created empty, populated through Record, and sealed with Finalize; a
// report belongs to exactly one run.
type Report struct {
	Valid     bool                   `json:"valid"`
	SkillPath string                 `json:"skill_path"`
	SkillName string                 `json:"skill_name"`
	Checks    map[string]CheckResult `json:"checks"`
	Errors    []string               `json:"errors"`
	Warnings  []string               `json:"warnings"`
}

// NewReport creates an empty report for the skill directory at path.
// Error and warning lists are non-nil so the JSON contract always carries
// arrays.
func NewReport(path, name string) *Report {
	return &Report{
		SkillPath: path,
		SkillName: name,
		Checks:    make(map[string]CheckResult),
		Errors:    []string{},
		Warnings:  []string{},
	}
}

// Record stores a check outcome and folds its failure into the error or
// warning list according to the fixed severity map. Passed and skipped
// checks contribute to neither list.
func (r *Report) Record(c CheckResult) {
	r.Checks[c.Name] = c
	if c.Passed {
		return
	}
	switch SeverityFor(c.Name) {
	case SeverityError:
		r.Errors = append(r.Errors, c.Message)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, c.Message)
	}
}

// RecordAll records a sequence of check outcomes in order.
func (r *Report) RecordAll(checks []CheckResult) {
	for _, c := range checks {
		r.Record(c)
	}
}

// Finalize computes the verdict. Valid is strictly a function of the error
// list; warnings never block.
func (r *Report) Finalize() {
	r.Valid = len(r.Errors) == 0
}

func (r *Report) ErrorCount() int   { return len(r.Errors) }
func (r *Report) WarningCount() int { return len(r.Warnings) }

// FailedChecks returns the failed, non-skipped results ordered by severity
// (errors first), then by name. Used by renderers; the report itself keeps
// checks unordered.
func (r *Report) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, c := range r.Checks {
		if !c.Passed && !c.Skipped {
			failed = append(failed, c)
		}
	}
	sortChecks(failed)
	return failed
}

// PassedChecks returns the passed or skipped results in the same
// severity-then-name order as FailedChecks.
func (r *Report) PassedChecks() []CheckResult {
	var passed []CheckResult
	for _, c := range r.Checks {
		if c.Passed || c.Skipped {
			passed = append(passed, c)
		}
	}
	sortChecks(passed)
	return passed
}

func sortChecks(checks []CheckResult) {
	rank := map[string]int{
		SeverityError:   0,
		SeverityWarning: 1,
		SeverityInfo:    2,
	}
	less := func(a, b CheckResult) bool {
		ra, rb := rank[SeverityFor(a.Name)], rank[SeverityFor(b.Name)]
		if ra != rb {
			return ra < rb
		}
		return a.Name < b.Name
	}
	for i := 1; i < len(checks); i++ {
		for j := i; j > 0 && less(checks[j], checks[j-1]); j-- {
			checks[j], checks[j-1] = checks[j-1], checks[j]
		}
	}
}

// RunEntry is one line of a skill's validation history.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Valid      bool   `json:"valid"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}
