package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/skillcheck/skillcheck/internal/domain"
	"github.com/skillcheck/skillcheck/internal/domain/frontmatter"
	"github.com/skillcheck/skillcheck/internal/domain/rules"
	"github.com/skillcheck/skillcheck/internal/logger"
)

// ValidateService orchestrates the validation pipeline for one skill
// directory: scan -> extract frontmatter -> rule battery -> report.
type ValidateService struct {
	scanner domain.SkillScanner
	config  domain.ConfigLoader
}

func NewValidateService(scanner domain.SkillScanner, config domain.ConfigLoader) *ValidateService {
	return &ValidateService{
		scanner: scanner,
		config:  config,
	}
}

// Validate checks the skill at skillPath and always returns a complete
// report. Every failure, including I/O, is folded into the report; the
// caller derives the exit signal from report.Valid alone.
func (s *ValidateService) Validate(ctx context.Context, skillPath string) *domain.Report {
	log := logger.G(ctx).WithField("skill", skillPath)

	absPath, err := filepath.Abs(skillPath)
	if err != nil {
		absPath = skillPath
	}
	report := domain.NewReport(absPath, filepath.Base(absPath))

	// 1. Read the skill directory in one pass
	scan, err := s.scanner.Scan(absPath)
	if err != nil {
		report.Record(structuralFailure(err, absPath))
		report.Finalize()
		return report
	}
	report.SkillName = scan.DirName

	// 2. The skill document is a required read
	if !scan.HasSkillDoc {
		report.Record(domain.CheckResult{
			Name:    domain.CheckSkillFile,
			Passed:  false,
			Message: fmt.Sprintf("%s not found in %s", domain.SkillDocName, absPath),
		})
		report.Finalize()
		return report
	}
	if scan.SkillDocErr != nil {
		report.Record(domain.CheckResult{
			Name:    domain.CheckSkillFile,
			Passed:  false,
			Message: fmt.Sprintf("reading %s: %v", domain.SkillDocName, scan.SkillDocErr),
		})
		report.Finalize()
		return report
	}

	// 3. Resolve rule configuration; an unusable file degrades to defaults
	cfg, err := s.config.Load(absPath)
	if err != nil {
		log.WithError(err).Warn("ignoring rule config, using defaults")
		cfg = domain.DefaultRuleConfig()
	}

	// 4. Extract frontmatter; a failure replaces the field rules but not
	// the document rules
	fields, err := frontmatter.Extract(scan.SkillDoc)
	if err != nil {
		report.Record(domain.CheckResult{
			Name:    domain.CheckFrontmatter,
			Passed:  false,
			Message: err.Error(),
		})
	} else {
		report.RecordAll(rules.FieldChecks(fields, scan.DirName, cfg))
	}

	// 5. Document rules run whenever the document was read
	report.RecordAll(rules.DocumentChecks(scan.SkillDoc, scan.Files, scan.ListingErr, cfg))

	// 6. Verdict
	report.Finalize()
	log.WithField("valid", report.Valid).
		WithField("errors", report.ErrorCount()).
		WithField("warnings", report.WarningCount()).
		Debug("validation finished")

	return report
}

// structuralFailure maps a scanner error onto the directory check that
// becomes the run's single blocking error.
func structuralFailure(err error, path string) domain.CheckResult {
	msg := fmt.Sprintf("reading skill directory: %v", err)
	switch {
	case errors.Is(err, domain.ErrSkillDirNotFound):
		msg = "skill directory does not exist: " + path
	case errors.Is(err, domain.ErrNotADirectory):
		msg = "not a directory: " + path
	}
	return domain.CheckResult{Name: domain.CheckSkillDirectory, Passed: false, Message: msg}
}
