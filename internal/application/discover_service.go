package application

import (
	"context"
	"fmt"

	"github.com/skillcheck/skillcheck/internal/domain"
	"github.com/skillcheck/skillcheck/internal/logger"
)

// DiscoverService finds skill directories under a root and validates each
// one, powering the list command and the MCP listing surface.
type DiscoverService struct {
	finder   domain.SkillFinder
	validate *ValidateService
}

func NewDiscoverService(finder domain.SkillFinder, validate *ValidateService) *DiscoverService {
	return &DiscoverService{
		finder:   finder,
		validate: validate,
	}
}

// FindSkills returns the skill directories beneath root in discovery order.
func (s *DiscoverService) FindSkills(root string) ([]string, error) {
	dirs, err := s.finder.FindSkills(root)
	if err != nil {
		return nil, fmt.Errorf("discovering skills: %w", err)
	}
	return dirs, nil
}

// ValidateAll validates every skill found under root. The returned reports
// follow discovery order; a skill that fails validation contributes an
// invalid report rather than an error.
func (s *DiscoverService) ValidateAll(ctx context.Context, root string) ([]*domain.Report, error) {
	dirs, err := s.FindSkills(root)
	if err != nil {
		return nil, err
	}
	logger.G(ctx).WithField("root", root).WithField("count", len(dirs)).Debug("skills discovered")

	reports := make([]*domain.Report, 0, len(dirs))
	for _, dir := range dirs {
		reports = append(reports, s.validate.Validate(ctx, dir))
	}
	return reports, nil
}
