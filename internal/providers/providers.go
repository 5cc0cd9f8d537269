package providers

import (
	"context"

	"catalog-export/internal/domain"
)

// CourseImporter produces the full ordered set of enriched course records
// from a catalog source.
type CourseImporter interface {
	Name() string
	ImportCourses(ctx context.Context) ([]domain.EnrichedCourse, error)
}
