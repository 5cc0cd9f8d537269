package coursera

import (
	"context"
	"log"

	"catalog-export/internal/domain"
	"catalog-export/internal/mappers"
)

// Provider adapts the Coursera client into the providers.CourseImporter
// interface. Subdomains are processed one at a time, in discovery order, and
// the first failure aborts the import.
type Provider struct {
	C *Client

	// Logf receives progress lines; nil means log.Printf.
	Logf func(format string, args ...any)
}

func (p Provider) Name() string { return "coursera" }

func (p Provider) ImportCourses(ctx context.Context) ([]domain.EnrichedCourse, error) {
	logf := p.Logf
	if logf == nil {
		logf = log.Printf
	}

	subdomains, err := p.C.ListSubdomains(ctx)
	if err != nil {
		return nil, err
	}
	logf("coursera: discovered %d subdomains", len(subdomains))

	var all []domain.EnrichedCourse
	for i, sub := range subdomains {
		logf("coursera: importing subdomain %d/%d %q (%s)", i+1, len(subdomains), sub.Name, sub.ID)

		records, err := p.ImportSubdomain(ctx, sub)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}

	logf("coursera: imported %d courses from %d subdomains", len(all), len(subdomains))
	return all, nil
}

// ImportSubdomain fetches one subdomain and returns its enriched records.
func (p Provider) ImportSubdomain(ctx context.Context, sub domain.Subdomain) ([]domain.EnrichedCourse, error) {
	res, err := p.C.ListSubdomainCourses(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	return mappers.EnrichCourses(sub, toDomainPartners(res.Partners), toDomainCourses(res.Courses)), nil
}

func toDomainCourses(in []Course) []domain.Course {
	out := make([]domain.Course, 0, len(in))
	for _, c := range in {
		ids := make([]string, 0, len(c.PartnerIDs))
		for _, id := range c.PartnerIDs {
			ids = append(ids, string(id))
		}
		out = append(out, domain.Course{
			ID:           string(c.ID),
			Name:         c.Name,
			Description:  c.Description,
			PhotoURL:     c.PhotoURL,
			CourseStatus: c.CourseStatus,
			CourseType:   c.CourseType,
			PartnerIDs:   ids,
		})
	}
	return out
}

func toDomainPartners(in []Partner) []domain.Partner {
	out := make([]domain.Partner, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Partner{ID: string(p.ID), Name: p.Name})
	}
	return out
}
