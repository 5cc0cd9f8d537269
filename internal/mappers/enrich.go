package mappers

import "catalog-export/internal/domain"

// AttachProviders resolves each course's partner ids against partners and
// returns new records carrying the matching partner names. Names keep the
// order of partners, not of the course partner ids. Inputs are not modified.
func AttachProviders(partners []domain.Partner, courses []domain.Course) []domain.EnrichedCourse {
	out := make([]domain.EnrichedCourse, 0, len(courses))
	for _, c := range courses {
		providers := make([]string, 0, len(c.PartnerIDs))
		for _, p := range partners {
			if c.HasPartner(p.ID) {
				providers = append(providers, p.Name)
			}
		}
		out = append(out, domain.EnrichedCourse{
			Course:    c.Clone(),
			Providers: providers,
		})
	}
	return out
}

// TagSubdomain returns copies of records with Subdomain set to the subdomain
// display name.
func TagSubdomain(sub domain.Subdomain, records []domain.EnrichedCourse) []domain.EnrichedCourse {
	out := make([]domain.EnrichedCourse, 0, len(records))
	for _, r := range records {
		cp := r.Clone()
		cp.Subdomain = sub.Name
		out = append(out, cp)
	}
	return out
}

// EnrichCourses runs both enrichment steps for one subdomain response.
func EnrichCourses(sub domain.Subdomain, partners []domain.Partner, courses []domain.Course) []domain.EnrichedCourse {
	return TagSubdomain(sub, AttachProviders(partners, courses))
}
