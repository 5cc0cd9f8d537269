package domain

// Subdomain is a catalog category discovered from the facet listing.
type Subdomain struct {
	ID   string
	Name string
}

// Course is a catalog course as returned by the provider, before enrichment.
type Course struct {
	ID           string
	Name         string
	Description  string
	PhotoURL     string
	CourseStatus string // "Launched", "Preenroll", etc.
	CourseType   string // optional, e.g. "v2.ondemand"
	PartnerIDs   []string
}

// Partner is an organization offering courses. Partners are only meaningful
// inside the response they came from.
type Partner struct {
	ID   string
	Name string
}

// EnrichedCourse is the flattened record exported to CSV: the course plus the
// resolved provider names and the name of the subdomain it was fetched under.
type EnrichedCourse struct {
	Course

	Providers []string
	Subdomain string
}

// Clone returns a copy that shares no slices with c.
func (c Course) Clone() Course {
	out := c
	if c.PartnerIDs != nil {
		out.PartnerIDs = append([]string(nil), c.PartnerIDs...)
	}
	return out
}

// HasPartner reports whether id is listed in the course partner ids.
func (c Course) HasPartner(id string) bool {
	for _, p := range c.PartnerIDs {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with e.
func (e EnrichedCourse) Clone() EnrichedCourse {
	out := e
	out.Course = e.Course.Clone()
	if e.Providers != nil {
		out.Providers = append([]string(nil), e.Providers...)
	}
	return out
}
