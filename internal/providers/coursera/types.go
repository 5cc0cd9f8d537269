package coursera

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID holds catalog identifiers, which the API sends either as strings
// ("1234") or as bare numbers (1234) depending on the resource.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("coursera: id must be string or number, got %s", string(b))
	}
	*id = ID(n.String())
	return nil
}

/* -------- Discovery response -------- */

type FacetEntry struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// subdomainsResponse mirrors paging.facets.subdomains.facetEntries. Pointers
// and nil slices mark keys that were absent from the body.
type subdomainsResponse struct {
	Paging *struct {
		Facets *struct {
			Subdomains *struct {
				FacetEntries []FacetEntry `json:"facetEntries"`
			} `json:"subdomains"`
		} `json:"facets"`
	} `json:"paging"`
}

/* -------- Course response -------- */

type Course struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PhotoURL     string `json:"photoUrl"`
	CourseStatus string `json:"courseStatus"`
	CourseType   string `json:"courseType"`
	PartnerIDs   []ID   `json:"partnerIds"`
}

type Partner struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type coursesResponse struct {
	Linked *struct {
		Courses  []Course  `json:"courses.v1"`
		Partners []Partner `json:"partners.v1"`
	} `json:"linked"`
}

// SubdomainCourses is one subdomain query result: the courses and the
// partners linked from them, in response order.
type SubdomainCourses struct {
	Courses  []Course
	Partners []Partner
}
