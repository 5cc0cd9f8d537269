package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseHasPartner(t *testing.T) {
	c := Course{ID: "c1", PartnerIDs: []string{"p1", "p2"}}

	assert.True(t, c.HasPartner("p1"))
	assert.True(t, c.HasPartner("p2"))
	assert.False(t, c.HasPartner("p3"))
	assert.False(t, Course{}.HasPartner("p1"))
}

func TestCourseCloneDoesNotAlias(t *testing.T) {
	orig := Course{ID: "c1", PartnerIDs: []string{"p1"}}
	cp := orig.Clone()
	cp.PartnerIDs[0] = "changed"

	assert.Equal(t, "p1", orig.PartnerIDs[0])
	assert.Nil(t, Course{}.Clone().PartnerIDs)
}

func TestEnrichedCourseClone(t *testing.T) {
	orig := EnrichedCourse{
		Course:    Course{ID: "c1", PartnerIDs: []string{"p1"}},
		Providers: []string{"Acme U"},
		Subdomain: "Data Science",
	}
	cp := orig.Clone()
	cp.Providers[0] = "Other"
	cp.PartnerIDs[0] = "p9"

	assert.Equal(t, []string{"Acme U"}, orig.Providers)
	assert.Equal(t, []string{"p1"}, orig.PartnerIDs)
	assert.Equal(t, "Data Science", cp.Subdomain)
}
