package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCriteria(t *testing.T) {
	var nilReq *Requirement
	assert.False(t, nilReq.HasCriteria())
	assert.False(t, (&Requirement{}).HasCriteria())

	blank := "   "
	assert.False(t, (&Requirement{Role: &blank}).HasCriteria())

	role := "accountant"
	assert.True(t, (&Requirement{Role: &role}).HasCriteria())

	min := 3.0
	assert.True(t, (&Requirement{Experience: &ExperienceRange{Min: &min}}).HasCriteria())
	assert.False(t, (&Requirement{Experience: &ExperienceRange{}}).HasCriteria())

	loc := "pune"
	assert.True(t, (&Requirement{Location: &loc}).HasCriteria())
	assert.True(t, (&Requirement{Skills: []string{"tally"}}).HasCriteria())
	assert.True(t, (&Requirement{Certifications: []string{"ca"}}).HasCriteria())

	edu := "bachelor"
	assert.True(t, (&Requirement{Education: &edu}).HasCriteria())
	assert.True(t, (&Requirement{ImpliedResponsibilities: []string{"manage stock"}}).HasCriteria())

	// Advisory constraints alone are not scorable.
	assert.False(t, (&Requirement{SpecificRequirements: []string{"salary under 6 lpa"}}).HasCriteria())
}

func TestNormalize(t *testing.T) {
	role := "  Fleet Manager "
	loc := "DELHI"
	blankEdu := "  "
	req := &Requirement{
		Role:      &role,
		Location:  &loc,
		Education: &blankEdu,
		Skills:    []string{" Tally ", "", "GST"},
	}

	req.Normalize()

	assert.Equal(t, "fleet manager", *req.Role)
	assert.Equal(t, "delhi", *req.Location)
	assert.Nil(t, req.Education)
	assert.Equal(t, []string{"tally", "gst"}, req.Skills)

	empty := &Requirement{Skills: []string{"  ", ""}}
	empty.Normalize()
	assert.Nil(t, empty.Skills)

	var nilReq *Requirement
	nilReq.Normalize() // must not panic
}
