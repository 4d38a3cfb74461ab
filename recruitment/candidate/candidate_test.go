package candidate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveUnarchive(t *testing.T) {
	c := Candidate{Status: CandidateStatusActive}

	require.NoError(t, c.Archive())
	assert.Equal(t, CandidateStatusArchived, c.Status)
	require.NotNil(t, c.ArchivedAt)
	assert.True(t, c.IsArchived())
	assert.False(t, c.IsActive())

	err := c.Archive()
	require.Error(t, err)

	require.NoError(t, c.Unarchive())
	assert.Equal(t, CandidateStatusActive, c.Status)
	assert.Nil(t, c.ArchivedAt)
	assert.True(t, c.IsActive())

	err = c.Unarchive()
	require.Error(t, err)
}

func TestActivateDeactivate(t *testing.T) {
	c := Candidate{Status: CandidateStatusActive}

	c.Deactivate()
	assert.Equal(t, CandidateStatusInactive, c.Status)
	assert.False(t, c.IsActive())

	c.Activate()
	assert.Equal(t, CandidateStatusActive, c.Status)
	assert.True(t, c.IsActive())
}

func TestRoleText(t *testing.T) {
	c := Candidate{CurrentRole: "Warehouse Manager", DesiredRole: "Operations Manager"}
	assert.Equal(t, "Warehouse Manager", c.RoleText())

	c.CurrentRole = "  "
	assert.Equal(t, "Operations Manager", c.RoleText())

	c.DesiredRole = ""
	assert.Equal(t, "", c.RoleText())
}

func TestAllSkills(t *testing.T) {
	c := Candidate{
		TechnicalSkills: []string{"tally", "gst"},
		SoftSkills:      []string{"communication"},
		Tags:            []string{"immediate joiner"},
	}

	assert.Equal(t, []string{"tally", "gst", "communication", "immediate joiner"}, c.AllSkills())

	empty := Candidate{}
	assert.Empty(t, empty.AllSkills())
}

func TestFreeTextCorpus(t *testing.T) {
	c := Candidate{
		CurrentRole:     "Store Manager",
		Summary:         "Managed daily store OPERATIONS",
		ResumeText:      "Handled vendor billing",
		KeyAchievements: []string{"Reduced shrinkage by 12%"},
		WorkHistory: []WorkHistoryEntry{
			{Role: "Assistant Manager", Company: "RetailCo", Description: "Supervised inventory audits"},
		},
		Projects: []string{"POS migration"},
	}

	corpus := c.FreeTextCorpus()

	assert.Equal(t, strings.ToLower(corpus), corpus)
	assert.Contains(t, corpus, "store manager")
	assert.Contains(t, corpus, "managed daily store operations")
	assert.Contains(t, corpus, "handled vendor billing")
	assert.Contains(t, corpus, "reduced shrinkage by 12%")
	assert.Contains(t, corpus, "assistant manager")
	assert.Contains(t, corpus, "supervised inventory audits")
	assert.Contains(t, corpus, "pos migration")
	assert.NotContains(t, corpus, "retailco")
}

func TestHasRoleEmbedding(t *testing.T) {
	c := Candidate{}
	assert.False(t, c.HasRoleEmbedding())

	c.RoleEmbedding = []float32{0.1, 0.2}
	assert.True(t, c.HasRoleEmbedding())
}
