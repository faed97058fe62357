package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbti-travel-planner/internal/pkg/geo"
)

func TestSameDistrict(t *testing.T) {
	assert.True(t, geo.SameDistrict("Central", "central"))
	assert.True(t, geo.SameDistrict("Central District", " central "))
	assert.False(t, geo.SameDistrict("Central", "Mong Kok"))
	assert.False(t, geo.SameDistrict("", ""))
}

func TestRelatedDistricts(t *testing.T) {
	assert.True(t, geo.RelatedDistricts("Central", "Admiralty"))
	assert.True(t, geo.RelatedDistricts("Admiralty", "Central"), "table is symmetric")
	assert.False(t, geo.RelatedDistricts("Central", "Central"), "same district is not related")
	assert.False(t, geo.RelatedDistricts("Central", "Mong Kok"))
}

func TestDistrictInArea(t *testing.T) {
	assert.True(t, geo.DistrictInArea("Central", "Hong Kong Island"))
	assert.True(t, geo.DistrictInArea("Mong Kok", "Kowloon"))
	assert.False(t, geo.DistrictInArea("Central", "Kowloon"))
	assert.False(t, geo.DistrictInArea("Atlantis", "Hong Kong Island"))
}

func TestMatchesAnyDistrict(t *testing.T) {
	targets := []string{"Central", "Mong Kok"}
	assert.True(t, geo.MatchesAnyDistrict("central", targets))
	assert.False(t, geo.MatchesAnyDistrict("Sha Tin", targets))
	assert.False(t, geo.MatchesAnyDistrict("Central", nil))
}

func TestMatchesAnyArea(t *testing.T) {
	targets := []string{"Hong Kong Island"}

	// Exact area match
	assert.True(t, geo.MatchesAnyArea("Somewhere", "Hong Kong Island", targets))
	// District membership in the target area
	assert.True(t, geo.MatchesAnyArea("Wan Chai", "", targets))
	assert.False(t, geo.MatchesAnyArea("Mong Kok", "Kowloon", targets))
	assert.False(t, geo.MatchesAnyArea("Central", "", nil))
}

func TestPriority(t *testing.T) {
	districts := []string{"Central", "Wan Chai"}
	areas := []string{"Hong Kong Island"}

	assert.Equal(t, geo.PriorityFirstTargetDistrict, geo.Priority("Central", "", districts, areas))
	assert.Equal(t, geo.PriorityLaterTargetDistrict, geo.Priority("Wan Chai", "", districts, areas))
	assert.Equal(t, geo.PriorityRelatedDistrict, geo.Priority("Admiralty", "", districts, areas))
	assert.Equal(t, geo.PrioritySameArea, geo.Priority("Atlantis", "Hong Kong Island", districts, areas))
	assert.Equal(t, geo.PriorityAreaRelated, geo.Priority("Stanley", "", districts, areas))
	assert.Equal(t, geo.PriorityNone, geo.Priority("Mong Kok", "Kowloon", districts, areas))
}

func TestCoherence(t *testing.T) {
	t.Run("single place is fully coherent", func(t *testing.T) {
		assert.Equal(t, 1.0, geo.Coherence([]geo.Place{{District: "Central"}}))
		assert.Equal(t, 1.0, geo.Coherence(nil))
	})

	t.Run("all in dominant district", func(t *testing.T) {
		places := []geo.Place{
			{District: "Central", Area: "Hong Kong Island"},
			{District: "central", Area: "Hong Kong Island"},
		}
		assert.Equal(t, 1.0, geo.Coherence(places))
	})

	t.Run("same area counts half", func(t *testing.T) {
		places := []geo.Place{
			{District: "Central", Area: "Hong Kong Island"},
			{District: "Central", Area: "Hong Kong Island"},
			{District: "Stanley", Area: "Hong Kong Island"},
			{District: "Mong Kok", Area: "Kowloon"},
		}
		// 1 + 1 + 0.5 + 0 over 4 places
		assert.InDelta(t, 0.625, geo.Coherence(places), 1e-9)
	})

	t.Run("related district counts half", func(t *testing.T) {
		places := []geo.Place{
			{District: "Central"},
			{District: "Central"},
			{District: "Admiralty"},
		}
		assert.InDelta(t, 2.5/3.0, geo.Coherence(places), 1e-9)
	})

	t.Run("no districts at all", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.Coherence([]geo.Place{{}, {}}))
	})
}
