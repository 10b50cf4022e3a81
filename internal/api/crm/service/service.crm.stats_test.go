// Package crmvc - Test tổng hợp thống kê lead và tương tác.
package crmvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crmmodels "meta_crm/internal/api/crm/models"
)

func TestBuildLeadStats_Empty(t *testing.T) {
	stats := BuildLeadStats(nil)
	require.NotNil(t, stats)
	assert.Equal(t, int64(0), stats.Total)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.ByRating)
	assert.Equal(t, float64(0), stats.TotalValue)
}

func TestBuildLeadStats_Aggregates(t *testing.T) {
	leads := []crmmodels.CrmLead{
		{Status: crmmodels.LeadStatusNew, Rating: crmmodels.LeadRatingWarm, EstimatedValue: 1000},
		{Status: crmmodels.LeadStatusNew, Rating: crmmodels.LeadRatingHot, EstimatedValue: 2500.5},
		{Status: crmmodels.LeadStatusWon, Rating: crmmodels.LeadRatingHot, EstimatedValue: 0},
	}

	stats := BuildLeadStats(leads)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus[crmmodels.LeadStatusNew])
	assert.Equal(t, int64(1), stats.ByStatus[crmmodels.LeadStatusWon])
	assert.Equal(t, int64(2), stats.ByRating[crmmodels.LeadRatingHot])
	assert.Equal(t, int64(1), stats.ByRating[crmmodels.LeadRatingWarm])
	assert.Equal(t, 3500.5, stats.TotalValue)
}

func TestBuildInteractionStats_ThisWeekWindow(t *testing.T) {
	now := int64(1_700_000_000_000)
	weekAgo := now - msPerWeek

	interactions := []crmmodels.CrmInteraction{
		{Type: crmmodels.InteractionTypeCall, DateTime: now},             // trong tuần (biên trên)
		{Type: crmmodels.InteractionTypeCall, DateTime: weekAgo},         // trong tuần (biên dưới)
		{Type: crmmodels.InteractionTypeEmail, DateTime: weekAgo - 1},    // ngoài tuần
		{Type: crmmodels.InteractionTypeMeeting, DateTime: now - 10_000}, // trong tuần
	}

	stats := BuildInteractionStats(interactions, now)

	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(3), stats.ThisWeek, "thisWeek là cửa sổ 7x24h đóng hai đầu tính ngược từ now")
}

func TestBuildInteractionStats_TypeCounters(t *testing.T) {
	interactions := []crmmodels.CrmInteraction{
		{Type: crmmodels.InteractionTypeCall},
		{Type: crmmodels.InteractionTypeCall},
		{Type: crmmodels.InteractionTypeMeeting},
		{Type: crmmodels.InteractionTypePageVisit},
		{Type: crmmodels.InteractionTypeSupport},
	}

	stats := BuildInteractionStats(interactions, int64(1_700_000_000_000))

	assert.Equal(t, int64(2), stats.Calls)
	assert.Equal(t, int64(1), stats.Meetings)
	assert.Equal(t, int64(1), stats.PageVisits)
	assert.Equal(t, int64(2), stats.ByType[crmmodels.InteractionTypeCall])
	assert.Equal(t, int64(1), stats.ByType[crmmodels.InteractionTypeSupport])
}

func TestBuildInteractionStats_ByOutcomeOnlyWhenPresent(t *testing.T) {
	interactions := []crmmodels.CrmInteraction{
		{Type: crmmodels.InteractionTypeCall, Outcome: crmmodels.InteractionOutcomePositive},
		{Type: crmmodels.InteractionTypeCall, Outcome: ""},
		{Type: crmmodels.InteractionTypeEmail, Outcome: crmmodels.InteractionOutcomeNegative},
	}

	stats := BuildInteractionStats(interactions, int64(1_700_000_000_000))

	assert.Equal(t, int64(1), stats.ByOutcome[crmmodels.InteractionOutcomePositive])
	assert.Equal(t, int64(1), stats.ByOutcome[crmmodels.InteractionOutcomeNegative])
	_, hasEmpty := stats.ByOutcome[""]
	assert.False(t, hasEmpty, "tương tác không có outcome không được xuất hiện trong byOutcome")
}
