package graph

import (
	"testing"

	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(config.DefaultThresholds())
}

func TestResolve_SameFirmNeverLinked(t *testing.T) {
	r := newTestResolver()

	// Acme Inc and Acme LLC normalize to the same entity; a shared phone
	// between them is a firm calling itself, not fraud
	records := []corpusModel.AwardRecord{
		{Firm: "Acme Inc", POCPhone: "555-3333"},
		{Firm: "Acme LLC", POCPhone: "555-3333"},
	}

	groups := r.Resolve(records)
	assert.Empty(t, groups)
}

func TestResolve_SharedPhone(t *testing.T) {
	r := newTestResolver()

	records := []corpusModel.AwardRecord{
		{Firm: "Acme Inc", POCPhone: "555-3333", AwardAmount: "$150,000.00"},
		{Firm: "Zenith Corp", PIPhone: "555-3333", AwardAmount: "99999.50"},
		{Firm: "Unrelated Co", POCPhone: "555-0000"},
	}

	groups := r.Resolve(records)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, []int{0, 1}, g.Members)
	assert.Equal(t, []string{"acme", "zenith"}, g.Firms)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, 0, g.Edges[0].I)
	assert.Equal(t, 1, g.Edges[0].J)
	assert.Equal(t, []string{"shared_phone:555-3333"}, g.Edges[0].Reasons)
	assert.Equal(t, []string{"555-3333"}, g.RedFlagPhones)
	assert.InDelta(t, 249999.50, g.TotalAmount, 0.001)
}

func TestResolve_SharedURLAndTransitiveComponent(t *testing.T) {
	r := newTestResolver()

	// 0-1 share a URL, 1-2 share a phone: one component of three firms
	records := []corpusModel.AwardRecord{
		{Firm: "First Firm", CompanyURL: "http://shared.example.com"},
		{Firm: "Second Firm", CompanyURL: "http://shared.example.com", POCPhone: "555-7777"},
		{Firm: "Third Firm", PIPhone: "555-7777"},
	}

	groups := r.Resolve(records)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, []int{0, 1, 2}, g.Members)
	assert.Len(t, g.Firms, 3)
	assert.Equal(t, []string{"http://shared.example.com"}, g.RedFlagURLs)
	assert.Equal(t, []string{"555-7777"}, g.RedFlagPhones)
}

func TestResolve_SimilarAddress(t *testing.T) {
	r := newTestResolver()

	records := []corpusModel.AwardRecord{
		{Firm: "Alpha Research Inc", Address1: "123 Main Street Suite 100"},
		{Firm: "Beta Labs LLC", Address1: "123 Main Street Suite 400"},
		{Firm: "Gamma Co", Address1: "987 Elsewhere Blvd"},
	}

	groups := r.Resolve(records)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, []int{0, 1}, g.Members)
	require.Len(t, g.Edges, 1)
	assert.Contains(t, g.Edges[0].Reasons[0], "similar_address:")
}

func TestResolve_DifferentStreetNumbersNotLinked(t *testing.T) {
	r := newTestResolver()

	records := []corpusModel.AwardRecord{
		{Firm: "Alpha Inc", Address1: "123 Main Street"},
		{Firm: "Beta Inc", Address1: "456 Main Street"},
	}

	assert.Empty(t, r.Resolve(records))
}

func TestResolve_SingleRecordComponentDropped(t *testing.T) {
	r := newTestResolver()

	records := []corpusModel.AwardRecord{
		{Firm: "Lonely Systems", POCPhone: "555-1111"},
	}

	assert.Empty(t, r.Resolve(records))
}

func TestResolve_MultipleReasonsOnOneEdge(t *testing.T) {
	r := newTestResolver()

	records := []corpusModel.AwardRecord{
		{Firm: "Acme Inc", CompanyURL: "http://acme.example.com", POCPhone: "555-2222"},
		{Firm: "Shadow Corp", CompanyURL: "http://acme.example.com", PIPhone: "555-2222"},
	}

	groups := r.Resolve(records)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Edges, 1)

	reasons := groups[0].Edges[0].Reasons
	assert.Equal(t, []string{
		"shared_phone:555-2222",
		"shared_url:http://acme.example.com",
	}, reasons)
}

func TestResolve_Deterministic(t *testing.T) {
	r := newTestResolver()

	records := []corpusModel.AwardRecord{
		{Firm: "A One", POCPhone: "555-1000"},
		{Firm: "B Two", POCPhone: "555-1000"},
		{Firm: "C Three", CompanyURL: "http://x.example.com"},
		{Firm: "D Four", CompanyURL: "http://x.example.com"},
	}

	first := r.Resolve(records)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, r.Resolve(records))
	}
	require.Len(t, first, 2)
	assert.Equal(t, []int{0, 1}, first[0].Members)
	assert.Equal(t, []int{2, 3}, first[1].Members)
}
