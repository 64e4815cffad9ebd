// Package graph resolves duplicate firm entities: records that share
// infrastructure (URL, phone, a near-identical address) while filing under
// different firm names. The output is the set of connected components
// spanning at least two distinct normalized firm identities, each edge tagged
// with the shared value that justifies it.
package graph

import (
	"fmt"
	"sort"

	"github.com/akolanti/DupFinder/internal/analysis/similarity"
	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

type Resolver struct {
	cfg    config.Thresholds
	logger *logger_i.Logger
}

func NewResolver(cfg config.Thresholds) *Resolver {
	return &Resolver{
		cfg:    cfg,
		logger: logger_i.NewLogger("GraphResolver"),
	}
}

type pairKey struct {
	i int
	j int
}

func orderedPair(a, b int) pairKey {
	if a < b {
		return pairKey{i: a, j: b}
	}
	return pairKey{i: b, j: a}
}

// Resolve builds the shared-attribute graph over records and returns its
// qualifying connected components in a canonical order. Two records whose
// normalized firm names are equal are never linked: a firm filing twice is
// one entity, not a duplicate pair. Output is deterministic for identical
// input.
func (r *Resolver) Resolve(records []corpusModel.AwardRecord) []corpusModel.DuplicateGroup {
	n := len(records)
	firms := make([]string, n)
	for i, rec := range records {
		firms[i] = similarity.NormalizeFirmName(rec.Firm)
	}

	adjacency := make([]map[int]struct{}, n)
	for i := range adjacency {
		adjacency[i] = make(map[int]struct{})
	}
	edgeReasons := make(map[pairKey]map[string]struct{})

	addEdge := func(i, j int, reason string) {
		if firms[i] == firms[j] {
			return
		}
		adjacency[i][j] = struct{}{}
		adjacency[j][i] = struct{}{}
		key := orderedPair(i, j)
		if edgeReasons[key] == nil {
			edgeReasons[key] = make(map[string]struct{})
		}
		edgeReasons[key][reason] = struct{}{}
	}

	r.linkByURL(records, addEdge)
	r.linkByPhone(records, addEdge)
	r.linkByAddress(records, addEdge)

	groups := r.collectComponents(records, firms, adjacency, edgeReasons)
	r.logger.Info("Entity resolution complete", "records", n, "edges", len(edgeReasons), "groups", len(groups))
	return groups
}

func (r *Resolver) linkByURL(records []corpusModel.AwardRecord, addEdge func(i, j int, reason string)) {
	urlIndex := make(map[string][]int)
	for i, rec := range records {
		if rec.CompanyURL != "" {
			urlIndex[rec.CompanyURL] = append(urlIndex[rec.CompanyURL], i)
		}
	}
	for url, indices := range urlIndex {
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				addEdge(indices[a], indices[b], fmt.Sprintf("shared_url:%s", url))
			}
		}
	}
}

func (r *Resolver) linkByPhone(records []corpusModel.AwardRecord, addEdge func(i, j int, reason string)) {
	phoneIndex := make(map[string][]int)
	for i, rec := range records {
		for _, phone := range []string{rec.POCPhone, rec.PIPhone} {
			if phone != "" {
				phoneIndex[phone] = append(phoneIndex[phone], i)
			}
		}
	}
	for phone, indices := range phoneIndex {
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				if indices[a] == indices[b] {
					continue //same record listed the number in both phone fields
				}
				addEdge(indices[a], indices[b], fmt.Sprintf("shared_phone:%s", phone))
			}
		}
	}
}

// linkByAddress is the O(N^2) pass; the numeric street-number veto inside
// SimilarAddress rejects most candidates before any edit-distance work.
func (r *Resolver) linkByAddress(records []corpusModel.AwardRecord, addEdge func(i, j int, reason string)) {
	for i := 0; i < len(records); i++ {
		addrI := records[i].Address1
		if addrI == "" {
			continue
		}
		for j := i + 1; j < len(records); j++ {
			addrJ := records[j].Address1
			if addrJ == "" {
				continue
			}
			if similarity.SimilarAddress(addrI, addrJ, r.cfg.AddressSimilarity) {
				addEdge(i, j, fmt.Sprintf("similar_address:%s|%s", addrI, addrJ))
			}
		}
	}
}

// collectComponents walks the graph with an explicit stack (recursion depth
// is unbounded on large corpora), drops components below 2 records or 2
// distinct firms, and sorts everything into a canonical order.
func (r *Resolver) collectComponents(records []corpusModel.AwardRecord, firms []string,
	adjacency []map[int]struct{}, edgeReasons map[pairKey]map[string]struct{}) []corpusModel.DuplicateGroup {

	n := len(records)
	seen := make([]bool, n)
	var groups []corpusModel.DuplicateGroup

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		var members []int
		stack := []int{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[cur] {
				continue
			}
			seen[cur] = true
			members = append(members, cur)
			for neighbor := range adjacency[cur] {
				if !seen[neighbor] {
					stack = append(stack, neighbor)
				}
			}
		}

		if len(members) < 2 {
			continue
		}
		distinctFirms := make(map[string]struct{})
		for _, idx := range members {
			distinctFirms[firms[idx]] = struct{}{}
		}
		if len(distinctFirms) < 2 {
			continue
		}
		groups = append(groups, r.buildGroup(records, firms, members, distinctFirms, edgeReasons))
	}

	sort.Slice(groups, func(a, b int) bool {
		return lessIntSlices(groups[a].Members, groups[b].Members)
	})
	return groups
}

func (r *Resolver) buildGroup(records []corpusModel.AwardRecord, firms []string, members []int,
	distinctFirms map[string]struct{}, edgeReasons map[pairKey]map[string]struct{}) corpusModel.DuplicateGroup {

	sort.Ints(members)

	firmList := make([]string, 0, len(distinctFirms))
	for f := range distinctFirms {
		firmList = append(firmList, f)
	}
	sort.Strings(firmList)

	inGroup := make(map[int]struct{}, len(members))
	for _, m := range members {
		inGroup[m] = struct{}{}
	}

	var edges []corpusModel.EdgeReason
	for key, reasons := range edgeReasons {
		if _, ok := inGroup[key.i]; !ok {
			continue
		}
		if _, ok := inGroup[key.j]; !ok {
			continue
		}
		reasonList := make([]string, 0, len(reasons))
		for reason := range reasons {
			reasonList = append(reasonList, reason)
		}
		sort.Strings(reasonList)
		edges = append(edges, corpusModel.EdgeReason{I: key.i, J: key.j, Reasons: reasonList})
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].I != edges[b].I {
			return edges[a].I < edges[b].I
		}
		return edges[a].J < edges[b].J
	})

	group := corpusModel.DuplicateGroup{
		Members: members,
		Firms:   firmList,
		Edges:   edges,
	}
	group.RedFlagURLs, group.RedFlagPhones = r.redFlagAttributes(records, firms, members)
	for _, idx := range members {
		group.TotalAmount += records[idx].AmountValue()
	}
	return group
}

// redFlagAttributes finds the exact URLs and phones shared by more than one
// distinct firm inside the component; these are the evidentiary values
// reporting highlights against the incidental unique ones.
func (r *Resolver) redFlagAttributes(records []corpusModel.AwardRecord, firms []string, members []int) (urls, phones []string) {
	urlFirms := make(map[string]map[string]struct{})
	phoneFirms := make(map[string]map[string]struct{})

	for _, idx := range members {
		rec := records[idx]
		if rec.CompanyURL != "" {
			if urlFirms[rec.CompanyURL] == nil {
				urlFirms[rec.CompanyURL] = make(map[string]struct{})
			}
			urlFirms[rec.CompanyURL][firms[idx]] = struct{}{}
		}
		for _, phone := range []string{rec.POCPhone, rec.PIPhone} {
			if phone == "" {
				continue
			}
			if phoneFirms[phone] == nil {
				phoneFirms[phone] = make(map[string]struct{})
			}
			phoneFirms[phone][firms[idx]] = struct{}{}
		}
	}

	for url, owners := range urlFirms {
		if len(owners) > 1 {
			urls = append(urls, url)
		}
	}
	for phone, owners := range phoneFirms {
		if len(owners) > 1 {
			phones = append(phones, phone)
		}
	}
	sort.Strings(urls)
	sort.Strings(phones)
	return urls, phones
}

func lessIntSlices(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
