// Package grouping derives categorised views from loaded EDGAR records:
// fixed form-group bucketing for the filing list and year/form-type
// filtering for the extension breakdown.
package grouping

import (
	"regexp"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/edgarviz/internal/types"
)

// Form group names, in display order.
const (
	GroupOwnership         = "Ownership Forms"
	Group8K                = "8-K Reports"
	Group10Series          = "10-Series Forms"
	GroupProxy             = "Proxy Materials"
	GroupRegistration      = "Registration Forms"
	GroupInvestmentCompany = "Investment Company Forms"
	GroupOther             = "Other Forms"
)

// Rule pairs a predicate over the form type with the group it assigns.
type Rule struct {
	Group string
	Match func(formType string) bool
}

var (
	ownershipPattern  = regexp.MustCompile(`^[345]`)
	investmentPattern = regexp.MustCompile(`^(485|497|N-|24F)`)
)

// Rules is the ordered classification table. The first matching rule wins,
// so a form matching several patterns lands in the earliest group; the
// order is significant and must not change.
var Rules = []Rule{
	{Group: GroupOwnership, Match: ownershipPattern.MatchString},
	{Group: Group8K, Match: func(s string) bool { return strings.HasPrefix(s, "8-K") }},
	{Group: Group10Series, Match: func(s string) bool { return strings.HasPrefix(s, "10-") }},
	{Group: GroupProxy, Match: func(s string) bool {
		return strings.Contains(s, "DEF") || strings.Contains(s, "PRE") || strings.Contains(s, "PREC")
	}},
	{Group: GroupRegistration, Match: func(s string) bool {
		return strings.HasPrefix(s, "S-") || strings.HasPrefix(s, "F-")
	}},
	{Group: GroupInvestmentCompany, Match: investmentPattern.MatchString},
}

// GroupNames lists every group, catch-all last.
func GroupNames() []string {
	names := make([]string, 0, len(Rules)+1)
	for _, r := range Rules {
		names = append(names, r.Group)
	}
	return append(names, GroupOther)
}

// Classify returns the single group for formType.
func Classify(formType string) string {
	for _, r := range Rules {
		if r.Match(formType) {
			return r.Group
		}
	}
	return GroupOther
}

// Groups maps group name to member records, in fixed group order.
type Groups = *orderedmap.OrderedMap[string, []types.FilingRecord]

// GroupFilings partitions records into the fixed groups. Every group is
// present, possibly empty, and members keep their input order.
func GroupFilings(records []types.FilingRecord) Groups {
	groups := orderedmap.NewOrderedMap[string, []types.FilingRecord]()
	for _, name := range GroupNames() {
		groups.Set(name, []types.FilingRecord{})
	}

	for _, rec := range records {
		name := Classify(rec.FormType)
		members, _ := groups.Get(name)
		groups.Set(name, append(members, rec))
	}

	return groups
}

// GroupSize pairs a group name with its member count.
type GroupSize struct {
	Name  string
	Count int
}

// Sizes returns the member count of each group in display order.
func Sizes(groups Groups) []GroupSize {
	if groups == nil {
		return nil
	}
	sizes := make([]GroupSize, 0, groups.Len())
	for el := groups.Front(); el != nil; el = el.Next() {
		sizes = append(sizes, GroupSize{Name: el.Key, Count: len(el.Value)})
	}
	return sizes
}

// IsGroup reports whether name is one of the fixed group names.
func IsGroup(name string) bool {
	for _, g := range GroupNames() {
		if g == name {
			return true
		}
	}
	return false
}
