package packages

import "strings"

var catalog = []Package{
	{
		Key:   KeyBasic,
		Name:  "Basic",
		Price: 39,
	},
	{
		Key:   KeyPro,
		Name:  "Pro",
		Price: 89,
	},
	{
		Key:                 KeyFull,
		Name:                "Full edition",
		Price:               289,
		IncludesTshirt:      true,
		IncludesSlackAccess: true,
	},
	{
		Key:                 KeyTraining,
		Name:                "Training",
		Price:               749,
		IncludesTshirt:      true,
		IncludesSlackAccess: true,
	},
	{
		Key:     KeyTeam,
		Name:    "Team license",
		IsGroup: true,
		Price:   349,
	},
	{
		Key:                 KeyFullteam,
		Name:                "Full team license",
		IsGroup:             true,
		Price:               1000,
		IncludesTshirt:      true,
		IncludesSlackAccess: true,
	},
}

// All returns the catalog in display order.
func All() []Package {
	out := make([]Package, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks a package up by key, case-insensitively.
func Get(key string) (Package, bool) {
	name := strings.ToLower(strings.TrimSpace(key))
	for _, p := range catalog {
		if p.Key == name {
			return p, true
		}
	}
	return Package{}, false
}

// Flags is a boundary adapter for callers that select a package with a
// set of booleans instead of a key. The first set flag, in catalog
// order, wins.
type Flags struct {
	Basic    bool `json:"basic"`
	Pro      bool `json:"pro"`
	Full     bool `json:"full"`
	Training bool `json:"training"`
	Team     bool `json:"team"`
	Fullteam bool `json:"fullteam"`
}

// FromFlags resolves a Flags selection to the same records Get returns.
func FromFlags(f Flags) (Package, bool) {
	switch {
	case f.Basic:
		return Get(KeyBasic)
	case f.Pro:
		return Get(KeyPro)
	case f.Full:
		return Get(KeyFull)
	case f.Training:
		return Get(KeyTraining)
	case f.Team:
		return Get(KeyTeam)
	case f.Fullteam:
		return Get(KeyFullteam)
	}
	return Package{}, false
}
