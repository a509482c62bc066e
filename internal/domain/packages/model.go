package packages

import "fmt"

// BaseLicenses is the seat count group prices are quoted for.
const BaseLicenses = 5

// Individual-edition keys (single source of truth)
const (
	KeyBasic    = "basic"
	KeyPro      = "pro"
	KeyFull     = "full"
	KeyTraining = "training"
	KeyTeam     = "team"
	KeyFullteam = "fullteam"
)

type Package struct {
	Key                 string
	Name                string
	Price               float64
	IsGroup             bool
	IncludesTshirt      bool
	IncludesSlackAccess bool
}

// FullPrice returns the price for the given seat count. Non-group
// packages ignore licenses; group prices scale linearly against
// BaseLicenses.
func (p Package) FullPrice(licenses int) float64 {
	if p.IsGroup && licenses > 0 {
		return p.Price * (float64(licenses) / float64(BaseLicenses))
	}
	return p.Price
}

// FullName returns the display name, with the seat count appended for
// group packages.
func (p Package) FullName(licenses int) string {
	if p.IsGroup && licenses > 0 {
		return fmt.Sprintf("%s—%d seats", p.Name, licenses)
	}
	return p.Name
}

// Individual maps any package onto the individual edition it grants a
// reader: team seats read the Pro content, fullteam and training seats
// read everything.
func (p Package) Individual() string {
	switch p.Key {
	case KeyBasic:
		return KeyBasic
	case KeyPro, KeyTeam:
		return KeyPro
	default:
		return KeyFull
	}
}
