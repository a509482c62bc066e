package paywall

import "guide-app/internal/domain/packages"

// Category is the access level a content path requires.
type Category string

const (
	CategoryFree  Category = "free"
	CategoryBasic Category = "basic"
	CategoryPro   Category = "pro"
	CategoryFull  Category = "full"
)

func rank(c Category) int {
	switch c {
	case CategoryBasic:
		return 1
	case CategoryPro:
		return 2
	case CategoryFull:
		return 3
	default:
		return 0
	}
}

// purchasedRank maps a purchased package key to the highest category it
// unlocks: basic < pro/team < full/fullteam/training.
func purchasedRank(key string) int {
	pkg, ok := packages.Get(key)
	if !ok {
		return 0
	}
	switch pkg.Individual() {
	case packages.KeyBasic:
		return rank(CategoryBasic)
	case packages.KeyPro:
		return rank(CategoryPro)
	default:
		return rank(CategoryFull)
	}
}
