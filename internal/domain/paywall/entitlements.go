package paywall

import "guide-app/internal/domain/users"

// Entitlements lists the paid categories the user's purchase unlocks,
// in ascending order. Free content is implied and not listed.
func Entitlements(u *users.User) []Category {
	r := purchasedRank(u.PurchasedKey())
	if r == 0 {
		return []Category{}
	}

	out := []Category{CategoryBasic}
	if r >= rank(CategoryPro) {
		out = append(out, CategoryPro)
	}
	if r >= rank(CategoryFull) {
		out = append(out, CategoryFull)
	}
	return out
}
