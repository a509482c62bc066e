package paywall

import (
	"guide-app/internal/domain/users"
)

// Decision is the visibility verdict for one page render. It is pure
// data: rendering the gated shell, the paywall message, and the
// sign-in prompt are all the caller's concern.
type Decision struct {
	Visible      bool
	Category     Category
	CTAMessage   string
	PromptSignIn bool
}

// HeaderOnly reports whether this render pass should fall back to the
// header shell. It is the exact complement of Visible, so for any
// decision exactly one of the two views renders.
func (d Decision) HeaderOnly() bool {
	return !d.Visible
}

func ctaFor(c Category) string {
	switch c {
	case CategoryBasic:
		return "buy the book"
	case CategoryPro:
		return "get the Pro package"
	case CategoryFull:
		return "get the Full package"
	}
	return ""
}

// Decide classifies pathname and checks the user's purchase against
// it. A nil user means not signed in. The function is side-effect-free
// and total: unrecognized paths are free and visible.
func Decide(pathname string, user *users.User) Decision {
	category := Classify(pathname)
	if category == CategoryFree {
		return Decision{Visible: true, Category: category}
	}

	if purchasedRank(user.PurchasedKey()) >= rank(category) {
		return Decision{Visible: true, Category: category}
	}

	return Decision{
		Visible:      false,
		Category:     category,
		CTAMessage:   ctaFor(category),
		PromptSignIn: user == nil,
	}
}
