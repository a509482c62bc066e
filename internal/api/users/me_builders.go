package users

import (
	"guide-app/internal/domain/packages"
	"guide-app/internal/domain/paywall"
	"guide-app/internal/domain/team"
	"guide-app/internal/domain/users"
)

func BuildPackageDTO(u users.User) *PackageDTO {
	pkg, ok := packages.Get(u.PurchasedKey())
	if !ok {
		return nil
	}
	return &PackageDTO{
		Key:                 pkg.Key,
		Name:                pkg.Name,
		Price:               pkg.Price,
		IsGroup:             pkg.IsGroup,
		IncludesTshirt:      pkg.IncludesTshirt,
		IncludesSlackAccess: pkg.IncludesSlackAccess,
	}
}

func BuildTeamDTO(t *team.Team) *TeamDTO {
	if t == nil {
		return nil
	}
	return &TeamDTO{
		ID:         t.ID,
		Name:       t.Name,
		URLToken:   t.URLToken,
		TotalSeats: t.TotalSeats,
		SeatsLeft:  t.SeatsLeft(),
		Package:    t.PackageKey,
	}
}

func BuildAccessDTO(u *users.User) AccessDTO {
	cats := paywall.Entitlements(u)
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, string(c))
	}
	return AccessDTO{Entitlements: out}
}
