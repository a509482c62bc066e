package users

type MeResponse struct {
	User     UserDTO     `json:"user"`
	Purchase PurchaseDTO `json:"purchase"`
	Access   AccessDTO   `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"firstName"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Photo      string `json:"photo"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

/* ---------- PURCHASE ---------- */

type PurchaseDTO struct {
	HasPurchased *string     `json:"hasPurchased"`
	Package      *PackageDTO `json:"package"`
	HasTshirt    bool        `json:"hasTshirt"`
	EbookURL     *string     `json:"ebookUrl"`
	Team         *TeamDTO    `json:"team"`
}

type PackageDTO struct {
	Key                 string  `json:"key"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	IsGroup             bool    `json:"isGroup"`
	IncludesTshirt      bool    `json:"includesTshirt"`
	IncludesSlackAccess bool    `json:"includesSlackAccess"`
}

type TeamDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	URLToken   string `json:"urlToken"`
	TotalSeats int    `json:"totalSeats"`
	SeatsLeft  int    `json:"seatsLeft"`
	Package    string `json:"packageType"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Entitlements []string `json:"entitlements"` // paid categories unlocked
}
