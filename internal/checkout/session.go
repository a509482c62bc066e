package checkout

import "strconv"

// Storage keys. Kept stable: existing profiles carry these entries.
const (
	keySessionID      = "stripe.sessionId"
	keyPackage        = "package"
	keyLicenses       = "licenses"
	keyAssociated     = "stripe.associatedSessionWithUser"
	keyDeclinedTshirt = "declinedTshirt"
)

// Session is the client-held reference to one checkout attempt. At
// most one is stored per profile; saving a new one overwrites any
// unresolved predecessor.
type Session struct {
	ID         string
	PackageKey string
	Licenses   int
}

func saveSession(s Storage, sess Session) {
	s.Set(keySessionID, sess.ID)
	s.Set(keyPackage, sess.PackageKey)
	if sess.Licenses > 0 {
		s.Set(keyLicenses, strconv.Itoa(sess.Licenses))
	} else {
		s.Delete(keyLicenses)
	}
	s.Delete(keyAssociated)
}

// LoadSession reads the pending session reference, if any.
func LoadSession(s Storage) (Session, bool) {
	id, ok := s.Get(keySessionID)
	if !ok || id == "" {
		return Session{}, false
	}
	pkg, _ := s.Get(keyPackage)
	licenses := 0
	if raw, ok := s.Get(keyLicenses); ok {
		licenses, _ = strconv.Atoi(raw)
	}
	return Session{ID: id, PackageKey: pkg, Licenses: licenses}, true
}

// ClearSession abandons the pending session reference.
func ClearSession(s Storage) {
	s.Delete(keySessionID)
	s.Delete(keyPackage)
	s.Delete(keyLicenses)
	s.Delete(keyAssociated)
}

func markAssociated(s Storage) {
	s.Set(keyAssociated, "true")
}

// Associated reports whether the pending session has been confirmed as
// linked to the user's account.
func Associated(s Storage) bool {
	v, _ := s.Get(keyAssociated)
	return v == "true"
}

// DeclineTshirt records that the reader turned down the shirt offer.
func DeclineTshirt(s Storage) {
	s.Set(keyDeclinedTshirt, "true")
}

func TshirtDeclined(s Storage) bool {
	v, _ := s.Get(keyDeclinedTshirt)
	return v == "true"
}
