package paywall

import "strings"

// Path table derived from the book's table of contents. Sections are
// addressed by their leading path segment; each paid section's bare
// index page is free so readers can see what a chapter covers.

var freePaths = []string{
	"/",
	"/preface",
	"/introduction",
	"/background",
}

var proSections = []string{
	"ssr",
	"federation",
	"server-analytics",
}

var fullSections = []string{
	"service-integrations",
	"preventing-dos-attacks",
}

var basicSections = []string{
	"background",
	"understanding-graphql",
	"query-language",
	"type-system",
	"validation-and-execution",
	"client",
	"react",
	"vue",
	"react-native",
	"ios",
	"android",
	"server",
}

func normalize(pathname string) string {
	p := strings.TrimSpace(pathname)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func section(pathname string) string {
	parts := strings.SplitN(strings.TrimPrefix(pathname, "/"), "/", 2)
	return parts[0]
}

func isSectionIndex(pathname string) bool {
	return !strings.Contains(strings.TrimPrefix(pathname, "/"), "/")
}

func inSections(pathname string, sections []string) bool {
	s := section(pathname)
	for _, name := range sections {
		if s == name {
			return true
		}
	}
	return false
}

// Classify resolves a pathname to the category it requires. The table
// is total: free paths and section indexes win over prefix matches,
// pro/full sections are tested before the basic catch-all, and unknown
// paths fall through to free.
func Classify(pathname string) Category {
	p := normalize(pathname)

	for _, free := range freePaths {
		if p == free {
			return CategoryFree
		}
	}

	paid := inSections(p, proSections) || inSections(p, fullSections) || inSections(p, basicSections)
	if paid && isSectionIndex(p) {
		return CategoryFree
	}

	switch {
	case inSections(p, proSections):
		return CategoryPro
	case inSections(p, fullSections):
		return CategoryFull
	case inSections(p, basicSections):
		return CategoryBasic
	}

	return CategoryFree
}
