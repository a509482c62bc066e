package paywall

import (
	"testing"

	"guide-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func buyer(key string) *users.User {
	return &users.User{ID: 1, Username: "loren", HasPurchased: &key}
}

func freeloader() *users.User {
	return &users.User{ID: 2, Username: "visitor"}
}

func TestClassify(t *testing.T) {
	cases := map[string]Category{
		"/":                                     CategoryFree,
		"/preface":                              CategoryFree,
		"/introduction":                         CategoryFree,
		"/background":                           CategoryFree,
		"/background/http":                      CategoryBasic,
		"/understanding-graphql/introduction":   CategoryBasic,
		"/query-language/operations":            CategoryBasic,
		"/react/querying":                       CategoryBasic,
		"/server/authentication":                CategoryBasic,
		"/ssr/setting-up-the-server":            CategoryPro,
		"/federation/extending-entities":        CategoryPro,
		"/server-analytics/setup":               CategoryPro,
		"/service-integrations/making-a-query":  CategoryFull,
		"/preventing-dos-attacks/query-depth":   CategoryFull,
		"/tshirt":                               CategoryFree,
		"/welcome":                              CategoryFree,
		"/no-such-section/whatever":             CategoryFree,
	}
	for path, want := range cases {
		assert.Equal(t, want, Classify(path), path)
	}
}

func TestClassifySectionIndexesAreFree(t *testing.T) {
	for _, path := range []string{
		"/server",
		"/server/",
		"/federation",
		"/federation/",
		"/service-integrations/",
		"/query-language",
	} {
		assert.Equal(t, CategoryFree, Classify(path), path)
	}
}

func TestDecideEntitlementOrdering(t *testing.T) {
	// rows: purchased key; columns: required category
	table := []struct {
		key   string
		basic bool
		pro   bool
		full  bool
	}{
		{"basic", true, false, false},
		{"pro", true, true, false},
		{"team", true, true, false},
		{"full", true, true, true},
		{"fullteam", true, true, true},
		{"training", true, true, true},
	}

	paths := map[Category]string{
		CategoryBasic: "/server/authentication",
		CategoryPro:   "/federation/extending-entities",
		CategoryFull:  "/service-integrations/making-a-query",
	}

	for _, row := range table {
		u := buyer(row.key)
		assert.Equal(t, row.basic, Decide(paths[CategoryBasic], u).Visible, row.key+" basic")
		assert.Equal(t, row.pro, Decide(paths[CategoryPro], u).Visible, row.key+" pro")
		assert.Equal(t, row.full, Decide(paths[CategoryFull], u).Visible, row.key+" full")
	}

	// no purchase satisfies nothing paid
	for _, path := range paths {
		assert.False(t, Decide(path, freeloader()).Visible, path)
		assert.False(t, Decide(path, nil).Visible, path)
	}
}

func TestDecideFreeContent(t *testing.T) {
	for _, u := range []*users.User{nil, freeloader(), buyer("basic"), buyer("training")} {
		d := Decide("/preface", u)
		assert.True(t, d.Visible)
		assert.Empty(t, d.CTAMessage)
		assert.False(t, d.PromptSignIn)
	}
}

func TestDecideCTAMessages(t *testing.T) {
	d := Decide("/server/authentication", freeloader())
	assert.Equal(t, "buy the book", d.CTAMessage)

	d = Decide("/federation/extending-entities", buyer("basic"))
	assert.Equal(t, "get the Pro package", d.CTAMessage)
	assert.False(t, d.PromptSignIn, "signed-in user shouldn't get a sign-in prompt")

	d = Decide("/service-integrations/making-a-query", buyer("pro"))
	assert.False(t, d.Visible)
	assert.Equal(t, "get the Full package", d.CTAMessage)

	// distinguishes not-authenticated from not-entitled
	d = Decide("/server/authentication", nil)
	assert.True(t, d.PromptSignIn)
}

func TestDecideIsDeterministic(t *testing.T) {
	u := buyer("pro")
	first := Decide("/federation/extending-entities", u)
	second := Decide("/federation/extending-entities", u)
	assert.Equal(t, first, second)
}

func TestHeaderOnlyIsComplementOfVisible(t *testing.T) {
	for _, path := range []string{
		"/preface",
		"/server/authentication",
		"/federation/extending-entities",
		"/service-integrations/making-a-query",
	} {
		for _, u := range []*users.User{nil, freeloader(), buyer("basic"), buyer("full")} {
			d := Decide(path, u)
			assert.NotEqual(t, d.Visible, d.HeaderOnly(), path)
		}
	}
}

func TestEntitlements(t *testing.T) {
	assert.Empty(t, Entitlements(nil))
	assert.Empty(t, Entitlements(freeloader()))
	assert.Equal(t, []Category{CategoryBasic}, Entitlements(buyer("basic")))
	assert.Equal(t, []Category{CategoryBasic, CategoryPro}, Entitlements(buyer("team")))
	assert.Equal(t, []Category{CategoryBasic, CategoryPro, CategoryFull}, Entitlements(buyer("training")))
}
