package billing

import (
	"fmt"
	"net/http"
	"os"

	"guide-app/config"
	"guide-app/database"
	"guide-app/internal/domain/billing"
	"guide-app/internal/domain/packages"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// POST /create-checkout-session
// The client persists the returned session id before redirecting to
// Stripe, then polls /associate-session after the return trip.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		PackageKey string `json:"package_key"`
		Licenses   int    `json:"licenses"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PackageKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid package_key"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	// allow-list package key
	pkg, ok := packages.Get(body.PackageKey)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown package_key"})
		return
	}

	licenses := 0
	if pkg.IsGroup {
		licenses = body.Licenses
		if licenses <= 0 {
			licenses = packages.BaseLicenses
		}
	}

	price := pkg.FullPrice(licenses)
	name := pkg.FullName(licenses)

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(config.APP_URL + "/welcome"),
		CancelURL:  stripe.String(config.APP_URL + "/#pricing"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(int64(price * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},

		Metadata: map[string]string{
			"package_key": pkg.Key,
			"licenses":    fmt.Sprint(licenses),
			"app_env":     os.Getenv("APP_ENV"),
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	record := billing.CheckoutSession{
		StripeSessionID: s.ID,
		PackageKey:      pkg.Key,
		Licenses:        licenses,
		AmountUSD:       price,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": s.ID, "url": s.URL})
}
