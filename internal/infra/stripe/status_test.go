package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentStatus(t *testing.T) {
	assert.Equal(t, "paid", NormalizePaymentStatus("paid"))
	assert.Equal(t, "paid", NormalizePaymentStatus("no_payment_required"))
	assert.Equal(t, "unpaid", NormalizePaymentStatus("unpaid"))
	assert.Equal(t, "unpaid", NormalizePaymentStatus(""))
	assert.Equal(t, "unpaid", NormalizePaymentStatus("  unpaid "))
	assert.Equal(t, "something_new", NormalizePaymentStatus("something_new"))
}

func TestSessionPaid(t *testing.T) {
	assert.True(t, SessionPaid("paid"))
	assert.True(t, SessionPaid("no_payment_required"))
	assert.False(t, SessionPaid("unpaid"))
	assert.False(t, SessionPaid(""))
}
