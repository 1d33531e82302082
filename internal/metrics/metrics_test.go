package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCommissionCredited(t *testing.T) {
	credited := testutil.ToFloat64(commissionsCredited)
	points := testutil.ToFloat64(commissionPoints)

	CommissionCredited(1125)

	assert.Equal(t, credited+1, testutil.ToFloat64(commissionsCredited))
	assert.Equal(t, points+1125, testutil.ToFloat64(commissionPoints))
}

func TestLabelledCounters(t *testing.T) {
	before := testutil.ToFloat64(withdrawals.WithLabelValues("REJECTED"))
	Withdrawal("REJECTED")
	assert.Equal(t, before+1, testutil.ToFloat64(withdrawals.WithLabelValues("REJECTED")))

	before = testutil.ToFloat64(couponApplications.WithLabelValues("expired"))
	CouponApplied("expired")
	assert.Equal(t, before+1, testutil.ToFloat64(couponApplications.WithLabelValues("expired")))

	before = testutil.ToFloat64(commissionsSkipped.WithLabelValues("guest"))
	CommissionSkipped("guest")
	assert.Equal(t, before+1, testutil.ToFloat64(commissionsSkipped.WithLabelValues("guest")))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/cart", "GET", "200"))

	ObserveHTTP("/api/cart", "GET", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/cart", "GET", "200")))
}
