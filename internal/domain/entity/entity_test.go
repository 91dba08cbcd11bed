package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLeadStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from LeadStatus
		to   LeadStatus
		want bool
	}{
		{LeadStatusPending, LeadStatusConfirmed, true},
		{LeadStatusConfirmed, LeadStatusNotified, true},
		{LeadStatusPending, LeadStatusNotified, false},
		{LeadStatusConfirmed, LeadStatusPending, false},
		{LeadStatusNotified, LeadStatusNotified, false},
		{LeadStatusNotified, LeadStatusConfirmed, false},
		{LeadStatusPending, LeadStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestLead_Precedes(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	earlier := &Lead{ID: high, CreatedAt: t0}
	later := &Lead{ID: low, CreatedAt: t0.Add(time.Minute)}
	assert.True(t, earlier.Precedes(later))
	assert.False(t, later.Precedes(earlier))

	tiedLow := &Lead{ID: low, CreatedAt: t0}
	tiedHigh := &Lead{ID: high, CreatedAt: t0}
	assert.True(t, tiedLow.Precedes(tiedHigh))
	assert.False(t, tiedHigh.Precedes(tiedLow))
	assert.False(t, tiedLow.Precedes(tiedLow))
}

func TestLead_DedupeKeyAndValidity(t *testing.T) {
	lead := &Lead{MerchantID: "m1", CustomerMobile: "+15550100", Type: LeadTypeGeoEnter}

	assert.Equal(t, "m1_+15550100_geo_enter", lead.DedupeKey())
	assert.True(t, lead.IsValid())
	assert.Empty(t, lead.MissingFields())

	lead.CustomerMobile = ""
	assert.False(t, lead.IsValid())
	assert.Equal(t, []string{"customerMobile"}, lead.MissingFields())

	unknown := &Lead{MerchantID: "m1", CustomerMobile: "+15550100", Type: "walk_in"}
	assert.False(t, unknown.IsValid())
}

func TestMerchant_TokensDedupesAndSkipsEmpty(t *testing.T) {
	m := &Merchant{ID: "m1", FCMToken: "b", FCMTokens: []string{"a", "", "b", "c"}}

	assert.Equal(t, []string{"a", "b", "c"}, m.Tokens())
	assert.True(t, m.HasToken())
	assert.Len(t, m.PushTargets(), 3)
	assert.Equal(t, PushTarget{Owner: OwnerKindMerchant, OwnerID: "m1", Token: "a"}, m.PushTargets()[0])

	assert.False(t, (&Merchant{}).HasToken())
}

func TestMerchant_AcceptsLeadType(t *testing.T) {
	m := &Merchant{NotificationPrefs: map[string]bool{"offer_view": false, "redeem": true}}

	assert.False(t, m.AcceptsLeadType(LeadTypeOfferView))
	assert.True(t, m.AcceptsLeadType(LeadTypeRedeem))
	assert.True(t, m.AcceptsLeadType(LeadTypeGeoEnter))
	assert.True(t, (&Merchant{}).AcceptsLeadType(LeadTypeGeoEnter))
}

func TestMerchantAlert_Windows(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	alert := &MerchantAlert{MerchantID: "m1", CustomerID: "c1", LastSent: t0}

	assert.Equal(t, "m1_c1", alert.ID())
	assert.True(t, alert.InCooldown(t0.Add(10*time.Minute), 30*time.Minute))
	assert.False(t, alert.InCooldown(t0.Add(30*time.Minute), 30*time.Minute))
	assert.False(t, alert.Expired(t0.Add(24*time.Hour-time.Second), 24*time.Hour))
	assert.True(t, alert.Expired(t0.Add(24*time.Hour), 24*time.Hour))
}

func TestCustomerLocation_CompleteAndKey(t *testing.T) {
	lat, lng := 12.9716, 77.5990

	loc := &CustomerLocation{Mobile: "+15550100", Latitude: &lat, Longitude: &lng}
	assert.True(t, loc.Complete())
	assert.Equal(t, "+15550100", loc.Key())

	loc.CustomerID = "c1"
	assert.Equal(t, "c1", loc.Key())

	assert.False(t, (&CustomerLocation{Mobile: "+15550100", Latitude: &lat}).Complete())
	assert.False(t, (&CustomerLocation{Latitude: &lat, Longitude: &lng}).Complete())
}

func TestBroadcast_AudienceTargetDefaultsToCustomer(t *testing.T) {
	assert.Equal(t, BroadcastTargetCustomer, (&Broadcast{}).AudienceTarget())
	assert.Equal(t, BroadcastTargetAll, (&Broadcast{Target: BroadcastTargetAll}).AudienceTarget())
}
