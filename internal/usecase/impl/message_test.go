package impl

import (
	"encoding/json"
	"testing"

	"geolead/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func assertGoldenMessage(t *testing.T, name string, msg *entity.PushMessage) {
	t.Helper()

	actual, err := json.MarshalIndent(msg, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, append(actual, '\n'))
}

func TestBuildLeadMessage(t *testing.T) {
	leadID := uuid.MustParse("6f1c2a4e-9d3b-4c7a-8e21-5b0f3d9a7c10")
	distance := 42.4

	tests := []struct {
		name string
		lead *entity.Lead
	}{
		{
			name: "lead_offer_view",
			lead: &entity.Lead{ID: leadID, MerchantID: "m1", OfferID: "o1", Type: entity.LeadTypeOfferView},
		},
		{
			name: "lead_geo_enter",
			lead: &entity.Lead{ID: leadID, MerchantID: "m1", Type: entity.LeadTypeGeoEnter, Distance: &distance},
		},
		{
			name: "lead_redeem",
			lead: &entity.Lead{ID: leadID, MerchantID: "m1", OfferID: "o9", Type: entity.LeadTypeRedeem},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertGoldenMessage(t, tt.name, BuildLeadMessage(tt.lead))
		})
	}
}

func TestBuildGeoAlertMessage(t *testing.T) {
	lat, lng := 12.9716, 77.5946
	location := &entity.CustomerLocation{Mobile: "+919800000001", Latitude: &lat, Longitude: &lng}

	assertGoldenMessage(t, "geo_alert", BuildGeoAlertMessage("m1", location, 477.4))
}

func TestBuildOfferMessage(t *testing.T) {
	assertGoldenMessage(t, "offer_defaults", BuildOfferMessage(&entity.Offer{ID: "o1", MerchantID: "m1"}))
	assertGoldenMessage(t, "offer_custom", BuildOfferMessage(&entity.Offer{
		ID:          "o2",
		MerchantID:  "m1",
		Title:       "2 for 1 dosa",
		Description: "Weekdays until 11am",
	}))
}

func TestBuildBroadcastMessage(t *testing.T) {
	assertGoldenMessage(t, "broadcast", BuildBroadcastMessage(&entity.Broadcast{ID: "b1", Body: "Diwali week deals"}))
}
