package impl

import (
	"fmt"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/geo"
)

const (
	leadTitle      = "New Customer Lead"
	geoAlertTitle  = "Nearby Customer Alert"
	offerPushTitle = "New Offer Near You"
	offerPushBody  = "Tap to view offer"
	broadcastTitle = "Notification"
)

// BuildLeadMessage renders the merchant push for a confirmed lead.
func BuildLeadMessage(lead *entity.Lead) *entity.PushMessage {
	body := leadBody(lead)

	data := map[string]string{
		"leadId":     lead.ID.String(),
		"type":       string(lead.Type),
		"merchantId": lead.MerchantID,
	}
	if lead.OfferID != "" {
		data["offerId"] = lead.OfferID
	}

	return &entity.PushMessage{
		Notification: entity.PushNotification{Title: leadTitle, Body: body},
		Data:         data,
	}
}

func leadBody(lead *entity.Lead) string {
	switch lead.Type {
	case entity.LeadTypeGeoEnter:
		if lead.Distance != nil {
			return fmt.Sprintf("Customer nearby (%dm)", geo.RoundMeters(*lead.Distance))
		}

		return "A customer just entered your area"
	case entity.LeadTypeOfferView:
		return "Customer viewed your offer"
	case entity.LeadTypeRedeem:
		return "Customer redeemed your offer"
	default:
		return "Customer " + lead.CustomerMobile
	}
}

// BuildGeoAlertMessage renders the merchant push for a customer inside the geofence.
func BuildGeoAlertMessage(merchantID string, location *entity.CustomerLocation, distanceMeters float64) *entity.PushMessage {
	meters := geo.RoundMeters(distanceMeters)

	return &entity.PushMessage{
		Notification: entity.PushNotification{
			Title: geoAlertTitle,
			Body:  fmt.Sprintf("Customer nearby, within %dm", meters),
		},
		Data: map[string]string{
			"type":       string(entity.LeadTypeGeoEnter),
			"merchantId": merchantID,
			"customerId": location.Key(),
			"distance":   fmt.Sprintf("%d", meters),
		},
	}
}

// BuildOfferMessage renders the customer push for a new offer.
func BuildOfferMessage(offer *entity.Offer) *entity.PushMessage {
	title := offer.Title
	if title == "" {
		title = offerPushTitle
	}
	body := offer.Description
	if body == "" {
		body = offerPushBody
	}

	return &entity.PushMessage{
		Notification: entity.PushNotification{Title: title, Body: body},
		Data: map[string]string{
			"offerId":    offer.ID,
			"merchantId": offer.MerchantID,
		},
	}
}

// BuildBroadcastMessage renders an admin broadcast.
func BuildBroadcastMessage(broadcast *entity.Broadcast) *entity.PushMessage {
	title := broadcast.Title
	if title == "" {
		title = broadcastTitle
	}

	return &entity.PushMessage{
		Notification: entity.PushNotification{Title: title, Body: broadcast.Body},
		Data: map[string]string{
			"broadcastId": broadcast.ID,
		},
	}
}
