package controllers_test

import (
	"net/http"
	"testing"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
)

func sendInvitationsBody(venueID interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"sender_id": 3,
		"invitations": []map[string]string{
			{"recipient_name": "Ana", "recipient_email": "ana@example.com"},
			{"recipient_name": "Ben", "recipient_email": "ben@example.com"},
		},
		"message": `{"theme":"rustic"}`,
	}
	if venueID != nil {
		body["venue_id"] = venueID
	}
	return body
}

func TestSendInvitations_NoVenueAnywhere(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(nil), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if n := countRows(t, &models.Invitation{}, ""); n != 0 {
		t.Fatalf("expected no invitation rows, got %d", n)
	}
}

func TestSendInvitations_EmptyRecipients(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invitations", map[string]interface{}{
		"sender_id":   3,
		"invitations": []map[string]string{},
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSendInvitations_SynthesizesVenueSubtype(t *testing.T) {
	r := setupRouter(t)

	// A Venue-typed service exists, but nothing in the venues table.
	serviceID := seedService(t, models.ServiceTypeVenue, "Rosewood Hall")

	w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["invitation_id"] == nil || uint(resp["invitation_id"].(float64)) == 0 {
		t.Fatalf("expected the first batch id, got %v", resp["invitation_id"])
	}

	var venue models.Venue
	if err := config.DB.First(&venue, "service_id = ?", serviceID).Error; err != nil {
		t.Fatalf("expected a synthesized venue row: %v", err)
	}
	if venue.Capacity == nil || *venue.Capacity != 200 {
		t.Fatalf("expected default capacity 200, got %v", venue.Capacity)
	}
	if venue.ParkingCapacity == nil || *venue.ParkingCapacity != 50 {
		t.Fatalf("expected default parking capacity 50, got %v", venue.ParkingCapacity)
	}

	var invitations []models.Invitation
	if err := config.DB.Find(&invitations).Error; err != nil {
		t.Fatalf("failed to load invitations: %v", err)
	}
	if len(invitations) != 2 {
		t.Fatalf("expected 2 invitation rows, got %d", len(invitations))
	}
	for _, inv := range invitations {
		if inv.VenueID != serviceID {
			t.Fatalf("invitation references venue %d, want %d", inv.VenueID, serviceID)
		}
	}
}

func TestSendInvitations_SynthesizedAddressFallsBackToTBD(t *testing.T) {
	r := setupRouter(t)

	serviceID := seedService(t, models.ServiceTypeVenue, "Rosewood Hall")

	w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var venue models.Venue
	if err := config.DB.First(&venue, "service_id = ?", serviceID).Error; err != nil {
		t.Fatalf("expected a synthesized venue row: %v", err)
	}
	if venue.Address == nil || *venue.Address != "TBD" {
		t.Fatalf("expected TBD address, got %v", venue.Address)
	}
}

func TestSendInvitations_ExplicitVenueMustExist(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(42), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSendInvitations_ResendingDuplicates(t *testing.T) {
	r := setupRouter(t)

	serviceID := seedService(t, models.ServiceTypeVenue, "Rosewood Hall")
	address := "12 Garden Lane"
	capacity := 150
	venue := models.Venue{ServiceID: serviceID, Address: &address, Capacity: &capacity}
	if err := config.DB.Create(&venue).Error; err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(nil), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("send %d: expected 200, got %d", i+1, w.Code)
		}
	}

	// Two identical sends are two independent batches, by design.
	if n := countRows(t, &models.Invitation{}, ""); n != 4 {
		t.Fatalf("expected 4 invitation rows after resend, got %d", n)
	}
	if n := countRows(t, &models.Venue{}, ""); n != 1 {
		t.Fatalf("expected the single seeded venue, got %d", n)
	}
}

func TestGetMyInvitations_NewestFirstWithVenueAddress(t *testing.T) {
	r := setupRouter(t)

	serviceID := seedService(t, models.ServiceTypeVenue, "Rosewood Hall")
	address := "12 Garden Lane"
	venue := models.Venue{ServiceID: serviceID, Address: &address}
	if err := config.DB.Create(&venue).Error; err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(nil), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/invitations/my?sender_id=3", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	invitations := resp["invitations"].([]interface{})
	if len(invitations) != 4 {
		t.Fatalf("expected 4 invitations, got %d", len(invitations))
	}

	prev := float64(1 << 40)
	for _, entry := range invitations {
		inv := entry.(map[string]interface{})
		id := inv["id"].(float64)
		if id >= prev {
			t.Fatalf("invitations not newest first: id %v after %v", id, prev)
		}
		if inv["venue_address"] != address {
			t.Fatalf("expected venue address joined in, got %v", inv["venue_address"])
		}
		prev = id
	}
}

func TestGetInvitation_ByID(t *testing.T) {
	r := setupRouter(t)

	serviceID := seedService(t, models.ServiceTypeVenue, "Rosewood Hall")
	address := "12 Garden Lane"
	venue := models.Venue{ServiceID: serviceID, Address: &address}
	if err := config.DB.Create(&venue).Error; err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/invitations", sendInvitationsBody(nil), nil)
	resp := decodeBody(t, w)
	firstID := itoa(uint(resp["invitation_id"].(float64)))

	w = doJSON(t, r, http.MethodGet, "/api/invitations/"+firstID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp = decodeBody(t, w)
	invitation := resp["invitation"].(map[string]interface{})
	if invitation["venue_address"] != address {
		t.Fatalf("expected venue address, got %v", invitation["venue_address"])
	}
	if invitation["venue_name"] != "Rosewood Hall" {
		t.Fatalf("expected venue name, got %v", invitation["venue_name"])
	}
}

func TestGetInvitation_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/invitations/999", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
