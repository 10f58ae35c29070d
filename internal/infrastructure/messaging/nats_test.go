package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/99minutos/geopoint/internal/core/domain"
)

func TestSubject(t *testing.T) {
	if got := Subject("dev-42"); got != "location.recorded.dev-42" {
		t.Fatalf("unexpected subject: %q", got)
	}
}

func TestPublishRecorded_RejectsWildcardDeviceIDs(t *testing.T) {
	// no connection: the device ID must be refused before anything is sent
	p := NewPublisher(nil)
	for _, id := range []string{"", "dev.1", "dev*", ">", "dev 1", "a\tb"} {
		err := p.PublishRecorded(context.Background(), &domain.LocationReport{DeviceID: id})
		if !errors.Is(err, ErrInvalidSubject) {
			t.Errorf("%q: expected ErrInvalidSubject, got %v", id, err)
		}
	}
}

func TestRecordedEventPayload(t *testing.T) {
	loc, err := domain.NewGeoPoint(19.5, -99.25)
	if err != nil {
		t.Fatal(err)
	}
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	b, err := json.Marshal(recordedEvent{DeviceID: "dev-1", Location: loc, Timestamp: ts, Source: "gps", ReceivedAt: ts})
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		DeviceID string      `json:"device_id"`
		Location domain.Wire `json:"location"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.DeviceID != "dev-1" {
		t.Errorf("device_id = %q", decoded.DeviceID)
	}
	if decoded.Location != (domain.Wire{Type: domain.WireType, Latitude: 19.5, Longitude: -99.25}) {
		t.Errorf("location = %+v", decoded.Location)
	}
}
