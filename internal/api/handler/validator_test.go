package handler

import (
	"testing"
	"time"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()
	zero := 0.0

	cases := []struct {
		name string
		in   any
		want string
	}{
		{
			"nested pointer zero is present",
			&distanceRequest{From: coordinatesRequest{Latitude: &zero, Longitude: &zero}, To: coordinatesRequest{Latitude: &zero}},
			"to.longitude is required",
		},
		{
			"bad unit",
			&distanceRequest{From: coordinatesRequest{Latitude: &zero, Longitude: &zero}, To: coordinatesRequest{Latitude: &zero, Longitude: &zero}, Unit: "ly"},
			"unit must be one of: km mi rad",
		},
		{
			"report source",
			&reportRequest{DeviceID: "d", Latitude: &zero, Longitude: &zero, Timestamp: time.Now(), Source: "psychic"},
			"source must be one of: gps network manual",
		},
		{
			"report device",
			&reportRequest{Latitude: &zero, Longitude: &zero, Timestamp: time.Now(), Source: "gps"},
			"device_id is required",
		},
		{
			"report device with subject wildcard",
			&reportRequest{DeviceID: "dev.*", Latitude: &zero, Longitude: &zero, Timestamp: time.Now(), Source: "gps"},
			"device_id must be 1-128 letters, digits, '-' or '_'",
		},
		{
			"report device with space",
			&reportRequest{DeviceID: "dev 1", Latitude: &zero, Longitude: &zero, Timestamp: time.Now(), Source: "gps"},
			"device_id must be 1-128 letters, digits, '-' or '_'",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("got %v, want %q", err, tc.want)
			}
		})
	}

	report := &reportRequest{DeviceID: "truck_07-A", Latitude: &zero, Longitude: &zero, Timestamp: time.Now(), Source: "gps"}
	if err := v.Validate(report); err != nil {
		t.Fatalf("unexpected error for valid device id: %v", err)
	}

	ok := &distanceRequest{From: coordinatesRequest{Latitude: &zero, Longitude: &zero}, To: coordinatesRequest{Latitude: &zero, Longitude: &zero}}
	if err := v.Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
