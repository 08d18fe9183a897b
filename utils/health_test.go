package utils

import (
	"testing"
	"time"
)

func TestHealthSnapshotCarriesNamedRedisRoles(t *testing.T) {
	recordHealth(HealthStatus{
		Mongo: true,
		Redis: map[string]bool{
			"cache": true,
			"auth":  true,
			"queue": false,
		},
		CheckedAt: time.Now(),
	})

	got := GetHealthStatus()
	if !got.Mongo {
		t.Error("mongo status lost")
	}
	for _, role := range []string{"cache", "auth", "queue"} {
		if _, ok := got.Redis[role]; !ok {
			t.Errorf("snapshot missing redis role %q", role)
		}
	}
	if got.Redis["queue"] {
		t.Error("queue status flipped")
	}
}

func TestHealthSnapshotIsACopy(t *testing.T) {
	recordHealth(HealthStatus{Redis: map[string]bool{"cache": true}})

	first := GetHealthStatus()
	first.Redis["cache"] = false

	if !GetHealthStatus().Redis["cache"] {
		t.Error("mutating a returned snapshot must not change the stored one")
	}
}
