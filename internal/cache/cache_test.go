package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_DeterministicAndPrefixed(t *testing.T) {
	k1 := Key("Despacho n.º 464")
	k2 := Key("Despacho n.º 464")
	k3 := Key("Despacho n.º 465")

	if k1 != k2 {
		t.Errorf("expected identical keys for identical text")
	}
	if k1 == k3 {
		t.Errorf("expected different keys for different text")
	}
	if !strings.HasPrefix(k1, "gazeta:v1:") {
		t.Errorf("expected version prefix, got %q", k1)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	c := NewMemory(time.Hour, time.Hour)

	if _, found := c.Get("missing"); found {
		t.Errorf("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("expected hit with 'value', got %q found=%v", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Errorf("expected miss after delete")
	}
}

func TestDisk_RoundTrip(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Hour)

	if err := c.Set(Key("texto"), []byte(`[{"category":"PERSON"}]`), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, found := c.Get(Key("texto"))
	if !found {
		t.Fatalf("expected hit")
	}
	if string(got) != `[{"category":"PERSON"}]` {
		t.Errorf("unexpected value: %q", got)
	}
}

func TestDisk_Expiry(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), -time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Errorf("expected expired entry to miss")
	}
}
