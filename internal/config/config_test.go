package config

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type memFS map[string]string

func (m memFS) Open(path string) (io.ReadCloser, error) {
	s, ok := m[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return io.NopCloser(strings.NewReader(s)), nil
}

func withLinkDefaults(t *testing.T, ssid, host string) {
	t.Helper()
	oldSSID, oldHost := wifiSSID, storeHost
	wifiSSID, storeHost = ssid, host
	t.Cleanup(func() { wifiSSID, storeHost = oldSSID, oldHost })
}

func TestDefault(t *testing.T) {
	withLinkDefaults(t, "lab", "x.firebaseio.com")
	d := Default()
	if d.WiFiSSID != "lab" || d.StoreHost != "x.firebaseio.com" {
		t.Fatalf("link-time values not used: %+v", d)
	}
	if d.CounterPath != "/counter" || d.DisplayAddr != 0x3C || d.CycleDelay != 500*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	withLinkDefaults(t, "lab", "x.firebaseio.com")
	fs := memFS{Path: `{"wifi_ssid":"field","store_auth":"tok","cycle_delay_ms":1000,"unknown":[1,2]}`}

	c, err := Load(fs, Path)
	if err != nil {
		t.Fatal(err)
	}
	if c.WiFiSSID != "field" {
		t.Errorf("WiFiSSID = %q, want field", c.WiFiSSID)
	}
	if c.StoreHost != "x.firebaseio.com" {
		t.Errorf("StoreHost = %q, want default", c.StoreHost)
	}
	if c.StoreAuth != "tok" {
		t.Errorf("StoreAuth = %q, want tok", c.StoreAuth)
	}
	if c.CycleDelay != time.Second {
		t.Errorf("CycleDelay = %v, want 1s", c.CycleDelay)
	}
	if c.DisplayAddr != 0x3C {
		t.Errorf("DisplayAddr = %#x, want 0x3c", c.DisplayAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	withLinkDefaults(t, "lab", "x.firebaseio.com")
	c, err := Load(memFS{}, Path)
	if !errors.Is(err, ErrNoFile) {
		t.Fatalf("err = %v, want ErrNoFile", err)
	}
	if c != Default() {
		t.Fatalf("got %+v, want defaults", c)
	}

	c, err = Load(nil, Path)
	if !errors.Is(err, ErrNoFile) || c != Default() {
		t.Fatalf("nil fs: %+v, %v", c, err)
	}
}

func TestLoadBadFile(t *testing.T) {
	_, err := Load(memFS{Path: `{"wifi_ssid": 12`}, Path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	in := Config{
		WiFiSSID:    "lab",
		StoreHost:   "x.firebaseio.com",
		StoreAuth:   "tok",
		CounterPath: "/counter",
		DisplayAddr: 0x3D,
		CycleDelay:  750 * time.Millisecond,
	}
	data, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "wifi_password") {
		t.Fatalf("empty field encoded: %s", data)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("Decode(Encode(c)) = %+v, want %+v", out, in)
	}
}

func TestValidate(t *testing.T) {
	good := Config{WiFiSSID: "lab", StoreHost: "h", CounterPath: "/counter", DisplayAddr: 0x3C}
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"no ssid", func(c *Config) { c.WiFiSSID = "" }},
		{"no host", func(c *Config) { c.StoreHost = "" }},
		{"relative path", func(c *Config) { c.CounterPath = "counter" }},
		{"no addr", func(c *Config) { c.DisplayAddr = 0 }},
		{"10-bit addr", func(c *Config) { c.DisplayAddr = 0x13C }},
		{"negative delay", func(c *Config) { c.CycleDelay = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mod(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}
