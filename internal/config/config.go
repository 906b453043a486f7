// Package config holds the runtime settings: network credentials, where the counter lives, and a few
// display and timing knobs.
//
// Settings come from a JSON file on the board's flash filesystem. Anything the file leaves empty falls back
// to values set at link time, e.g.
//
//	tinygo flash -ldflags "-X github.com/ajanata/voltclock-hardware/internal/config.wifiSSID=lab" ...
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mailru/easyjson"
)

// Path is where the firmware looks for its settings.
const Path = "/voltclock.json"

// set with -ldflags -X
var (
	wifiSSID     string
	wifiPassword string
	storeHost    string
	storeAuth    string
)

var (
	ErrNoFile  = errors.New("config: no settings file")
	ErrInvalid = errors.New("config: invalid")
)

type Config struct {
	WiFiSSID     string
	WiFiPassword string
	StoreHost    string
	StoreAuth    string
	CounterPath  string
	DisplayAddr  uint16
	CycleDelay   time.Duration
}

// file is the on-flash representation.
//
//easyjson:json
type file struct {
	WiFiSSID     string `json:"wifi_ssid,omitempty"`
	WiFiPassword string `json:"wifi_password,omitempty"`
	StoreHost    string `json:"store_host,omitempty"`
	StoreAuth    string `json:"store_auth,omitempty"`
	CounterPath  string `json:"counter_path,omitempty"`
	DisplayAddr  int    `json:"display_addr,omitempty"`
	CycleDelayMS int    `json:"cycle_delay_ms,omitempty"`
}

// Default returns the link-time settings.
func Default() Config {
	return Config{
		WiFiSSID:     wifiSSID,
		WiFiPassword: wifiPassword,
		StoreHost:    storeHost,
		StoreAuth:    storeAuth,
		CounterPath:  "/counter",
		DisplayAddr:  0x3C,
		CycleDelay:   500 * time.Millisecond,
	}
}

// Merge fills every zero field of c from d.
func (c Config) Merge(d Config) Config {
	if c.WiFiSSID == "" {
		c.WiFiSSID = d.WiFiSSID
	}
	if c.WiFiPassword == "" {
		c.WiFiPassword = d.WiFiPassword
	}
	if c.StoreHost == "" {
		c.StoreHost = d.StoreHost
	}
	if c.StoreAuth == "" {
		c.StoreAuth = d.StoreAuth
	}
	if c.CounterPath == "" {
		c.CounterPath = d.CounterPath
	}
	if c.DisplayAddr == 0 {
		c.DisplayAddr = d.DisplayAddr
	}
	if c.CycleDelay == 0 {
		c.CycleDelay = d.CycleDelay
	}
	return c
}

func (c Config) Validate() error {
	switch {
	case c.WiFiSSID == "":
		return fmt.Errorf("%w: no wifi ssid", ErrInvalid)
	case c.StoreHost == "":
		return fmt.Errorf("%w: no store host", ErrInvalid)
	case c.CounterPath == "" || c.CounterPath[0] != '/':
		return fmt.Errorf("%w: counter path %q must start with /", ErrInvalid, c.CounterPath)
	case c.DisplayAddr == 0 || c.DisplayAddr > 0x7F:
		return fmt.Errorf("%w: display address %#x is not a 7-bit i2c address", ErrInvalid, c.DisplayAddr)
	case c.CycleDelay < 0:
		return fmt.Errorf("%w: negative cycle delay", ErrInvalid)
	}
	return nil
}

// Decode parses a settings file. Fields it omits are left zero.
func Decode(data []byte) (Config, error) {
	var f file
	if err := easyjson.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if f.DisplayAddr < 0 || f.DisplayAddr > 0xFFFF {
		return Config{}, fmt.Errorf("%w: display address %d out of range", ErrInvalid, f.DisplayAddr)
	}
	return Config{
		WiFiSSID:     f.WiFiSSID,
		WiFiPassword: f.WiFiPassword,
		StoreHost:    f.StoreHost,
		StoreAuth:    f.StoreAuth,
		CounterPath:  f.CounterPath,
		DisplayAddr:  uint16(f.DisplayAddr),
		CycleDelay:   time.Duration(f.CycleDelayMS) * time.Millisecond,
	}, nil
}

// Encode renders c as a settings file.
func Encode(c Config) ([]byte, error) {
	return easyjson.Marshal(file{
		WiFiSSID:     c.WiFiSSID,
		WiFiPassword: c.WiFiPassword,
		StoreHost:    c.StoreHost,
		StoreAuth:    c.StoreAuth,
		CounterPath:  c.CounterPath,
		DisplayAddr:  int(c.DisplayAddr),
		CycleDelayMS: int(c.CycleDelay / time.Millisecond),
	})
}

// Opener opens files for reading. On the board this is the littlefs filesystem on flash.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// Load reads the settings file at path and fills anything it leaves out from Default.
// Without a filesystem or a file, it returns the defaults along with ErrNoFile, which callers may treat as a warning.
func Load(fs Opener, path string) (Config, error) {
	if fs == nil {
		return Default(), ErrNoFile
	}
	r, err := fs.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrNoFile, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return Default(), err
	}
	return c.Merge(Default()), nil
}
