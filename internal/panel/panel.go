// Package panel runs the voltclock: one bring-up sequence, then a fixed read-and-draw cycle.
//
// Each cycle samples the voltmeter, fetches the counter from the store, reads the clock, and
// redraws all three. The three are independent; a failed fetch shows its error text in the
// counter's slot and the rest of the frame is drawn as usual.
package panel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ajanata/voltclock-hardware/internal/config"
	"github.com/ajanata/voltclock-hardware/internal/diag"
	"github.com/ajanata/voltclock-hardware/internal/rtc"
	"github.com/ajanata/voltclock-hardware/internal/store"
	"github.com/ajanata/voltclock-hardware/internal/volt"
	"github.com/ajanata/voltclock-hardware/internal/wifi"
)

// ErrHalt wraps bring-up failures the board cannot recover from without a reset.
var ErrHalt = errors.New("halt")

// Screen positions, top-left of each line.
const (
	counterY = 0
	clockY   = 20
	voltY    = 40
)

const (
	bannerText  = "voltclock"
	bannerDwell = 3 * time.Second
	renderHold  = 70 * time.Millisecond
)

type Sampler interface {
	Read() uint16
}

type Counter interface {
	GetInt(ctx context.Context, path string) (int64, error)
}

type Screen interface {
	Clear()
	Text(x, y int16, s string)
	Flush() error
}

// Device is everything the panel drives. Hardware handles are set by the board's main; tests
// set fakes.
type Device struct {
	Config  config.Config
	Log     *diag.Logger
	Link    wifi.Link
	Clock   rtc.Clock
	ADC     Sampler
	Divider volt.Divider
	Screen  Screen

	// ProbeDisplay checks the display answers and configures it.
	ProbeDisplay func() error

	// BuildTime seeds the clock after it lost power. Zero leaves the clock unset.
	BuildTime time.Time

	// HTTP is used for the store client built during bring-up. Nil picks a default.
	HTTP *http.Client

	// Counter is built during bring-up unless already set.
	Counter Counter

	// Sleep waits out the fixed delays. Nil sleeps for real.
	Sleep func(ctx context.Context, d time.Duration) error

	volts float32
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (d *Device) wait(ctx context.Context, dur time.Duration) error {
	if d.Sleep != nil {
		return d.Sleep(ctx, dur)
	}
	return sleep(ctx, dur)
}

// Bringup initializes everything in order: network, store client, clock, display, banner.
// Errors wrapping ErrHalt mean a peripheral is missing; the caller should stop there.
func (d *Device) Bringup(ctx context.Context) error {
	if d.Log == nil {
		d.Log = diag.New(nil)
	}
	if d.Divider == (volt.Divider{}) {
		d.Divider = volt.Default
	}
	d.Log.Println("voltclock starting")

	params := wifi.Params{SSID: d.Config.WiFiSSID, Passphrase: d.Config.WiFiPassword}
	if err := wifi.Associate(ctx, d.Link, params, d.Log); err != nil {
		return err
	}

	if d.Counter == nil {
		c, err := store.New(d.Config.StoreHost, d.Config.StoreAuth, d.HTTP)
		if err != nil {
			return err
		}
		c.ReconnectWiFi(wifi.Watch(d.Link, params, d.Log))
		d.Counter = c
	}

	if _, err := rtc.Bringup(d.Clock, d.BuildTime, d.Log); err != nil {
		return fmt.Errorf("%w: %w", ErrHalt, err)
	}

	if d.ProbeDisplay != nil {
		if err := d.ProbeDisplay(); err != nil {
			d.Log.Println("SSD1306 allocation failed")
			return fmt.Errorf("%w: display: %w", ErrHalt, err)
		}
		d.Log.Println("display ok")
	}

	// the cycle owns the display from here on
	d.Log.Detach()
	d.Screen.Clear()
	d.Screen.Text(0, clockY, bannerText)
	_ = d.Screen.Flush()
	return d.wait(ctx, bannerDwell)
}

// Cycle runs one read-and-draw pass. Each source is read exactly once. The only error
// returned is ctx's, from the fixed delays.
func (d *Device) Cycle(ctx context.Context) error {
	d.volts = d.Divider.Volts(d.ADC.Read())
	d.Screen.Clear()
	now, clockErr := d.Clock.ReadTime()

	if n, err := d.Counter.GetInt(ctx, d.Config.CounterPath); err != nil {
		d.show(0, counterY, err.Error())
	} else {
		d.show(0, counterY, "counter = "+strconv.FormatInt(n, 10))
	}
	if err := d.wait(ctx, renderHold); err != nil {
		return err
	}

	if clockErr != nil {
		d.show(0, clockY, "rtc: "+clockErr.Error())
	} else {
		d.show(0, clockY, rtc.Format(now))
	}

	d.show(0, voltY, "volt = "+strconv.FormatFloat(float64(d.volts), 'f', 2, 32))

	delay := d.Config.CycleDelay
	if delay == 0 {
		delay = 500 * time.Millisecond
	}
	return d.wait(ctx, delay)
}

// Run cycles until ctx is done. On the board it never returns.
func (d *Device) Run(ctx context.Context) error {
	for {
		if err := d.Cycle(ctx); err != nil {
			return err
		}
	}
}

// Volts is the voltage computed in the most recent cycle.
func (d *Device) Volts() float32 {
	return d.volts
}

func (d *Device) show(x, y int16, s string) {
	d.Screen.Text(x, y, s)
	_ = d.Screen.Flush()
}
