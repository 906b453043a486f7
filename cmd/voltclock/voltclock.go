//go:build tinygo

package main

import (
	"context"
	"machine"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/netdev"
	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/netlink/probe"
	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/voltclock-hardware/internal/adc"
	"github.com/ajanata/voltclock-hardware/internal/config"
	"github.com/ajanata/voltclock-hardware/internal/diag"
	"github.com/ajanata/voltclock-hardware/internal/panel"
	"github.com/ajanata/voltclock-hardware/internal/rtc"
	"github.com/ajanata/voltclock-hardware/internal/screen"
	"github.com/ajanata/voltclock-hardware/internal/volt"
)

// set with -ldflags "-X main.buildStamp=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var buildStamp string

// board is what differs between targets.
type board struct {
	i2c       *machine.I2C
	scl, sda  machine.Pin
	voltmeter machine.Pin
}

// nic joins the link and socket halves of the network device; the socket half reports our address.
type nic struct {
	netlink.Netlinker
	netdev.Netdever
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

// earlyPanic halts for good. Only a reset gets out of it.
func earlyPanic(err error) {
	for i := 0; ; i++ {
		blink()
		if i%5 == 0 {
			println(err.Error())
		}
	}
}

func run(b board) {
	_ = machine.Serial.Configure(machine.UARTConfig{BaudRate: 9600})
	log := diag.New(machine.Serial)
	blink()

	err := b.i2c.Configure(machine.I2CConfig{
		SCL:       b.scl,
		SDA:       b.sda,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		earlyPanic(err)
	}

	cfg := loadConfig(log)
	build, err := rtc.ParseBuildTime(buildStamp)
	if err != nil {
		log.Println(err.Error())
	}

	linker, dever := probe.Probe()
	disp := ssd1306.NewI2C(b.i2c)
	clock := ds3231.New(b.i2c)

	dev := &panel.Device{
		Config:    cfg,
		Log:       log,
		Link:      nic{linker, dever},
		Clock:     &clock,
		ADC:       adc.Configure(b.voltmeter, 10),
		Divider:   volt.Default,
		Screen:    screen.New(&disp),
		BuildTime: build,
		ProbeDisplay: func() error {
			return probeDisplay(b.i2c, &disp, cfg.DisplayAddr, log)
		},
	}

	ctx := context.Background()
	if err := dev.Bringup(ctx); err != nil {
		earlyPanic(err)
	}
	_ = dev.Run(ctx)
}

func loadConfig(log *diag.Logger) config.Config {
	var fs config.Opener
	flash, err := config.Mount(machine.Flash)
	if err != nil {
		log.Println("flash: " + err.Error())
	} else {
		defer flash.Unmount()
		fs = flash
	}

	cfg, err := config.Load(fs, config.Path)
	if err != nil {
		log.Println(err.Error() + ", using built-in settings")
	}
	if err := cfg.Validate(); err != nil {
		earlyPanic(err)
	}
	return cfg
}

// probeDisplay checks something acknowledges at addr before configuring the panel, since
// the driver itself never reports a missing display. Bring-up messages are mirrored onto it
// from then on.
func probeDisplay(bus *machine.I2C, disp *ssd1306.Device, addr uint16, log *diag.Logger) error {
	if err := bus.Tx(addr, []byte{0x00}, nil); err != nil {
		return err
	}
	disp.Configure(ssd1306.Config{Width: 128, Height: 64, Address: addr, VccState: ssd1306.SWITCHCAPVCC})
	disp.ClearBuffer()
	disp.ClearDisplay()

	buf, err := textbuf.New(disp, textbuf.FontSize6x8)
	if err != nil {
		return err
	}
	buf.AutoFlush = true
	log.Attach(buf)
	return nil
}
