// Package wifi associates with an access point and keeps the association alive for the store client.
package wifi

import (
	"context"
	"net/netip"
	"sync/atomic"
	"time"

	"tinygo.org/x/drivers/netlink"

	"github.com/ajanata/voltclock-hardware/internal/diag"
)

// Link is the part of netlink.Netlinker used here.
type Link interface {
	NetConnect(params *netlink.ConnectParams) error
	NetDisconnect()
}

type notifier interface {
	NetNotify(cb func(netlink.Event))
}

// Addresser reports the address handed out by DHCP. netdev.Netdever satisfies it.
type Addresser interface {
	Addr() (netip.Addr, error)
}

type Params struct {
	SSID       string
	Passphrase string
	// ConnectTimeout bounds a single association attempt. Default 10s.
	ConnectTimeout time.Duration
	// Poll is the wait between failed attempts. Default 300ms.
	Poll time.Duration
}

func (p Params) withDefaults() Params {
	if p.ConnectTimeout <= 0 {
		p.ConnectTimeout = 10 * time.Second
	}
	if p.Poll <= 0 {
		p.Poll = 300 * time.Millisecond
	}
	return p
}

func (p Params) connectParams() *netlink.ConnectParams {
	return &netlink.ConnectParams{
		Ssid:           p.SSID,
		Passphrase:     p.Passphrase,
		AuthType:       netlink.AuthTypeWPA2,
		ConnectTimeout: p.ConnectTimeout,
	}
}

// Associate connects link to the configured network, retrying forever at p.Poll until it succeeds.
// A dot is logged for every failed attempt. Only ctx can stop it.
func Associate(ctx context.Context, link Link, p Params, log *diag.Logger) error {
	p = p.withDefaults()
	log.Print("Connecting to Wi-Fi")
	for {
		if err := link.NetConnect(p.connectParams()); err == nil {
			break
		}
		log.Print(".")
		select {
		case <-ctx.Done():
			log.Println("")
			return ctx.Err()
		case <-time.After(p.Poll):
		}
	}
	log.Println("")

	if a, ok := link.(Addresser); ok {
		if ip, err := a.Addr(); err == nil {
			log.Println("Connected with IP: " + ip.String())
		}
	}
	return nil
}

// Watcher re-associates a dropped link on demand.
type Watcher struct {
	link   Link
	params Params
	log    *diag.Logger
	down   atomic.Bool
}

// Watch starts tracking link state. Links that can notify report drops on their own;
// for the rest, callers mark the link down after a transport failure.
func Watch(link Link, p Params, log *diag.Logger) *Watcher {
	w := &Watcher{link: link, params: p.withDefaults(), log: log}
	if n, ok := link.(notifier); ok {
		n.NetNotify(w.notify)
	}
	return w
}

func (w *Watcher) notify(e netlink.Event) {
	switch e {
	case netlink.EventNetUp:
		w.down.Store(false)
	case netlink.EventNetDown:
		w.down.Store(true)
	}
}

func (w *Watcher) Up() bool {
	return !w.down.Load()
}

func (w *Watcher) MarkDown() {
	w.down.Store(true)
}

// Reconnect makes one association attempt if the link is down, and does nothing otherwise.
func (w *Watcher) Reconnect() error {
	if !w.down.Load() {
		return nil
	}
	w.link.NetDisconnect()
	if err := w.link.NetConnect(w.params.connectParams()); err != nil {
		return err
	}
	w.log.Println("Wi-Fi reconnected")
	w.down.Store(false)
	return nil
}
