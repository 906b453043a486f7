package wifi

import (
	"bytes"
	"context"
	"errors"
	"net/netip"
	"strings"
	"testing"
	"time"

	"tinygo.org/x/drivers/netlink"

	"github.com/ajanata/voltclock-hardware/internal/diag"
)

type fakeLink struct {
	failures    int
	connects    int
	disconnects int
	last        *netlink.ConnectParams
	cb          func(netlink.Event)
}

func (f *fakeLink) NetConnect(p *netlink.ConnectParams) error {
	f.connects++
	f.last = p
	if f.failures > 0 {
		f.failures--
		return errors.New("connect failed")
	}
	return nil
}

func (f *fakeLink) NetDisconnect() { f.disconnects++ }

type notifyingLink struct{ fakeLink }

func (n *notifyingLink) NetNotify(cb func(netlink.Event)) { n.cb = cb }

type addrLink struct{ fakeLink }

func (a *addrLink) Addr() (netip.Addr, error) { return netip.MustParseAddr("192.168.1.50"), nil }

func TestAssociateRetriesUntilConnected(t *testing.T) {
	var out bytes.Buffer
	link := &addrLink{fakeLink{failures: 3}}
	err := Associate(context.Background(), link, Params{SSID: "lab", Passphrase: "secret", Poll: time.Millisecond}, diag.New(&out))
	if err != nil {
		t.Fatal(err)
	}
	if link.connects != 4 {
		t.Fatalf("NetConnect called %d times, want 4", link.connects)
	}
	if link.last.Ssid != "lab" || link.last.Passphrase != "secret" {
		t.Fatalf("connect params = %+v", link.last)
	}
	if !strings.Contains(out.String(), "Wi-Fi...\r\n") {
		t.Fatalf("expected one dot per failure, got %q", out.String())
	}
	if !strings.Contains(out.String(), "192.168.1.50") {
		t.Fatalf("IP not reported: %q", out.String())
	}
}

func TestAssociateStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	link := &fakeLink{failures: 1 << 30}
	err := Associate(ctx, link, Params{Poll: time.Millisecond}, diag.New(nil))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if link.connects < 2 {
		t.Fatalf("NetConnect called %d times, want repeated attempts", link.connects)
	}
}

func TestParamsDefaults(t *testing.T) {
	p := Params{}.withDefaults()
	if p.Poll != 300*time.Millisecond || p.ConnectTimeout != 10*time.Second {
		t.Fatalf("defaults = %+v", p)
	}
}

func TestWatcherReconnectOnlyWhenDown(t *testing.T) {
	link := &fakeLink{}
	w := Watch(link, Params{SSID: "lab"}, diag.New(nil))

	if err := w.Reconnect(); err != nil {
		t.Fatal(err)
	}
	if link.connects != 0 {
		t.Fatalf("reconnected a link that was up")
	}

	w.MarkDown()
	if w.Up() {
		t.Fatal("Up() after MarkDown")
	}
	if err := w.Reconnect(); err != nil {
		t.Fatal(err)
	}
	if link.connects != 1 || link.disconnects != 1 {
		t.Fatalf("connects=%d disconnects=%d, want 1/1", link.connects, link.disconnects)
	}
	if !w.Up() {
		t.Fatal("link still down after successful reconnect")
	}
}

func TestWatcherReconnectFailureStaysDown(t *testing.T) {
	link := &fakeLink{failures: 1}
	w := Watch(link, Params{}, diag.New(nil))
	w.MarkDown()
	if err := w.Reconnect(); err == nil {
		t.Fatal("expected reconnect error")
	}
	if w.Up() {
		t.Fatal("Up() after failed reconnect")
	}
}

func TestWatcherFollowsNotifications(t *testing.T) {
	link := &notifyingLink{}
	w := Watch(link, Params{}, diag.New(nil))
	if link.cb == nil {
		t.Fatal("watcher did not register for notifications")
	}
	link.cb(netlink.EventNetDown)
	if w.Up() {
		t.Fatal("Up() after EventNetDown")
	}
	link.cb(netlink.EventNetUp)
	if !w.Up() {
		t.Fatal("!Up() after EventNetUp")
	}
}
