package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"

	"github.com/ajanata/voltclock-hardware/internal/config"
	"github.com/ajanata/voltclock-hardware/internal/store"
)

// newHTTPClient talks HTTP/2 straight to the database, which is what it serves.
var newHTTPClient = func() *http.Client {
	return &http.Client{
		Transport: &http2.Transport{},
		Timeout:   10 * time.Second,
	}
}

// probe fetches the counter the way the firmware does and reports what the display would show.
func probe(ctx context.Context, w io.Writer, c config.Config, hc *http.Client) error {
	client, err := store.New(c.StoreHost, c.StoreAuth, hc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "store %s, auth %s, path %s\n", c.StoreHost, redact(c.StoreAuth), c.CounterPath)

	start := time.Now()
	r, err := client.Get(ctx, c.CounterPath)
	took := time.Since(start).Round(time.Millisecond)
	if err != nil {
		return fmt.Errorf("%w after %s, display shows %q", err, took, err.Error())
	}
	if r.Type != store.TypeInt {
		return fmt.Errorf("%s holds a %s %s, display shows %q", c.CounterPath, r.Type, r.Raw, store.ErrTypeMismatch.Error())
	}
	ok(w, fmt.Sprintf("%s = %s (%s, %s)", c.CounterPath, strconv.FormatInt(r.Int, 10), r.Type, took))
	return nil
}

func newProbeCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe <settings.toml>",
		Short: "Fetch the counter from the store using the settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, unknown, err := loadSettings(args[0])
			for _, k := range unknown {
				warn(cmd.ErrOrStderr(), "unknown key "+k)
			}
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return probe(ctx, cmd.OutOrStdout(), c, newHTTPClient())
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "give up after this long")
	return cmd
}
