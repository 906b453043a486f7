package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ajanata/voltclock-hardware/internal/config"
)

// settings is the TOML layout, e.g.
//
//	[wifi]
//	ssid = "lab"
//	password = "..."
//
//	[store]
//	host = "example-default-rtdb.firebaseio.com"
//	auth = "..."
//	counter_path = "/counter"
//
//	[display]
//	addr = 0x3C
//
//	[cycle]
//	delay_ms = 500
type settings struct {
	WiFi struct {
		SSID     string `toml:"ssid"`
		Password string `toml:"password"`
	} `toml:"wifi"`
	Store struct {
		Host        string `toml:"host"`
		Auth        string `toml:"auth"`
		CounterPath string `toml:"counter_path"`
	} `toml:"store"`
	Display struct {
		Addr int `toml:"addr"`
	} `toml:"display"`
	Cycle struct {
		DelayMS int `toml:"delay_ms"`
	} `toml:"cycle"`
}

// loadSettings reads a TOML settings file, fills unset fields with the firmware defaults,
// and validates the result. Keys it does not know are returned so they can be warned about.
func loadSettings(path string) (config.Config, []string, error) {
	var s settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return config.Config{}, nil, err
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}

	if s.Display.Addr < 0 || s.Display.Addr > 0xFFFF {
		return config.Config{}, unknown, fmt.Errorf("%w: display address %d out of range", config.ErrInvalid, s.Display.Addr)
	}
	c := config.Config{
		WiFiSSID:     s.WiFi.SSID,
		WiFiPassword: s.WiFi.Password,
		StoreHost:    s.Store.Host,
		StoreAuth:    s.Store.Auth,
		CounterPath:  s.Store.CounterPath,
		DisplayAddr:  uint16(s.Display.Addr),
		CycleDelay:   time.Duration(s.Cycle.DelayMS) * time.Millisecond,
	}.Merge(config.Default())

	if err := c.Validate(); err != nil {
		return config.Config{}, unknown, err
	}
	return c, unknown, nil
}

func newConfigCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "config <settings.toml>",
		Short: "Validate a TOML settings file and write the JSON the firmware reads",
		Long: "Validate a TOML settings file and write it out as " + config.Path + ".\n" +
			"Copy the result onto the board's flash filesystem.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, unknown, err := loadSettings(args[0])
			for _, k := range unknown {
				warn(cmd.ErrOrStderr(), "unknown key "+k)
			}
			if err != nil {
				return err
			}

			data, err := config.Encode(c)
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(outPath, append(data, '\n'), 0o600); err != nil {
				return err
			}
			ok(cmd.OutOrStdout(), fmt.Sprintf("wrote %s (ssid %s, store %s%s)", outPath, c.WiFiSSID, c.StoreHost, c.CounterPath))
			if c.StoreAuth == "" {
				warn(cmd.OutOrStdout(), "no store auth; the database must allow unauthenticated reads")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	return cmd
}

// redact keeps enough of a secret to tell two apart.
func redact(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
