// Package main provides denctl, the command-line client for den content and
// for dens hosted by a den server.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
)

// options carries the persistent flags, resolved through viper so every flag
// can also come from a GOBLINDEN_ environment variable.
type options struct {
	v    *viper.Viper
	dial dialFunc
}

// dialFunc opens the connection for den commands.
type dialFunc func(target string) (*grpc.ClientConn, error)

func (o *options) addr() string           { return o.v.GetString("addr") }
func (o *options) json() bool             { return o.v.GetBool("json") }
func (o *options) timeout() time.Duration { return o.v.GetDuration("timeout") }
func (o *options) catalogDir() string     { return o.v.GetString("catalog-dir") }
func (o *options) layoutFile() string     { return o.v.GetString("layout-file") }
func (o *options) scriptDir() string      { return o.v.GetString("script-dir") }

// withClient dials the den server and runs fn with a deadline.
func (o *options) withClient(cmd *cobra.Command, fn func(ctx context.Context, c denv1.DenServiceClient) error) error {
	conn, err := o.dial(o.addr())
	if err != nil {
		return err
	}
	defer conn.Close()
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout())
	defer cancel()
	return fn(ctx, denv1.NewDenServiceClient(conn))
}

// newRootCmd builds the command tree. A nil dial uses denv1.Dial.
func newRootCmd(dial dialFunc) *cobra.Command {
	if dial == nil {
		dial = func(target string) (*grpc.ClientConn, error) { return denv1.Dial(target) }
	}
	o := &options{v: viper.New(), dial: dial}
	o.v.SetEnvPrefix("GOBLINDEN")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "denctl",
		Short: "Inspect den content and manage hosted dens",
		Long: `denctl validates the building catalog and den layout on disk, and drives
dens hosted by a den server: build, demolish, staff and collect.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String("addr", "127.0.0.1:50061", "den server gRPC address")
	pf.Bool("json", false, "output JSON")
	pf.Duration("timeout", 10*time.Second, "per-command RPC deadline")
	pf.String("catalog-dir", "content/buildings", "building catalog directory")
	pf.String("layout-file", "content/dens/default.yaml", "den layout file")
	pf.String("script-dir", "content/scripts/unlocks", "unlock script directory (empty = none)")
	for _, name := range []string{"addr", "json", "timeout", "catalog-dir", "layout-file", "script-dir"} {
		_ = o.v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(catalogCmd(o))
	root.AddCommand(layoutCmd(o))
	root.AddCommand(denCmd(o))
	root.AddCommand(turnCmd(o))
	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
