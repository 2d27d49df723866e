package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lottiedoc/pkg/server"
	"github.com/matzehuels/lottiedoc/pkg/snapshot"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		backend string
		noStore bool
		flags   convertFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion and snapshot HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			opts, err := c.options(flags)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var store snapshot.Store
			storeDesc := "disabled"
			if !noStore {
				store, err = c.openStore(ctx, backend)
				if err != nil {
					return fmt.Errorf("open snapshot store: %w", err)
				}
				defer store.Close()
				storeDesc = c.storeName(backend)
			}

			srv, err := server.New(server.Config{
				Runner:       runner,
				Store:        store,
				Options:      opts,
				MaxBodyBytes: c.cfg.Server.MaxBodyBytes,
				Logger:       c.Logger,
			})
			if err != nil {
				return err
			}

			printKeyValue("Address", addr)
			printKeyValue("Formats", fmt.Sprint(opts.FormatNames()))
			printKeyValue("Snapshots", storeDesc)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&backend, "store", "", "snapshot store: file or mongo (default from config)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "disable the snapshot routes")
	flags.register(cmd, true)

	return cmd
}

func (c *CLI) storeName(backend string) string {
	if backend == "" {
		backend = c.cfg.Snapshot.Backend
	}
	return backend
}
