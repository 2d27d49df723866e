package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lottiedoc/pkg/snapshot"
)

// snapshotCommand creates the snapshot management command.
func (c *CLI) snapshotCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage golden document snapshots",
	}
	cmd.PersistentFlags().StringVar(&backend, "store", "", "snapshot store: file or mongo (default from config)")

	cmd.AddCommand(c.snapshotSaveCommand(&backend))
	cmd.AddCommand(c.snapshotVerifyCommand(&backend))
	cmd.AddCommand(c.snapshotListCommand(&backend))
	cmd.AddCommand(c.snapshotDeleteCommand(&backend))

	return cmd
}

// withStore opens the snapshot store for the duration of fn.
func (c *CLI) withStore(ctx context.Context, backend string, fn func(snapshot.Store) error) error {
	store, err := c.openStore(ctx, backend)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func (c *CLI) snapshotSaveCommand(backend *string) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "save <name> <scene.json>",
		Short: "Store the document of a scene as a golden snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, scenePath := args[0], args[1]
			if err := snapshot.ValidateName(name); err != nil {
				return err
			}

			opts, err := c.xmlOptions(flags)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			result, err := runner.ConvertFile(ctx, scenePath, opts)
			if err != nil {
				return err
			}

			return c.withStore(ctx, *backend, func(store snapshot.Store) error {
				snap, err := snapshot.Save(ctx, store, name, result)
				if err != nil {
					return err
				}
				printSuccess("Saved snapshot %s", StyleHighlight.Render(name))
				printDetail("id %s · scene %s", snap.ID, shortHash(snap.SceneHash))
				printNextStep("Verify with", fmt.Sprintf("%s snapshot verify %s %s", appName, name, scenePath))
				return nil
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

func (c *CLI) snapshotVerifyCommand(backend *string) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "verify <name> <scene.json>",
		Short: "Compare the document of a scene with a golden snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, scenePath := args[0], args[1]
			if err := snapshot.ValidateName(name); err != nil {
				return err
			}
			d, err := c.buildDocument(ctx, scenePath, flags)
			if err != nil {
				return err
			}

			return c.withStore(ctx, *backend, func(store snapshot.Store) error {
				diffs, err := snapshot.Verify(ctx, store, name, d)
				if len(diffs) > 0 {
					printDifferences(cmd.OutOrStdout(), diffs)
				}
				if err != nil {
					return err
				}
				printSuccess("%s matches snapshot %s", scenePath, StyleHighlight.Render(name))
				return nil
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

func (c *CLI) snapshotListCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), *backend, func(store snapshot.Store) error {
				snaps, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(snaps) == 0 {
					printInfo("No snapshots stored")
					return nil
				}
				printSnapshots(cmd.OutOrStdout(), snaps)
				return nil
			})
		},
	}
}

func (c *CLI) snapshotDeleteCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), *backend, func(store snapshot.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("Deleted snapshot %s", args[0])
				return nil
			})
		},
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
