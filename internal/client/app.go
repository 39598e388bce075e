package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-wallet-issuer/internal/adapter"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/spf13/cobra"
)

type App struct {
	adapter adapter.IssuerAdapter
	in      io.Reader
	out     io.Writer

	logger *logger.Logger
}

func NewApp(issuer adapter.IssuerAdapter, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: issuer, in: in, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// itemFlags address one item of one kind.
type itemFlags struct {
	kind   string
	typeID string
	serial string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", models.KindPass.String(), "item kind: pass or order")
	cmd.Flags().StringVarP(&f.typeID, "type", "t", "", "type identifier")
	cmd.Flags().StringVarP(&f.serial, "serial", "s", "", "serial number")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("serial")
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "issuerctl",
		Short:         "Administers items of a running wallet issuer",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)

	root.AddCommand(
		a.versionCommand(),
		a.createCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.bundleCommand(),
		a.tokensCommand(),
		a.pushCommand(),
		a.sweepCommand(),
	)

	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, v)
			return err
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	var kind, file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item from a JSON body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}

			var req models.CreateItemRequest
			if err = a.readBody(file, &req); err != nil {
				return err
			}

			item, err := a.adapter.CreateItem(cmd.Context(), k, req)
			if err != nil {
				return err
			}

			a.logger.Debug().Str("serial", item.ID.String()).Msg("item created")
			return a.printJSON(item)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", models.KindPass.String(), "item kind: pass or order")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON body, - for stdin")

	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var item itemFlags
	var file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the content of an item and notify its devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(item.kind)
			if err != nil {
				return err
			}

			var req models.UpdateItemRequest
			if err = a.readBody(file, &req); err != nil {
				return err
			}

			updated, err := a.adapter.UpdateItem(cmd.Context(), k, item.typeID, item.serial, req)
			if err != nil {
				return err
			}
			return a.printJSON(updated)
		},
	}
	item.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON body, - for stdin")

	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	var item itemFlags

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an item with its registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(item.kind)
			if err != nil {
				return err
			}
			return a.adapter.DeleteItem(cmd.Context(), k, item.typeID, item.serial)
		},
	}
	item.register(cmd)

	return cmd
}

func (a *App) bundleCommand() *cobra.Command {
	var kind, typeID, output string

	cmd := &cobra.Command{
		Use:   "bundle SERIAL...",
		Short: "Download one archive holding the bundles of several items",
		RunE: func(cmd *cobra.Command, serials []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			if len(serials) == 0 {
				return ErrNoSerials
			}

			data, err := a.adapter.BatchBundle(cmd.Context(), k, models.BatchBundleRequest{
				TypeIdentifier: typeID,
				SerialNumbers:  serials,
			})
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = a.out.Write(data)
				return err
			}
			if output == "" {
				return ErrOutputNeeded
			}
			if err = os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			a.logger.Info().Str("file", output).Int("items", len(serials)).Msg("bundle written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", models.KindPass.String(), "item kind: pass or order")
	cmd.Flags().StringVarP(&typeID, "type", "t", "", "type identifier shared by every item")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archive path, - for stdout")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *App) tokensCommand() *cobra.Command {
	var item itemFlags

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List push tokens registered for an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(item.kind)
			if err != nil {
				return err
			}

			tokens, err := a.adapter.PushTokens(cmd.Context(), k, item.typeID, item.serial)
			if err != nil {
				return err
			}
			return a.printJSON(models.PushTokensResponse{PushTokens: tokens})
		},
	}
	item.register(cmd)

	return cmd
}

func (a *App) pushCommand() *cobra.Command {
	var item itemFlags

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Notify every device registered for an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(item.kind)
			if err != nil {
				return err
			}
			return a.adapter.SendPush(cmd.Context(), k, item.typeID, item.serial)
		},
	}
	item.register(cmd)

	return cmd
}

func (a *App) sweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete devices without registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deleted, err := a.adapter.SweepOrphanDevices(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(models.OrphanSweepResponse{Deleted: deleted})
		},
	}
}

func parseKind(name string) (models.Kind, error) {
	kind := models.Kind(name)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// readBody decodes JSON from path, or from the input stream when path
// is "-".
func (a *App) readBody(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if len(data) == 0 {
		return ErrEmptyBody
	}

	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
