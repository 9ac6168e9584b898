package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/config"
	"github.com/dmitrymomot/offerkit/pkg/export"
	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/storage"
)

// exportFlags are shared by export and send.
type exportFlags struct {
	index     int
	format    string
	timestamp bool
	name      string
}

func (f *exportFlags) register(cmd *cobra.Command, defaultFormat export.Format) {
	cmd.Flags().IntVarP(&f.index, "index", "i", -1, "offer index; negative exports the collection")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(defaultFormat), "html, txt or both")
	cmd.Flags().BoolVar(&f.timestamp, "timestamp", true, "add the date to file names")
	cmd.Flags().StringVar(&f.name, "name", "", "custom file name without extension")
}

func (f *exportFlags) options() export.Options {
	opts := export.DefaultOptions()
	opts.Format = export.Format(f.format)
	opts.IncludeTimestamp = f.timestamp
	opts.CustomFilename = f.name
	return opts
}

// run exports one offer or the collection, depending on the index flag.
func (f *exportFlags) run(ctx context.Context, ex *export.Exporter, offers []offer.Offer) (export.Result, error) {
	selected, err := pick(offers, f.index)
	if err != nil {
		return export.Result{}, err
	}
	if f.index >= 0 {
		return ex.ExportOffer(ctx, selected[0], f.options())
	}
	return ex.ExportAll(ctx, selected, f.options())
}

func newExportCmd(a *app) *cobra.Command {
	var (
		flags     exportFlags
		dir       string
		clipboard bool
		publish   bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write offer documents to a directory",
		Long: `Export writes HTML and/or plain text files for the offer at --index, or
for every complete offer as one collection. Incomplete offers are skipped
from collections. With --clipboard the HTML is also copied; with --publish
the files are uploaded to S3-compatible storage as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := loadOffers(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.OutputDir
			}

			opts := []export.Option{
				export.WithSink(export.NewDirSink(dir)),
				export.WithLogger(a.logger),
				export.WithClock(a.now),
				export.WithLocale(a.locale),
			}
			if clipboard {
				opts = append(opts, export.WithSink(export.NewClipboardSink()))
			}
			var published *export.PublishSink
			if publish {
				var s3Cfg storage.Config
				if err := config.Load(&s3Cfg); err != nil {
					return err
				}
				store, err := storage.NewS3(cmd.Context(), s3Cfg)
				if err != nil {
					return err
				}
				published = export.NewPublishSink(store, s3Cfg.Prefix)
				opts = append(opts, export.WithSink(published))
			}

			res, err := flags.run(cmd.Context(), export.New(opts...), offers)
			printResult(cmd.OutOrStdout(), res, func(name string) string {
				return filepath.Join(dir, name)
			})
			if published != nil {
				for _, obj := range published.Objects() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("↑"), obj.URL)
				}
			}
			return err
		},
	}

	flags.register(cmd, export.FormatHTML)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default $OFFERGEN_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&clipboard, "clipboard", false, "also copy the HTML to the clipboard")
	cmd.Flags().BoolVar(&publish, "publish", false, "also upload to the bucket in $OFFERGEN_S3_BUCKET")
	return cmd
}

// printResult lists produced files and skipped offers.
func printResult(w io.Writer, res export.Result, location func(string) string) {
	for _, f := range res.Files {
		fmt.Fprintf(w, "%s %s\n", green("✓"), location(f.Name))
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "%s skipped offer %d: missing %s\n",
			yellow("!"), s.Index, strings.Join(s.MissingFields, ", "))
	}
}
