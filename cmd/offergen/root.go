package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/logger"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "offergen",
		Short: "Generate email-safe automotive offer HTML",
		Long: `offergen turns offer files (YAML or JSON) into self-contained HTML
documents for dealership email campaigns.

Offer files hold a single offer, a list of offers, or a document with an
"offers" key.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.ErrOrStderr()); err != nil {
				return err
			}
			cmd.SetContext(logger.WithRunID(cmd.Context(), uuid.NewString()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newNewCmd(a),
		newValidateCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
		newSendCmd(a),
		newQRCmd(a),
		newVariationsCmd(a),
		newLayoutsCmd(a),
	)
	return root
}
