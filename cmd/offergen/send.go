package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/config"
	"github.com/dmitrymomot/offerkit/pkg/email"
	"github.com/dmitrymomot/offerkit/pkg/export"
)

func newSendCmd(a *app) *cobra.Command {
	var (
		flags   exportFlags
		to      string
		subject string
		mailDir string
	)

	cmd := &cobra.Command{
		Use:   "send <file>",
		Short: "Email an offer proof",
		Long: `Send exports the offer (or collection) and emails it to --to. Postmark is
used when POSTMARK_SERVER_TOKEN and POSTMARK_ACCOUNT_TOKEN are set;
otherwise the message is written to $OFFERGEN_DEV_MAIL_DIR.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mailCfg email.Config
			if err := config.Load(&mailCfg); err != nil {
				return err
			}

			var sender email.EmailSender
			if mailCfg.HasPostmark() {
				s, err := email.NewPostmarkClient(mailCfg)
				if err != nil {
					return err
				}
				sender = s
			} else {
				if mailDir == "" {
					mailDir = a.cfg.DevMailDir
				}
				a.logger.Info("postmark not configured, writing mail to disk", slog.String("dir", mailDir))
				sender = email.NewDevSender(mailDir, email.WithDevClock(a.now))
			}

			offers, err := loadOffers(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			var mailOpts []export.MailOption
			if subject != "" {
				mailOpts = append(mailOpts, export.WithSubject(subject))
			}
			ex := export.New(
				export.WithSink(export.NewMailSink(sender, to, mailOpts...)),
				export.WithLogger(a.logger),
				export.WithClock(a.now),
				export.WithLocale(a.locale),
			)
			res, err := flags.run(cmd.Context(), ex, offers)
			printResult(cmd.OutOrStdout(), res, func(name string) string {
				return fmt.Sprintf("%s -> %s", name, to)
			})
			return err
		},
	}

	flags.register(cmd, export.FormatBoth)
	cmd.Flags().StringVar(&to, "to", "", "recipient address")
	cmd.Flags().StringVar(&subject, "subject", "", "subject prefix")
	cmd.Flags().StringVar(&mailDir, "mail-dir", "", "dev mail directory (default $OFFERGEN_DEV_MAIL_DIR)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
