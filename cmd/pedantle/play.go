package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mariaschitik/ru-pedantle/internal/console"
	"github.com/mariaschitik/ru-pedantle/internal/session"
)

func newPlayCommand(opts *rootOptions) *cobra.Command {
	var article int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			corpus, err := loadCorpus(ctx, opts.settings)
			if err != nil {
				return err
			}
			matcher, err := buildMatcher(opts.settings)
			if err != nil {
				return err
			}

			presenter := console.NewPresenter(os.Stdin, os.Stdout)
			controller := session.NewController(corpus, matcher, presenter, opts.settings.MaskRune())
			if article > 0 {
				if err := controller.Jump(article); err != nil {
					return err
				}
			}
			return controller.Run(ctx)
		},
	}

	cmd.Flags().IntVar(&article, "article", 0, "1-based article to start from")
	return cmd
}
