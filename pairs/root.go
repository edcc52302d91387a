package main

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/jackvalmadre/go-voc-seg/internal/log"
)

const (
	shortDesc = "Lists image and annotation files of Pascal VOC segmentation sets."
	longDesc  = `Lists image and annotation files of Pascal VOC segmentation sets.

The root directory is an extracted VOC release (usually e.g. VOC2012)
containing ImageSets/Segmentation, JPEGImages and SegmentationClass.
Files are paired by their position in the set's list file.
Nothing is checked for existence.
`
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pairs",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewLabelsCmd())

	return cmd
}
