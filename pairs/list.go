package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jackvalmadre/go-voc-seg/voc"
)

// A set of pairs and the split it came from.
type splitPairs struct {
	Split voc.Split  `yaml:"split"`
	Pairs []voc.Pair `yaml:"pairs"`
}

func NewListCmd() *cobra.Command {
	var (
		splits []string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list <root>",
		Short: "List image and annotation pairs",
		Long: `List image and annotation pairs of one or more sets.

Without --split all of train, val and trainval are listed in that order.
The text format prints "<set> <image> <annotation>" per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			sets, err := loadSets(args[0], splits)
			if err != nil {
				return err
			}

			if output != "" {
				slog.Info("save list of pairs", "file", output)
				return savePairs(sets, format, output)
			}
			return writePairs(cc.OutOrStdout(), sets, format)
		},
	}

	cmd.Flags().StringSliceVar(&splits, "split", nil, "Sets to list (train, val, trainval)")
	cmd.Flags().StringVar(&format, "format", textFormat, "Output format (text, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func loadSets(dir string, names []string) ([]splitPairs, error) {
	if len(names) == 0 {
		all, err := voc.Pairs(dir)
		if err != nil {
			return nil, err
		}
		sets := make([]splitPairs, len(voc.Splits))
		for i, split := range voc.Splits {
			sets[i] = splitPairs{Split: split, Pairs: all[i]}
			slog.Info("loaded pairs", "split", split.String(), "pairs", len(all[i]))
		}
		return sets, nil
	}

	sets := make([]splitPairs, 0, len(names))
	for _, name := range names {
		split, err := voc.ParseSplit(name)
		if err != nil {
			return nil, err
		}
		slog.Debug("read list", "file", voc.ListFile(dir, split))
		pairs, err := voc.LoadSplit(dir, split)
		if err != nil {
			return nil, err
		}
		slog.Info("loaded pairs", "split", split.String(), "pairs", len(pairs))
		sets = append(sets, splitPairs{Split: split, Pairs: pairs})
	}
	return sets, nil
}
