package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jackvalmadre/go-voc-seg/voc"
)

func NewLabelsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print the class look-up table",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			return writeLabels(cc.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", textFormat, "Output format (text, yaml)")

	return cmd
}

func writeLabels(w io.Writer, format string) error {
	lut := voc.Labels()
	if format == yamlFormat {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(lut); err != nil {
			return err
		}
		return enc.Close()
	}

	buf := bufio.NewWriter(w)
	for _, id := range voc.LabelIDs() {
		if _, err := fmt.Fprintln(buf, id, lut[id]); err != nil {
			return err
		}
	}
	return buf.Flush()
}
