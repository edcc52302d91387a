package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	textFormat = "text"
	yamlFormat = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case textFormat, yamlFormat:
		return nil
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

func savePairs(sets []splitPairs, format, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := writePairs(file, sets, format); err != nil {
		return err
	}
	return file.Close()
}

func writePairs(w io.Writer, sets []splitPairs, format string) error {
	buf := bufio.NewWriter(w)

	if format == yamlFormat {
		enc := yaml.NewEncoder(buf)
		if err := enc.Encode(sets); err != nil {
			return errors.Wrap(err, "encode pairs")
		}
		if err := enc.Close(); err != nil {
			return err
		}
		return buf.Flush()
	}

	for _, set := range sets {
		for _, pair := range set.Pairs {
			if _, err := fmt.Fprintln(buf, set.Split, pair.Image, pair.Annotation); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}
