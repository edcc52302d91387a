// Command pairs lists the (image, annotation) pairs of a Pascal VOC
// segmentation root and prints the class look-up table.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
