package voc

import (
	"github.com/pkg/errors"
)

// Split names one of the segmentation image sets.
type Split string

const (
	Train    Split = "train"
	Val      Split = "val"
	TrainVal Split = "trainval"
)

// Splits lists every split in the order used by Pairs.
var Splits = []Split{Train, Val, TrainVal}

// ListFile returns the name of the file listing the images in the split.
func (s Split) ListFile() string {
	return string(s) + ".txt"
}

func (s Split) String() string { return string(s) }

// ParseSplit accepts "train", "val" or "trainval".
func ParseSplit(s string) (Split, error) {
	for _, split := range Splits {
		if string(split) == s {
			return split, nil
		}
	}
	return "", errors.Errorf("voc: unknown split %q", s)
}
