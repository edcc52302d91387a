package voc

import (
	"path/filepath"
)

// Fixed layout of an extracted VOC root (usually e.g. VOC2012).
const (
	ListDir       = "ImageSets/Segmentation"
	ImageDir      = "JPEGImages"
	AnnotationDir = "SegmentationClass"

	ImageExt      = "jpg"
	AnnotationExt = "png"
)

// Returns <dir>/ImageSets/Segmentation/<set>.txt.
func ListFile(dir string, set Split) string {
	return filepath.Join(dir, filepath.FromSlash(ListDir), set.ListFile())
}

// ListFiles returns the paths of the train, val and trainval lists.
// It does not touch the filesystem.
func ListFiles(dir string) (train, val, trainval string) {
	return ListFile(dir, Train), ListFile(dir, Val), ListFile(dir, TrainVal)
}

// Returns <dir>/JPEGImages/<img>.jpg.
func ImageFile(dir, img string) string {
	return expand(filepath.Join(dir, ImageDir), img, ImageExt)
}

// Returns <dir>/SegmentationClass/<img>.png.
func AnnotationFile(dir, img string) string {
	return expand(filepath.Join(dir, AnnotationDir), img, AnnotationExt)
}

// ExpandPaths turns every name into <folder>/<name>.<ext>, keeping order.
func ExpandPaths(names []string, folder, ext string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = expand(folder, name, ext)
	}
	return paths
}

// ExpandPathsAll applies ExpandPaths to each list.
func ExpandPathsAll(lists [][]string, folder, ext string) [][]string {
	paths := make([][]string, len(lists))
	for i, names := range lists {
		paths[i] = ExpandPaths(names, folder, ext)
	}
	return paths
}

func expand(folder, name, ext string) string {
	return filepath.Join(folder, name) + "." + ext
}
