package voc

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Pair holds the image and the class annotation of one example.
type Pair struct {
	Image      string `yaml:"image"`
	Annotation string `yaml:"annotation"`
}

// Pairs loads the image and annotation paths of every split.
//
// The result has one element per split in the order of Splits.
// Images and annotations are matched by their position in the list file.
// Nothing is checked for existence.
func Pairs(dir string) ([][]Pair, error) {
	train, val, trainval := ListFiles(dir)
	names, err := ReadLinesAll([]string{train, val, trainval})
	if err != nil {
		return nil, err
	}

	imgs := ExpandPathsAll(names, filepath.Join(dir, ImageDir), ImageExt)
	annots := ExpandPathsAll(names, filepath.Join(dir, AnnotationDir), AnnotationExt)

	sets := make([][]Pair, len(Splits))
	for i, split := range Splits {
		sets[i], err = zip(split, imgs[i], annots[i])
		if err != nil {
			return nil, err
		}
	}
	return sets, nil
}

// LoadSplit loads the pairs of a single split.
//
// Looks in <dir>/ImageSets/Segmentation/<set>.txt.
func LoadSplit(dir string, set Split) ([]Pair, error) {
	names, err := ReadLines(ListFile(dir, set))
	if err != nil {
		return nil, err
	}
	imgs := ExpandPaths(names, filepath.Join(dir, ImageDir), ImageExt)
	annots := ExpandPaths(names, filepath.Join(dir, AnnotationDir), AnnotationExt)
	return zip(set, imgs, annots)
}

func zip(set Split, imgs, annots []string) ([]Pair, error) {
	if len(imgs) != len(annots) {
		return nil, errors.Wrapf(ErrLengthMismatch, "set %s: %d images, %d annotations", set, len(imgs), len(annots))
	}
	pairs := make([]Pair, len(imgs))
	for i := range imgs {
		pairs[i] = Pair{Image: imgs[i], Annotation: annots[i]}
	}
	return pairs, nil
}
