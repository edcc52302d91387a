package voc

// Ambiguous is the label of pixels along object boundaries and
// regions that should not count towards evaluation.
const Ambiguous = 255

// Indexed by class id.
var classNames = [...]string{
	"background",
	"aeroplane",
	"bicycle",
	"bird",
	"boat",
	"bottle",
	"bus",
	"car",
	"cat",
	"chair",
	"cow",
	"diningtable",
	"dog",
	"horse",
	"motorbike",
	"person",
	"potted-plant",
	"sheep",
	"sofa",
	"train",
	"tv/monitor",
}

const ambiguousName = "ambiguous-region"

// Labels returns the segmentation look-up table from class id to name.
//
// Ids 0 to 20 are the background and the twenty object classes.
// Id 255 marks ambiguous regions.
// Every call returns a new map.
func Labels() map[int]string {
	lut := make(map[int]string, len(classNames)+1)
	for id, name := range classNames {
		lut[id] = name
	}
	lut[Ambiguous] = ambiguousName
	return lut
}

// LabelIDs returns the ids in the look-up table in increasing order.
func LabelIDs() []int {
	ids := make([]int, 0, len(classNames)+1)
	for id := range classNames {
		ids = append(ids, id)
	}
	ids = append(ids, Ambiguous)
	return ids
}

// LabelName returns the name of a class id.
func LabelName(id int) (string, bool) {
	if id == Ambiguous {
		return ambiguousName, true
	}
	if id < 0 || id >= len(classNames) {
		return "", false
	}
	return classNames[id], true
}

// LabelID returns the class id with the given name.
func LabelID(name string) (int, bool) {
	if name == ambiguousName {
		return Ambiguous, true
	}
	for id, n := range classNames {
		if n == name {
			return id, true
		}
	}
	return -1, false
}
