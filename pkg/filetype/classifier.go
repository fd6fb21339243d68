package filetype

// Classification is the outcome of classifying one entry. FileType is nil for
// files nobody recognizes.
type Classification struct {
	FileType    *string
	Previewable bool
}

type Classifier struct {
	detector Detector
}

func NewClassifier(detector Detector) *Classifier {
	return &Classifier{detector: detector}
}

// Classify decides the type of an entry from its path alone. Directories are
// never previewable, whatever their name looks like.
func (c *Classifier) Classify(path string, isDir bool) Classification {
	if isDir {
		t := TypeDirectory
		return Classification{FileType: &t}
	}

	t, ok := c.detector.Detect(path)
	if !ok {
		return Classification{}
	}
	return Classification{FileType: &t, Previewable: true}
}
