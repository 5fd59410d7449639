package manual

import "strings"

// Model identifies the product a manual belongs to.
type Model string

const ModelUnknown Model = "Unknown"

// knownModels is checked in order; both the full model name and the bare
// digits match, mirroring the vendor's filename conventions.
var knownModels = []struct {
	model  Model
	digits string
}{
	{"TDAI-1120", "1120"},
	{"TDAI-2170", "2170"},
	{"TDAI-3400", "3400"},
}

// DetectModel maps a manual filename to a product model. Metadata only:
// the result has no effect on segmentation.
func DetectModel(filename string) Model {
	for _, m := range knownModels {
		if strings.Contains(filename, string(m.model)) || strings.Contains(filename, m.digits) {
			return m.model
		}
	}
	return ModelUnknown
}
