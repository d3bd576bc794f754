package download

// defaultTag is substituted when a format id has no tag-table entry.
const defaultTag = "18"

var resolutionByTag = map[string]string{
	"18":  "360",
	"44":  "480",
	"22":  "720",
	"37":  "1080",
	"140": "only audio",
}

var tagByResolution = map[string]string{
	"360":  "18",
	"480":  "44",
	"720":  "22",
	"1080": "37",
}

// ResolutionForTag maps a format id to its resolution label. Unknown tags
// fall back to the default tag before lookup.
func ResolutionForTag(tag string) string {
	if _, ok := resolutionByTag[tag]; !ok {
		tag = defaultTag
	}
	return resolutionByTag[tag]
}

// TagForResolution maps a resolution label back to its format id. Only the
// four video resolutions have a reverse mapping.
func TagForResolution(resolution string) string {
	return tagByResolution[resolution]
}
