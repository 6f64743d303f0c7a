// Package civitai fetches model metadata from the Civitai REST API,
// normalizes the two response shapes (parent model vs model version) into a
// single record and renders it to the terminal.
package civitai

// ModelRecord is the normalized form of either endpoint's response.
type ModelRecord struct {
	ID           int64
	ParentID     int64  // set only when the fetched entity was a version
	ParentName   string // ditto
	Name         string
	Description  string // raw HTML as returned by the API
	Type         string
	BaseModel    string
	DownloadURL  string
	Tags         []string
	Creator      string
	TrainedWords string // comma-joined trigger words, "None" when absent
	NSFW         bool
	Metadata     Metadata
	Versions     []VersionSummary // empty when the record itself is a version
	Images       []Image
}

// VersionSummary is derived from a modelVersions entry, taking only the
// first file and first image of each.
type VersionSummary struct {
	ID          int64
	Name        string
	BaseModel   string
	DownloadURL string
	Image       string
	File        string
}

type Metadata struct {
	Stats  string // pre-formatted "N downloads, N likes, N dislikes"
	Size   string // human-readable, converted from sizeKB
	Format string // defaults to ".safetensors"
	File   string
}

type Image struct {
	URL       string
	NSFWLevel int64
}
