package civitai

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

// Normalize flattens either response shape into a ModelRecord. The input is
// version-shaped iff it carries a "model" key; that single check selects
// every shape-dependent lookup path below. Missing fields at any depth
// resolve to their zero value, never an error.
func Normalize(raw []byte) ModelRecord {
	root := gjson.ParseBytes(raw)
	isVersion := root.Get("model").Exists()

	pick := func(versionPath, modelPath string) gjson.Result {
		if isVersion {
			return root.Get(versionPath)
		}
		return root.Get(modelPath)
	}

	record := ModelRecord{
		ID:           root.Get("id").Int(),
		Name:         root.Get("name").String(),
		Description:  root.Get("description").String(),
		Type:         pick("model.type", "type").String(),
		BaseModel:    root.Get("baseModel").String(),
		DownloadURL:  pick("downloadUrl", "modelVersions.0.downloadUrl").String(),
		Tags:         stringList(root.Get("tags")),
		Creator:      root.Get("creator.username").String(),
		TrainedWords: trainedWords(pick("trainedWords", "modelVersions.0.trainedWords")),
		NSFW:         root.Get("nsfw").Bool(),
		Metadata:     metadata(root, isVersion),
		Images:       imageList(pick("images", "modelVersions.0.images")),
	}

	if isVersion {
		record.ParentID = root.Get("modelId").Int()
		record.ParentName = root.Get("model.name").String()
	} else {
		record.Versions = versionSummaries(root.Get("modelVersions"))
	}

	return record
}

func metadata(root gjson.Result, isVersion bool) Metadata {
	statsPath := "stats"
	filesPath := "modelVersions.0.files.0"
	if isVersion {
		statsPath = "model.stats"
		filesPath = "files.0"
	}

	format := root.Get(filesPath + ".metadata.format")
	formatValue := ".safetensors"
	if format.Exists() {
		formatValue = format.String()
	}

	return Metadata{
		Stats: fmt.Sprintf("%s downloads, %s likes, %s dislikes",
			root.Get(statsPath+".downloadCount").String(),
			root.Get(statsPath+".thumbsUpCount").String(),
			root.Get(statsPath+".thumbsDownCount").String()),
		Size:   convertKB(root.Get(filesPath + ".sizeKB")),
		Format: formatValue,
		File:   root.Get(filesPath + ".name").String(),
	}
}

// versionSummaries keeps the entries in API order, taking only the first
// file and first image of each.
func versionSummaries(versions gjson.Result) []VersionSummary {
	var out []VersionSummary
	for _, v := range versions.Array() {
		out = append(out, VersionSummary{
			ID:          v.Get("id").Int(),
			Name:        v.Get("name").String(),
			BaseModel:   v.Get("baseModel").String(),
			DownloadURL: v.Get("files.0.downloadUrl").String(),
			Image:       v.Get("images.0.url").String(),
			File:        v.Get("files.0.name").String(),
		})
	}
	return out
}

func imageList(images gjson.Result) []Image {
	var out []Image
	for _, img := range images.Array() {
		out = append(out, Image{
			URL:       img.Get("url").String(),
			NSFWLevel: img.Get("nsfwLevel").Int(),
		})
	}
	return out
}

func stringList(value gjson.Result) []string {
	var out []string
	for _, item := range value.Array() {
		out = append(out, item.String())
	}
	return out
}

func trainedWords(words gjson.Result) string {
	list := stringList(words)
	if len(list) == 0 {
		return "None"
	}
	return strings.Join(list, ", ")
}

// convertKB renders the API's sizeKB field as a human-readable size.
// Missing or non-numeric values render as an empty string.
func convertKB(sizeKB gjson.Result) string {
	if sizeKB.Type != gjson.Number {
		return ""
	}
	return humanize.IBytes(uint64(sizeKB.Float() * 1024))
}
