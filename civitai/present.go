package civitai

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/civiscope/civiscope/styles"
)

// PrintModelDetails renders a normalized record as a sequence of tables and
// feedback lines. Purely a terminal side effect; the writer is a parameter
// so tests can capture the output.
func PrintModelDetails(w io.Writer, record ModelRecord, showDescription, showImages bool) {
	attributes := newTable(w,
		[]string{"Attributes", "Values"},
		tablewriter.Colors{tablewriter.FgHiYellowColor},
		tablewriter.Colors{tablewriter.FgHiWhiteColor},
	)
	attributes.Append([]string{"Model ID", strconv.FormatInt(record.ID, 10)})
	attributes.Append([]string{"Name", record.Name})
	attributes.Append([]string{"Type", record.Type})
	attributes.Append([]string{"Tags", strings.Join(record.Tags, ", ")})
	attributes.Append([]string{"Creator", record.Creator})
	attributes.Append([]string{"NSFW", styles.YesNo(record.NSFW)})
	attributes.Append([]string{"Size", record.Metadata.Size})
	attributes.Render()

	if showDescription {
		description := newTable(w,
			[]string{"Description"},
			tablewriter.Colors{tablewriter.FgCyanColor},
		)
		description.SetAutoWrapText(true)
		description.SetColWidth(descriptionWidth())
		description.Append([]string{renderDescription(record.Description)})
		description.Render()
	}

	if len(record.Versions) > 0 {
		versions := newTable(w,
			[]string{"Version ID", "Name", "Base Model", "Download URL", "Images"},
			tablewriter.Colors{tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.FgHiYellowColor},
			tablewriter.Colors{tablewriter.FgHiYellowColor},
			tablewriter.Colors{tablewriter.FgHiYellowColor},
			tablewriter.Colors{tablewriter.FgHiYellowColor},
		)
		for _, version := range record.Versions {
			versions.Append([]string{
				strconv.FormatInt(version.ID, 10),
				version.Name,
				version.BaseModel,
				styles.SafeURL(version.DownloadURL),
				styles.SafeURL(version.Image),
			})
		}
		versions.Render()
	}

	if showImages && len(record.Images) > 0 {
		images := newTable(w,
			[]string{"NSFW Lvl", "URL"},
			tablewriter.Colors{tablewriter.FgHiRedColor},
			tablewriter.Colors{tablewriter.FgHiYellowColor},
		)
		for _, image := range record.Images {
			images.Append([]string{
				strconv.FormatInt(image.NSFWLevel, 10),
				styles.SafeURL(image.URL),
			})
		}
		images.Render()
	}

	// The three warnings below are independent and informational.
	if record.ParentID != 0 {
		fmt.Fprintln(w, styles.Warning(fmt.Sprintf("%s is a variant of %s // Model ID: %d",
			record.Name, record.ParentName, record.ParentID)))
	}
	if len(record.Images) == 0 {
		fmt.Fprintln(w, styles.Warning(fmt.Sprintf("No images available for model %s.", record.Name)))
	}
	if len(record.Versions) == 0 && record.ParentID == 0 {
		fmt.Fprintln(w, styles.Warning(fmt.Sprintf("No versions available for model %s.", record.Name)))
	}
}

func newTable(w io.Writer, headers []string, colours ...tablewriter.Colors) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeaderColor(colours...)
	return table
}

// renderDescription converts the API's raw HTML description into readable
// plain text, falling back to the raw string if the markup doesn't parse.
func renderDescription(description string) string {
	text, err := html2text.FromString(description, html2text.Options{OmitLinks: false})
	if err != nil {
		return description
	}
	return text
}

func descriptionWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	return width - 10
}
