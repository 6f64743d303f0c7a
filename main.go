// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/civiscope/civiscope/civitai"
	"github.com/civiscope/civiscope/config"
	"github.com/civiscope/civiscope/logging"
	"github.com/civiscope/civiscope/styles"
)

var (
	Version string // Version will be set during the build process
)

func main() {
	descFlag := flag.Bool("desc", false, "Include the model description")
	imagesFlag := flag.Bool("images", false, "Include the images table")
	modelsURLFlag := flag.String("models-url", "", "Override the models endpoint base URL")
	versionsURLFlag := flag.String("versions-url", "", "Override the model-versions endpoint base URL")
	versionFlag := flag.Bool("v", false, "Print the version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Println(Version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.LogLevel, cfg.LogFilePath); err != nil {
		fmt.Println("Error initializing logging:", err)
		os.Exit(1)
	}

	if *modelsURLFlag != "" {
		cfg.ModelsURL = *modelsURLFlag
	}
	if *versionsURLFlag != "" {
		cfg.VersionsURL = *versionsURLFlag
	}

	getModelDetails(os.Stdout, cfg, flag.Arg(0), *descFlag, *imagesFlag)
}

// getModelDetails runs the single fetch, normalize, present pass. Lookup
// failures print a feedback line and return cleanly; no exit codes here.
func getModelDetails(w io.Writer, cfg config.Config, identifier string, showDescription, showImages bool) {
	modelID, err := strconv.Atoi(identifier)
	if err != nil || modelID <= 0 {
		fmt.Fprintln(w, styles.Error("Invalid model ID. Please enter a valid number."))
		return
	}

	client := civitai.NewClient(cfg.ModelsURL, cfg.VersionsURL).WithFeedback(w)
	raw := client.GetModelDetails(modelID)
	if raw == nil {
		fmt.Fprintln(w, styles.Error(fmt.Sprintf("No model found with ID: %s", identifier)))
		return
	}

	civitai.PrintModelDetails(w, civitai.Normalize(raw), showDescription, showImages)
}
