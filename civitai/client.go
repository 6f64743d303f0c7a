package civitai

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/civiscope/civiscope/logging"
	"github.com/civiscope/civiscope/styles"
)

const requestTimeout = 30 * time.Second

type Client struct {
	modelsURL   string
	versionsURL string
	httpClient  *http.Client
	feedback    io.Writer
}

func NewClient(modelsURL, versionsURL string) *Client {
	return &Client{
		modelsURL:   strings.TrimRight(modelsURL, "/"),
		versionsURL: strings.TrimRight(versionsURL, "/"),
		httpClient:  &http.Client{Timeout: requestTimeout},
		feedback:    os.Stdout,
	}
}

// WithFeedback redirects user-facing warning lines away from stdout.
func (c *Client) WithFeedback(w io.Writer) *Client {
	c.feedback = w
	return c
}

// GetModelDetails resolves a model ID into a raw JSON body. The models
// endpoint is tried first; an ID that only exists as a model version is
// resolved through the versions endpoint and merged with its parent model.
// Returns nil when neither lookup produced data.
func (c *Client) GetModelDetails(modelID int) []byte {
	if body := c.fetch(fmt.Sprintf("%s/%d", c.modelsURL, modelID)); body != nil {
		return body
	}

	version := c.fetch(fmt.Sprintf("%s/%d", c.versionsURL, modelID))
	if version == nil {
		return nil
	}

	parentID := gjson.GetBytes(version, "modelId").Int()
	parent := c.fetch(fmt.Sprintf("%s/%d", c.modelsURL, parentID))
	if parent == nil {
		return nil
	}

	return mergeBodies(version, parent)
}

// fetch performs a single GET and returns the body when it holds a non-empty
// JSON object. 404 is not treated as a transport error: Civitai serves JSON
// bodies for missing version IDs, so the body validation below decides
// whether anything useful came back.
func (c *Client) fetch(url string) []byte {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.warnf("Failed to get data from %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		c.warnf("Failed to get data from %s: unexpected status %s", url, resp.Status)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.warnf("Failed to get data from %s: %v", url, err)
		return nil
	}
	if len(body) == 0 {
		return nil
	}

	if !gjson.ValidBytes(body) {
		c.warnf("Failed to get data from %s: malformed JSON body", url)
		return nil
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() || len(parsed.Map()) == 0 {
		return nil
	}
	return body
}

// mergeBodies combines a version body with its parent model body. Version
// fields win; the parent only fills keys the version doesn't carry. The
// version's nested "model" object and its "modelId" therefore survive, which
// is what marks the merged record as a version downstream.
func mergeBodies(version, parent []byte) []byte {
	var merged, parentFields map[string]any
	if err := json.Unmarshal(version, &merged); err != nil {
		return version
	}
	if err := json.Unmarshal(parent, &parentFields); err != nil {
		return version
	}

	for key, value := range parentFields {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return version
	}
	return out
}

func (c *Client) warnf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	logging.ErrorLogger.Println(message)
	fmt.Fprintln(c.feedback, styles.Warning(message))
}
