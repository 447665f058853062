/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: describer.go
Description: Vision describer collaborator for BlockLens. Posts a rendered
screenshot to a vision-capable model endpoint and decodes the region description
records the matcher consumes. Thin I/O wrapper with no decision logic.
*/

package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/blocklens/pkg/interfaces"
)

// Describer returns region descriptions for a rendered page screenshot.
type Describer interface {
	DescribeRegions(ctx context.Context, screenshot []byte) ([]interfaces.RegionDescription, error)
}

// HTTPDescriber posts screenshots to a configured endpoint that fronts a
// vision-capable model and decodes its JSON response.
type HTTPDescriber struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPDescriber creates a describer for the given endpoint.
func NewHTTPDescriber(endpoint, apiKey string) *HTTPDescriber {
	return &HTTPDescriber{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

// describeRequest is the wire format sent to the endpoint.
type describeRequest struct {
	Screenshot string `json:"screenshot"` // base64 PNG
}

// describeResponse is the wire format returned by the endpoint.
type describeResponse struct {
	Regions []interfaces.RegionDescription `json:"regions"`
}

// DescribeRegions sends the screenshot and returns the decoded region
// records. Records arriving without an ID are assigned one.
func (d *HTTPDescriber) DescribeRegions(ctx context.Context, screenshot []byte) ([]interfaces.RegionDescription, error) {
	payload, err := json.Marshal(describeRequest{
		Screenshot: base64.StdEncoding.EncodeToString(screenshot),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode describe request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build describe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("describe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("describe endpoint returned %s", resp.Status)
	}

	var decoded describeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode describe response: %w", err)
	}

	regions := decoded.Regions
	for i := range regions {
		if regions[i].ID == "" {
			regions[i].ID = uuid.New().String()
		}
		if regions[i].Type == "" {
			regions[i].Type = interfaces.BlockOther
		}
	}
	return regions, nil
}
