// Package imagehost talks to the external image hosting service.
// Deletion is always best-effort: callers log failures and move on,
// they never fail a request over a leftover remote asset.
package imagehost

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const requestTimeout = 5 * time.Second

// Deleter removes a hosted asset by its public id.
type Deleter interface {
	DeleteAsset(ctx context.Context, publicID string) error
}

// Disabled is used when no image host credentials are configured.
type Disabled struct{}

func (Disabled) DeleteAsset(context.Context, string) error { return nil }

// Cloudinary calls the Cloudinary admin destroy endpoint with a signed
// form request.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
}

func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   "https://api.cloudinary.com",
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Cloudinary) DeleteAsset(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(publicID, timestamp))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("destroy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("destroy failed with status %d", resp.StatusCode)
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode destroy response: %w", err)
	}

	// "not found" means the asset is already gone, which is the outcome
	// the caller wanted.
	if body.Result != "ok" && body.Result != "not found" {
		return fmt.Errorf("destroy returned %q", body.Result)
	}

	return nil
}

// sign computes the Cloudinary request signature: the SHA-1 of the
// sorted parameter string concatenated with the API secret.
func (c *Cloudinary) sign(publicID, timestamp string) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
