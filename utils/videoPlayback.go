package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/zalakuldip2011/edemy-sub001/config"

	"github.com/go-resty/resty/v2"
)

// GetPlaybackURL exchanges an opaque video reference for a short-lived
// playback URL at the media host. The reference is never interpreted here;
// the media service owns its shape.
func GetPlaybackURL(ctx context.Context, videoReference string) (string, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	var result struct {
		PlaybackURL string `json:"playback_url"`
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+config.AppConfig.PlaybackApiKey).
		SetQueryParam("reference", videoReference).
		SetResult(&result).
		Get(config.AppConfig.PlaybackApiURL + "playback")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("media host returned %d", resp.StatusCode())
	}
	if result.PlaybackURL == "" {
		return "", fmt.Errorf("media host returned no playback url")
	}

	return result.PlaybackURL, nil
}
