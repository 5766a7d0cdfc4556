package utils

import (
	"fmt"
	"time"

	"madrasa/config"

	"github.com/go-resty/resty/v2"
)

// CheckLinkReachable probes an external resource URL before it is accepted as
// material content. Only obvious dead links are rejected; transport failures
// count as unreachable.
func CheckLinkReachable(url string) error {
	client := resty.New().
		SetTimeout(time.Duration(config.AppConfig.LinkCheckTimeout) * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	resp, err := client.R().Head(url)
	if err != nil {
		return fmt.Errorf("link unreachable: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("link returned status %d", resp.StatusCode())
	}
	return nil
}
