package utils

import (
	"fmt"
	"net/url"
)

// GetExplorerAddressUrl builds the block explorer page for an address
func GetExplorerAddressUrl(explorerURL, address string) (string, error) {
	if explorerURL == "" {
		return "", nil
	}

	parsedUrl, err := url.Parse(explorerURL)
	if err != nil {
		return "", fmt.Errorf("invalid explorer url: %w", err)
	}
	if parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return "", fmt.Errorf("invalid explorer url: %s", explorerURL)
	}

	return parsedUrl.JoinPath("address", address).String(), nil
}
