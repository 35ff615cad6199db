package types

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeEndpoint returns a canonical form of an RPC endpoint suitable for
// comparing entries across url list responses. It lowercases the scheme and
// host, drops default ports and trailing slashes, and strips credentials.
// Unparseable input is returned unchanged.
func NormalizeEndpoint(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.User = nil
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)

	host := parsed.Hostname()
	port := parsed.Port()
	if (parsed.Scheme == "https" && port == "443") ||
		(parsed.Scheme == "http" && port == "80") {
		parsed.Host = host
	}

	if parsed.Path != "/" && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}

// ValidateEndpoint checks that an RPC endpoint is an absolute http, https,
// ws, or wss URL with a host and no embedded credentials.
func ValidateEndpoint(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid rpc url %q: %w", rawURL, err)
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("invalid rpc url %q: unsupported scheme %q", rawURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid rpc url %q: missing host", rawURL)
	}
	if parsed.User != nil {
		return fmt.Errorf("invalid rpc url %q: must not carry credentials", rawURL)
	}
	return nil
}

// Validate checks both endpoints of a sequencer registration payload.
func (m RegisterSequencerMessage) Validate() error {
	if err := ValidateEndpoint(m.ExternalRPCURL); err != nil {
		return fmt.Errorf("external_rpc_url: %w", err)
	}
	if err := ValidateEndpoint(m.ClusterRPCURL); err != nil {
		return fmt.Errorf("cluster_rpc_url: %w", err)
	}
	return nil
}
