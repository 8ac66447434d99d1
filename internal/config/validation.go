package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks values that would otherwise fail later at runtime.
func validate(c *Config) error {
	if err := c.OKX.validate(); err != nil {
		return err
	}
	if err := c.Poll.validate(); err != nil {
		return err
	}
	if err := c.UI.validate(); err != nil {
		return err
	}
	return nil
}

func (o *OKXConfig) validate() error {
	u, err := url.Parse(o.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("okx.base_url must be an absolute url, got %q", o.BaseURL)
	}
	if !strings.EqualFold(u.Scheme, "https") && !strings.EqualFold(u.Scheme, "http") {
		return fmt.Errorf("okx.base_url must use http or https, got %q", u.Scheme)
	}
	if o.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("okx.request_timeout_seconds must be >= 0")
	}
	return nil
}

func (p *PollConfig) validate() error {
	if p.RefreshSeconds < minRefreshSeconds {
		return fmt.Errorf("poll.refresh_seconds must be >= %d, got %v", minRefreshSeconds, p.RefreshSeconds)
	}
	return nil
}

func (u *UIConfig) validate() error {
	if u.LogCapacity <= 0 {
		return fmt.Errorf("ui.log_capacity must be > 0")
	}
	return nil
}
