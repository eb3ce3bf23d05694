package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

// Config tunes the client that talks to a running NSMS server. A CLI call
// makes one or two requests to a single host, so the idle pool stays small.
type Config struct {
	// Timeout bounds a whole request, body included.
	Timeout        time.Duration
	ConnectTimeout time.Duration
	HeaderTimeout  time.Duration
	IdleTimeout    time.Duration
	IdleConns      int

	// UseProxy honours HTTP_PROXY and friends. Off by default since the
	// server is usually local.
	UseProxy bool
}

func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		ConnectTimeout: 3 * time.Second,
		HeaderTimeout:  5 * time.Second,
		IdleTimeout:    30 * time.Second,
		IdleConns:      2,
	}
}

// ConfigFor sizes the timeouts after the server's own, so the client does not
// give up on a request the server is still allowed to answer.
func ConfigFor(s domain.ServerConfig) Config {
	cfg := DefaultConfig()
	if s.ReadTimeout > 0 && s.WriteTimeout > 0 {
		cfg.Timeout = s.ReadTimeout + s.WriteTimeout
	}
	if s.WriteTimeout > 0 {
		cfg.HeaderTimeout = s.WriteTimeout
	}
	return cfg
}

func New(cfg Config) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = (&net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	tr.ResponseHeaderTimeout = cfg.HeaderTimeout
	tr.IdleConnTimeout = cfg.IdleTimeout
	tr.MaxIdleConns = cfg.IdleConns
	tr.MaxIdleConnsPerHost = cfg.IdleConns
	if !cfg.UseProxy {
		tr.Proxy = nil
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
