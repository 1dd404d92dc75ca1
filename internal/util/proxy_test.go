package util

import (
	"net/http"
	"net/url"
	"testing"
)

func TestNewProxyFunc(t *testing.T) {
	tests := []struct {
		name       string
		httpProxy  string
		httpsProxy string
		target     string
		want       string
	}{
		{"https uses https proxy", "http://plain:8080", "http://secure:8443", "https://api.openai.com/v1", "http://secure:8443"},
		{"http uses http proxy", "http://plain:8080", "http://secure:8443", "http://localhost:11434/api/tags", "http://plain:8080"},
		{"https falls back to http proxy", "http://plain:8080", "", "https://api.anthropic.com", "http://plain:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy := NewProxyFunc(tt.httpProxy, tt.httpsProxy)

			target, _ := url.Parse(tt.target)
			got, err := proxy(&http.Request{URL: target})
			if err != nil {
				t.Fatalf("proxy returned error: %v", err)
			}
			if got == nil || got.String() != tt.want {
				t.Errorf("proxy(%s) = %v, want %s", tt.target, got, tt.want)
			}
		})
	}
}

func TestNewProxyFunc_Environment(t *testing.T) {
	t.Setenv("HTTP_PROXY", "")
	t.Setenv("HTTPS_PROXY", "")
	t.Setenv("http_proxy", "")
	t.Setenv("https_proxy", "")

	proxy := NewProxyFunc("", "")

	target, _ := url.Parse("https://api.openai.com/v1")
	got, err := proxy(&http.Request{URL: target})
	if err != nil {
		t.Fatalf("proxy returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expected direct connection, got %v", got)
	}
}
