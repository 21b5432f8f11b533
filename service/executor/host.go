package executor

import (
	"strings"

	"github.com/viant/afs/url"
)

const (
	// LocalURL targets the local machine through bash
	LocalURL    = "bash://localhost/"
	defaultPort = "22"
)

// Host represents deployment target
type Host struct {
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`                 //ssh://host:port/ or bash://localhost/
	User        string `json:"user,omitempty" yaml:"user,omitempty"`               //ssh user, defaults to $USER
	Credentials string `json:"credentials,omitempty" yaml:"credentials,omitempty"` //scy credentials resource
	KeyFile     string `json:"keyFile,omitempty" yaml:"keyFile,omitempty"`         //private key used without credentials resource
	KnownHosts  string `json:"knownHosts,omitempty" yaml:"knownHosts,omitempty"`   //known_hosts file
	Insecure    bool   `json:"insecure,omitempty" yaml:"insecure,omitempty"`       //skip host key verification
}

func (h *Host) Init() {
	if h.URL == "" {
		h.URL = LocalURL
	}
	if !strings.Contains(h.URL, "://") {
		h.URL = "ssh://" + h.URL
	}
}

// IsLocal returns true if host targets local machine
func (h *Host) IsLocal() bool {
	return url.Host(h.URL) == "localhost"
}

// Address returns host:port ssh address
func (h *Host) Address() string {
	host := url.Host(h.URL)
	if !strings.Contains(host, ":") {
		host += ":" + defaultPort
	}
	return host
}
