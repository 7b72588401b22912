package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpecStore loads OpenAPI documents from a directory of YAML files. Documents
// are re-read on every request so edits on disk show up without a restart.
type SpecStore struct {
	dir string
}

// NewSpecStore creates a store rooted at dir. Documents are looked up as
// <dir>/<name>.yaml.
func NewSpecStore(dir string) *SpecStore {
	return &SpecStore{dir: dir}
}

// Load reads and parses the named OpenAPI document, rewriting its servers
// block so the document always points at the host it was served from.
func (s *SpecStore) Load(name, scheme, host string) (map[string]interface{}, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid spec name %q", name)
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, name+".yaml"))
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s.yaml: %w", name, err)
	}

	doc["servers"] = []interface{}{
		map[string]interface{}{
			"url":         fmt.Sprintf("%s://%s/api/v1", scheme, host),
			"description": "Current server",
		},
	}
	return doc, nil
}

// requestScheme resolves the external scheme of a request, honoring the
// X-Forwarded-Proto header set by reverse proxies.
func requestScheme(forwardedProto string, tls bool) string {
	if forwardedProto != "" {
		return forwardedProto
	}
	if tls {
		return "https"
	}
	return "http"
}
