// Package osrelease reads and parses the standard os-release metadata file.
package osrelease

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	etcPath  = "/etc/os-release"
	hostPath = "/run/host/os-release"

	// Present inside a Flatpak sandbox, where /etc/os-release describes the
	// runtime instead of the host.
	flatpakMarker = "/.flatpak-info"
)

// Release is a parsed os-release file. Fields not present in the file are
// empty; list-valued fields are nil. Only Name and ID are required.
type Release struct {
	Name            string   `json:"name"`
	PrettyName      string   `json:"pretty_name,omitempty"`
	Version         string   `json:"version,omitempty"`
	VersionID       string   `json:"version_id,omitempty"`
	ID              string   `json:"id"`
	IDLike          []string `json:"id_like,omitempty"`
	VersionCodename string   `json:"version_codename,omitempty"`
	BuildID         string   `json:"build_id,omitempty"`
	ImageID         string   `json:"image_id,omitempty"`
	ImageVersion    string   `json:"image_version,omitempty"`
	VendorName      string   `json:"vendor_name,omitempty"`
	VendorURL       string   `json:"vendor_url,omitempty"`
	ANSIColor       string   `json:"ansi_color,omitempty"`
	Logo            string   `json:"logo,omitempty"`
	CPEName         string   `json:"cpe_name,omitempty"`
	HomeURL         string   `json:"home_url,omitempty"`
	DocURL          string   `json:"documentation_url,omitempty"`
	SupportURL      string   `json:"support_url,omitempty"`
	BugReportURL    string   `json:"bug_report_url,omitempty"`
	PrivacyURL      string   `json:"privacy_policy_url,omitempty"`
	SupportEnd      string   `json:"support_end,omitempty"`
	Variant         string   `json:"variant,omitempty"`
	VariantID       string   `json:"variant_id,omitempty"`
	DefaultHostname string   `json:"default_hostname,omitempty"`
	Architecture    string   `json:"architecture,omitempty"`
	SysextLevel     string   `json:"sysext_level,omitempty"`
	SysextScope     []string `json:"sysext_scope,omitempty"`
	ConfextLevel    string   `json:"confext_level,omitempty"`
	ConfextScope    []string `json:"confext_scope,omitempty"`
	PortablePrefix  []string `json:"portable_prefixes,omitempty"`

	// Keys the reader does not recognize, kept verbatim.
	Extra map[string]string `json:"extra,omitempty"`
}

// Open reads the os-release file from its standard location. Inside a
// Flatpak sandbox the host copy is bind-mounted at /run/host/os-release and
// is read instead.
func Open() (*Release, error) {
	path := etcPath
	if _, err := os.Stat(flatpakMarker); err == nil {
		path = hostPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open os-release: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads os-release content in KEY=value format. Blank lines and
// comments are skipped. A non-comment line without "=" is malformed, as is
// content missing the required NAME or ID fields.
func Parse(r io.Reader) (*Release, error) {
	rel := &Release{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("os-release: line %d: missing '='", lineNo)
		}
		key = strings.TrimSpace(key)
		value := unquote(strings.TrimSpace(raw))

		switch key {
		case "NAME":
			rel.Name = value
		case "PRETTY_NAME":
			rel.PrettyName = value
		case "VERSION":
			rel.Version = value
		case "VERSION_ID":
			rel.VersionID = value
		case "ID":
			rel.ID = value
		case "ID_LIKE":
			rel.IDLike = splitList(value)
		case "VERSION_CODENAME":
			rel.VersionCodename = value
		case "BUILD_ID":
			rel.BuildID = value
		case "IMAGE_ID":
			rel.ImageID = value
		case "IMAGE_VERSION":
			rel.ImageVersion = value
		case "VENDOR_NAME":
			rel.VendorName = value
		case "VENDOR_URL":
			rel.VendorURL = value
		case "ANSI_COLOR":
			rel.ANSIColor = value
		case "LOGO":
			rel.Logo = value
		case "CPE_NAME":
			rel.CPEName = value
		case "HOME_URL":
			rel.HomeURL = value
		case "DOCUMENTATION_URL":
			rel.DocURL = value
		case "SUPPORT_URL":
			rel.SupportURL = value
		case "BUG_REPORT_URL":
			rel.BugReportURL = value
		case "PRIVACY_POLICY_URL":
			rel.PrivacyURL = value
		case "SUPPORT_END":
			rel.SupportEnd = value
		case "VARIANT":
			rel.Variant = value
		case "VARIANT_ID":
			rel.VariantID = value
		case "DEFAULT_HOSTNAME":
			rel.DefaultHostname = value
		case "ARCHITECTURE":
			rel.Architecture = value
		case "SYSEXT_LEVEL":
			rel.SysextLevel = value
		case "SYSEXT_SCOPE":
			rel.SysextScope = splitList(value)
		case "CONFEXT_LEVEL":
			rel.ConfextLevel = value
		case "CONFEXT_SCOPE":
			rel.ConfextScope = splitList(value)
		case "PORTABLE_PREFIXES":
			rel.PortablePrefix = splitList(value)
		default:
			if rel.Extra == nil {
				rel.Extra = make(map[string]string)
			}
			rel.Extra[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("os-release: %w", err)
	}

	if rel.Name == "" || rel.ID == "" {
		return nil, fmt.Errorf("os-release: required NAME or ID field missing")
	}
	return rel, nil
}

// unquote strips a matching pair of single or double quotes and resolves the
// escape sequences the os-release format allows inside double quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	switch {
	case s[0] == '\'' && s[len(s)-1] == '\'':
		return s[1 : len(s)-1]
	case s[0] == '"' && s[len(s)-1] == '"':
		s = s[1 : len(s)-1]
		replacer := strings.NewReplacer(`\"`, `"`, `\\`, `\`, `\$`, `$`, "\\`", "`")
		return replacer.Replace(s)
	}
	return s
}

// splitList splits a space-delimited list field into its elements.
func splitList(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// String returns a short human-readable identification of the release.
func (r *Release) String() string {
	if r.PrettyName != "" {
		return r.PrettyName
	}
	if r.Version != "" {
		return r.Name + " " + r.Version
	}
	return r.Name
}
