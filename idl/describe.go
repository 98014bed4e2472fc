package idl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// Info summarises an IDL file.
type Info struct {
	// Name is the program name.
	Name string
	// Version is the program version. Nil when the IDL carries none.
	Version *semver.Version
	// Address is metadata.address, empty when unset.
	Address string
}

// document holds the IDL fields Describe looks at. Legacy IDLs keep name and version at the top
// level, Anchor 0.30 and later moved them under metadata.
type document struct {
	Name     string          `json:"name"`
	Version  json.RawMessage `json:"version"`
	Metadata json.RawMessage `json:"metadata"`
}

type metadataSection struct {
	Name    string          `json:"name"`
	Version json.RawMessage `json:"version"`
	Address string          `json:"address"`
}

// Describe reads the IDL at path and returns its name, version and current address.
func Describe(path string) (Info, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Info{}, readError(path, err)
	}

	if err = checkObject(path, b); err != nil {
		return Info{}, err
	}

	var doc document
	if err = json.Unmarshal(b, &doc); err != nil {
		return Info{}, fmt.Errorf("%w: %s: %w", ErrSchema, path, err)
	}

	var md metadataSection
	if len(doc.Metadata) > 0 && string(doc.Metadata) != "null" {
		if err = json.Unmarshal(doc.Metadata, &md); err != nil {
			return Info{}, fmt.Errorf("%w: %s: metadata: %w", ErrSchema, path, err)
		}
	}

	info := Info{
		Name:    doc.Name,
		Address: md.Address,
	}
	if info.Name == "" {
		info.Name = md.Name
	}

	raw := doc.Version
	if isAbsent(raw) {
		raw = md.Version
	}
	v, err := parseVersion(raw)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %w", ErrSchema, path, err)
	}
	info.Version = v

	return info, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null" || string(raw) == `""`
}

// parseVersion reads a version field. A string must be a valid semantic version. Some IDLs carry
// a plain number instead; it is used when it reads as a version and ignored otherwise.
func parseVersion(raw json.RawMessage) (*semver.Version, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: %w", s, err)
		}

		return v, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if v, err := semver.NewVersion(num.String()); err == nil {
			return v, nil
		}
	}

	return nil, nil
}
