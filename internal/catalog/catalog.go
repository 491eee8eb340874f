package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/runtime"
	"github.com/firefly-engineering/javart/internal/system"
)

// Format is a catalog encoding.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{JSON, TOML, YAML}
}

// ParseFormat returns the format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, TOML, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", errors.ValidationError(fmt.Sprintf("unknown catalog format %q (expected json, toml or yaml)", s))
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.ValidationError(fmt.Sprintf("cannot infer catalog format of %s: no extension", path))
	}
	return ParseFormat(ext)
}

// tomlDocument is the top-level TOML layout.
type tomlDocument struct {
	Runtime []runtime.Record `toml:"runtime"`
}

func records(runtimes []*runtime.JavaRuntime) []runtime.Record {
	recs := make([]runtime.Record, len(runtimes))
	for i, r := range runtimes {
		recs[i] = r.Record()
	}
	return recs
}

// Encode writes runtimes to w in the given format.
func Encode(w io.Writer, format Format, runtimes []*runtime.JavaRuntime) error {
	recs := records(runtimes)

	var err error
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(recs)
	case TOML:
		err = toml.NewEncoder(w).Encode(tomlDocument{Runtime: recs})
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(recs); err == nil {
			err = enc.Close()
		}
	default:
		return errors.ValidationError(fmt.Sprintf("unknown catalog format %q", format))
	}

	if err != nil {
		return errors.CatalogError(fmt.Sprintf("failed to encode %s catalog", format), err)
	}
	return nil
}

// Decode reads a catalog in the given format from r.
func Decode(r io.Reader, format Format) ([]*runtime.JavaRuntime, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.CatalogError("failed to read catalog", err)
	}

	var recs []runtime.Record
	switch format {
	case JSON:
		err = json.Unmarshal(data, &recs)
	case TOML:
		var doc tomlDocument
		_, err = toml.Decode(string(data), &doc)
		recs = doc.Runtime
	case YAML:
		err = yaml.Unmarshal(data, &recs)
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unknown catalog format %q", format))
	}
	if err != nil {
		return nil, errors.CatalogError(fmt.Sprintf("failed to decode %s catalog", format), err)
	}

	runtimes := make([]*runtime.JavaRuntime, 0, len(recs))
	for i, rec := range recs {
		rt, err := runtime.FromRecord(rec)
		if err != nil {
			return nil, errors.CatalogError(fmt.Sprintf("invalid catalog entry %d (%s)", i, rec.Path), err)
		}
		runtimes = append(runtimes, rt)
	}
	return runtimes, nil
}

// Marshal returns the encoded catalog.
func Marshal(format Format, runtimes []*runtime.JavaRuntime) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, runtimes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadFile decodes the catalog at path, inferring the format from its
// extension.
func ReadFile(path string) ([]*runtime.JavaRuntime, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := system.DefaultFS().ReadFile(path)
	if err != nil {
		return nil, errors.CatalogError(fmt.Sprintf("failed to read %s", path), err)
	}
	return Decode(bytes.NewReader(data), format)
}

// WriteFile encodes runtimes to path, inferring the format from its
// extension.
func WriteFile(path string, runtimes []*runtime.JavaRuntime) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(format, runtimes)
	if err != nil {
		return err
	}
	if err := system.DefaultFS().WriteFile(path, data, 0644); err != nil {
		return errors.CatalogError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
