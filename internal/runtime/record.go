package runtime

import "encoding/json"

// Record is the serialized form of a JavaRuntime.
type Record struct {
	OS            string `json:"os" toml:"os" yaml:"os"`
	Path          string `json:"path" toml:"path" yaml:"path"`
	VersionString string `json:"versionString" toml:"versionString" yaml:"versionString"`
}

// Record returns the serialized form of r.
func (r *JavaRuntime) Record() Record {
	return Record{
		OS:            r.os,
		Path:          r.path,
		VersionString: r.version,
	}
}

// FromRecord rebuilds a runtime from its serialized form, validating the
// version string.
func FromRecord(rec Record) (*JavaRuntime, error) {
	return New(rec.OS, rec.Path, rec.VersionString)
}

func (r *JavaRuntime) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

func (r *JavaRuntime) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	parsed, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
