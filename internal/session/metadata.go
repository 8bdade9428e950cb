package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMetadataUnavailable is returned by Parse when the metadata file is
// missing, empty or malformed.
var ErrMetadataUnavailable = errors.New("session metadata unavailable")

// Metadata is the record written by a running notebook job.
type Metadata struct {
	JobID string
	Port  int
	IP    string
	Host  string
	// Cmd is the shell command that forwards Port from the node to the local
	// machine, e.g. "ssh -N -L 9010:10.1.2.3:9010 user@login".
	Cmd string
}

// Addr returns the address the notebook server listens on, preferring IP.
func (m *Metadata) Addr() string {
	if m.IP != "" {
		return m.IP
	}

	return m.Host
}

// metadataFile is the on-disk form. Job scripts write job_id and port as
// either numbers or strings.
type metadataFile struct {
	JobID json.RawMessage `json:"job_id"`
	Port  json.RawMessage `json:"port,omitempty"`
	IP    string          `json:"ip,omitempty"`
	Host  string          `json:"host,omitempty"`
	Cmd   string          `json:"cmd"`
}

// MetadataPath returns the file name for port, e.g. "jupyter_lab.9010.json".
func MetadataPath(prefix string, port int) string {
	return fmt.Sprintf("%s.%d.json", prefix, port)
}

// Parse parses the contents of a metadata file. Any failure, including the
// "No such file" text of a failed cat, is an error wrapping
// ErrMetadataUnavailable.
func Parse(data []byte) (*Metadata, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMetadataUnavailable)
	}

	var f metadataFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	jobID, err := scalarString(f.JobID)
	if err != nil {
		return nil, fmt.Errorf("%w: job_id: %w", ErrMetadataUnavailable, err)
	}

	port, err := scalarString(f.Port)
	if err != nil {
		return nil, fmt.Errorf("%w: port: %w", ErrMetadataUnavailable, err)
	}

	m := &Metadata{
		JobID: jobID,
		IP:    f.IP,
		Host:  f.Host,
		Cmd:   f.Cmd,
	}

	if port != "" {
		if m.Port, err = strconv.Atoi(port); err != nil {
			return nil, fmt.Errorf("%w: port: %w", ErrMetadataUnavailable, err)
		}
	}

	switch {
	case m.JobID == "":
		return nil, fmt.Errorf("%w: missing job_id", ErrMetadataUnavailable)
	case m.Cmd == "":
		return nil, fmt.Errorf("%w: missing cmd", ErrMetadataUnavailable)
	case m.Addr() == "":
		return nil, fmt.Errorf("%w: missing ip or host", ErrMetadataUnavailable)
	}

	return m, nil
}

// Encode returns the metadata file contents for m. Parse(Encode(m)) yields a
// record equal to m.
func Encode(m *Metadata) ([]byte, error) {
	jobID, err := json.Marshal(m.JobID)
	if err != nil {
		return nil, err
	}

	f := metadataFile{
		JobID: jobID,
		IP:    m.IP,
		Host:  m.Host,
		Cmd:   m.Cmd,
	}

	if m.Port != 0 {
		f.Port = json.RawMessage(strconv.Itoa(m.Port))
	}

	return json.Marshal(f)
}

// scalarString returns a JSON string or number as a string. Absent or null
// values are "".
func scalarString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("expected string or number: got %T", v)
	}
}
