package srcmap

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Artifact format changes.
const artifactSchemaVersion uint16 = 1

// Artifact is the serialized position map written next to the emitted text.
type Artifact struct {
	Schema     uint16
	SourcePath string
	OutputPath string
	Mappings   []Mapping
}

// WriteArtifact serializes an artifact for one output file.
func WriteArtifact(w io.Writer, sourcePath, outputPath string, mappings []Mapping) error {
	art := &Artifact{
		Schema:     artifactSchemaVersion,
		SourcePath: sourcePath,
		OutputPath: outputPath,
		Mappings:   mappings,
	}
	return msgpack.NewEncoder(w).Encode(art)
}

// ReadArtifact deserializes an artifact written by WriteArtifact.
func ReadArtifact(r io.Reader) (*Artifact, error) {
	var art Artifact
	if err := msgpack.NewDecoder(r).Decode(&art); err != nil {
		return nil, fmt.Errorf("srcmap: decode artifact: %w", err)
	}
	if art.Schema != artifactSchemaVersion {
		return nil, fmt.Errorf("srcmap: artifact schema %d, want %d", art.Schema, artifactSchemaVersion)
	}
	return &art, nil
}
