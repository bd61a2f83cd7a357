package gen

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Sink receives rendered artifacts.
type Sink interface {
	// Write stores content under a slash-separated relative path.
	Write(path string, content []byte) error
}

// WriteArtifacts writes artifacts to sink in order, stopping at the first failure.
func WriteArtifacts(artifacts []Artifact, sink Sink) error {
	for _, a := range artifacts {
		if err := sink.Write(a.Path, a.Content); err != nil {
			return errors.Mark(errors.Wrapf(err, "writing %s", a.Path), ErrArtifactWrite)
		}
	}

	return nil
}

// DirSink writes artifacts below a root directory, creating directories as needed.
type DirSink struct {
	Root string
}

// NewDirSink creates a DirSink rooted at dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Root: dir}
}

// Write implements Sink. Paths must stay inside the root.
func (s *DirSink) Write(path string, content []byte) error {
	rel := filepath.FromSlash(path)
	if !filepath.IsLocal(rel) {
		return errors.Newf("path %q escapes the output directory", path)
	}

	outputPath := filepath.Join(s.Root, rel)

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	if err := os.WriteFile(outputPath, content, filePerm); err != nil {
		return errors.Wrapf(err, "writing file %s", outputPath)
	}

	return nil
}

// MemorySink records artifacts in write order. It is safe for concurrent use.
type MemorySink struct {
	mu        sync.Mutex
	artifacts []Artifact
}

// Write implements Sink.
func (s *MemorySink) Write(path string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts = append(s.artifacts, Artifact{
		Path:    path,
		Content: append([]byte(nil), content...),
	})

	return nil
}

// Artifacts returns the recorded artifacts in write order.
func (s *MemorySink) Artifacts() []Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Artifact(nil), s.artifacts...)
}

// Paths returns the recorded artifact paths in write order.
func (s *MemorySink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, 0, len(s.artifacts))
	for _, a := range s.artifacts {
		paths = append(paths, a.Path)
	}

	return paths
}
