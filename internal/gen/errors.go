package gen

import "github.com/cockroachdb/errors"

// Fatal generation errors. Check with errors.Is.
var (
	// ErrUnsupportedType is returned for a type expression outside the known variants.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnsupportedDefinition is returned for a definition that is not an enum, message or interface.
	ErrUnsupportedDefinition = errors.New("unsupported definition")
	// ErrArtifactWrite marks errors returned by a Sink. The sink error stays in the chain.
	ErrArtifactWrite = errors.New("artifact write failed")
)
