package emit

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerationID is a fresh identifier stamped onto an emitted artifact so
// downstream tooling can tell two generation runs apart, or detect that
// an emitted file is stale relative to its grammar source. It carries no
// parsing semantics of its own.
func GenerationID() string {
	return uuid.NewString()
}

// SourceLiteralHeader renders the comment banner SourceLiteral output is
// prefixed with before being written to a file.
func SourceLiteralHeader(generationID string) string {
	return fmt.Sprintf("// generated by compgen; generation-id %s\n", generationID)
}
