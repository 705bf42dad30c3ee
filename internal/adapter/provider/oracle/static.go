// Package oracle provides verdict oracles: a static oracle for local runs and
// an HTTP client for a remote verification service.
package oracle

import (
	"context"

	"github.com/google/uuid"
)

// StaticOracle answers every verification with the same raw verdict.
type StaticOracle struct {
	verdict string
}

// NewStaticOracle creates a StaticOracle answering verdict.
func NewStaticOracle(verdict string) *StaticOracle {
	return &StaticOracle{verdict: verdict}
}

// VerifyClaim returns the configured verdict.
func (o *StaticOracle) VerifyClaim(ctx context.Context, _ uuid.UUID, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return o.verdict, nil
}
