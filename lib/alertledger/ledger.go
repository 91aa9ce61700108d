// Package alertledger tracks which occurrences have already triggered a
// notification. Tokens are ISO dates (YYYY-MM-DD); once a token is recorded
// it stays recorded forever, which is what makes alerts one-shot across
// repeated scheduled runs.
package alertledger

import "context"

type Ledger interface {
	// Has reports whether a notification was already sent for the token.
	// A store that does not exist yet behaves as an empty set, not an error.
	Has(ctx context.Context, token string) (bool, error)
	// Mark durably records the token. Marking an already-present token is
	// harmless.
	Mark(ctx context.Context, token string) error
	// List returns every recorded token in ascending order.
	List(ctx context.Context) ([]string, error)
}
