package alertledger

import (
	"context"
	"database/sql"
	"path/filepath"
	"sessionwatch/lib/telemetry"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func exerciseLedger(t *testing.T, ledger Ledger) {
	ctx := context.Background()

	alerted, err := ledger.Has(ctx, "2026-02-21")
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, alerted)

	err = ledger.Mark(ctx, "2026-02-21")
	if err != nil {
		t.Fatal(err)
	}
	alerted, err = ledger.Has(ctx, "2026-02-21")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, alerted)

	// marking twice is harmless
	err = ledger.Mark(ctx, "2026-02-21")
	if err != nil {
		t.Fatal(err)
	}
	err = ledger.Mark(ctx, "2026-02-14")
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := ledger.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"2026-02-14", "2026-02-21"}, tokens)
}

func TestFileLedger(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/alertledger")
	defer cleanup()

	ledger := NewFileLedger(filepath.Join(t.TempDir(), "alerted.txt"))
	exerciseLedger(t, ledger)
}

func TestStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/alertledger")
	defer cleanup()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store, err := NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	exerciseLedger(t, store)
}
