package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestInsertAndQueryChanges(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	records := []ChangeRecord{
		{Hash: "F00D", CTID: "C373B14A00040000", Account: "rSender", Currency: "XRP", Value: "85.5321", Action: "DEC", RecordedAt: now},
		{Hash: "F00D", CTID: "C373B14A00040000", Account: "rDest", Currency: "XRP", Value: "85.5321", Action: "INC", RecordedAt: now},
		{Hash: "BEEF", Account: "rSender", Currency: "EUR", Issuer: "rIssuer", Value: "4.5", Action: "INC", RecordedAt: now.Add(time.Second)},
	}
	require.NoError(t, s.InsertChanges(ctx, records))

	got, err := s.ChangesByAccount(ctx, Filter{Account: "rSender"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	require.Equal(t, "BEEF", got[0].Hash)
	require.Equal(t, "rIssuer", got[0].Issuer)
	require.Equal(t, "F00D", got[1].Hash)
	require.Equal(t, "C373B14A00040000", got[1].CTID)
	require.Equal(t, now, got[1].RecordedAt)
}

func TestInsertChangesIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := ChangeRecord{Hash: "F00D", Account: "rSender", Currency: "XRP", Value: "1", Action: "DEC"}
	require.NoError(t, s.InsertChanges(ctx, []ChangeRecord{rec}))
	require.NoError(t, s.InsertChanges(ctx, []ChangeRecord{rec}))

	got, err := s.ChangesByAccount(ctx, Filter{Account: "rSender"})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestChangesFilterByCurrencyAndHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertChanges(ctx, []ChangeRecord{
		{Hash: "F00D", Account: "rSender", Currency: "XRP", Value: "1", Action: "DEC"},
		{Hash: "BEEF", Account: "rSender", Currency: "EUR", Issuer: "rIssuer", Value: "2", Action: "INC"},
	}))

	got, err := s.ChangesByAccount(ctx, Filter{Account: "rSender", Currency: "EUR"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "BEEF", got[0].Hash)

	got, err = s.ChangesByAccount(ctx, Filter{Hash: "F00D"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "XRP", got[0].Currency)
}

func TestInsertNoRecordsIsNoop(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.InsertChanges(context.Background(), nil))
}
