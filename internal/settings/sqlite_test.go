package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStore_GetSetRoundTrip(t *testing.T) {
	st := openTestStore(t)

	got, err := st.Get(KeyTheme)
	require.NoError(t, err)
	require.Empty(t, got, "missing key reads as empty")

	require.NoError(t, st.Set(KeyTheme, "dark"))
	got, err = st.Get(KeyTheme)
	require.NoError(t, err)
	require.Equal(t, "dark", got)

	// Overwrite, not duplicate.
	require.NoError(t, st.Set(KeyTheme, "light"))
	got, err = st.Get(KeyTheme)
	require.NoError(t, err)
	require.Equal(t, "light", got)
}

func TestStore_IntValues(t *testing.T) {
	st := openTestStore(t)

	n, err := st.GetInt(KeyStreak)
	require.NoError(t, err)
	require.Zero(t, n, "missing key reads as zero")

	require.NoError(t, st.SetInt(KeyStreak, 7))
	n, err = st.GetInt(KeyStreak)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	// A value that is not a number falls back to zero instead of failing.
	require.NoError(t, st.Set(KeyStreak, "seven"))
	n, err = st.GetInt(KeyStreak)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(KeyLastVisit, "2025-03-10"))
	require.NoError(t, st.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	got, err := st2.Get(KeyLastVisit)
	require.NoError(t, err)
	require.Equal(t, "2025-03-10", got)
}
