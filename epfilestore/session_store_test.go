package epfilestore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/go-sdk-common/v3/ldtime"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

func withStorePath(t *testing.T, action func(path string)) {
	dir, err := ioutil.TempDir("", "session-store-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	action(filepath.Join(dir, "session.json"))
}

func TestMissingFileMeansNoSession(t *testing.T) {
	withStorePath(t, func(path string) {
		store := SessionStore(path)
		state, err := store.GetSession()
		require.NoError(t, err)
		assert.False(t, state.IsValid())
	})
}

func TestStateRoundTrip(t *testing.T) {
	withStorePath(t, func(path string) {
		store := SessionStore(path)
		original := interfaces.SessionState{
			ID:          "0123456789abcdef0123456789abcdef",
			Generation:  7,
			Sequences:   map[string]int{"reading": 3, "editing": 6},
			LastTouched: ldtime.UnixMillisecondTime(1700000000000),
		}
		require.NoError(t, store.SetSession(original))

		restored, err := SessionStore(path).GetSession()
		require.NoError(t, err)
		assert.Equal(t, original, restored)
	})
}

func TestUpdateReplacesPreviousState(t *testing.T) {
	withStorePath(t, func(path string) {
		store := SessionStore(path)
		require.NoError(t, store.SetSession(interfaces.SessionState{ID: "first", Generation: 1}))
		require.NoError(t, store.SetSession(interfaces.SessionState{ID: "second", Generation: 2}))

		state, err := store.GetSession()
		require.NoError(t, err)
		assert.Equal(t, "second", state.ID)
		assert.Equal(t, 2, state.Generation)
	})
}

func TestUpdateLeavesNoTempFilesBehind(t *testing.T) {
	withStorePath(t, func(path string) {
		store := SessionStore(path)
		require.NoError(t, store.SetSession(interfaces.SessionState{ID: "first", Generation: 1}))

		files, err := ioutil.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Base(path), files[0].Name())
	})
}

func TestMalformedFileIsAnError(t *testing.T) {
	withStorePath(t, func(path string) {
		require.NoError(t, ioutil.WriteFile(path, []byte("not json at all"), 0600))

		_, err := SessionStore(path).GetSession()
		assert.Error(t, err)
	})
}

func TestSetSessionFailsIfDirectoryDoesNotExist(t *testing.T) {
	withStorePath(t, func(path string) {
		store := SessionStore(filepath.Join(path, "sub", "session.json"))
		err := store.SetSession(interfaces.SessionState{ID: "x", Generation: 1})
		assert.Error(t, err)
	})
}
