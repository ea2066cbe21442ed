package epfiledata

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"

	"github.com/eventplatform/go-client-sdk/interfaces"
	"github.com/eventplatform/go-client-sdk/internal"
	"github.com/eventplatform/go-client-sdk/internal/sharedtest"
	"github.com/eventplatform/go-client-sdk/internal/streamstore"
)

type fileConfigSourceTestParams struct {
	source         interfaces.StreamConfigSource
	store          *streamstore.StreamStore
	mockLog        *ldlogtest.MockLog
	closeWhenReady chan struct{}
}

func (p fileConfigSourceTestParams) waitForStart() {
	p.source.Start(p.closeWhenReady)
	<-p.closeWhenReady
}

func withFileConfigSourceTestParams(
	factory interfaces.StreamConfigSourceFactory,
	action func(fileConfigSourceTestParams),
) {
	mockLog := ldlogtest.NewMockLog()
	testContext := internal.NewClientContextImpl(
		interfaces.BasicConfiguration{},
		interfaces.HTTPConfiguration{CreateHTTPClient: func() *http.Client { return http.DefaultClient }},
		interfaces.LoggingConfiguration{Loggers: mockLog.Loggers},
	)
	store := streamstore.NewStreamStore()
	source, err := factory.CreateStreamConfigSource(testContext, store)
	if err != nil {
		panic(err)
	}
	defer source.Close()
	action(fileConfigSourceTestParams{source, store, mockLog, make(chan struct{})})
}

func TestNewFileConfigSourceYaml(t *testing.T) {
	fileData := `
---
streams:
  ui.interactions:
    sample_ratio: 10
  legacy.clicks:
    disabled: true
`
	sharedtest.WithTempFileContaining([]byte(fileData), func(filename string) {
		factory := ConfigSource().FilePaths(filename)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			require.True(t, p.source.IsInitialized())

			sc, ok := p.store.Get("ui.interactions")
			require.True(t, ok)
			assert.Equal(t, 10, sc.SampleRatio)

			sc, ok = p.store.Get("legacy.clicks")
			require.True(t, ok)
			assert.True(t, sc.Disabled)
		})
	})
}

func TestNewFileConfigSourceJson(t *testing.T) {
	fileData := `{"streams": {"debug.traces": {"destination": "https://intake-debug.example.com/v1/events"}}}`
	sharedtest.WithTempFileContaining([]byte(fileData), func(filename string) {
		factory := ConfigSource().FilePaths(filename)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			require.True(t, p.source.IsInitialized())

			sc, ok := p.store.Get("debug.traces")
			require.True(t, ok)
			assert.Equal(t, "https://intake-debug.example.com/v1/events", sc.Destination)
		})
	})
}

func TestNewFileConfigSourceWithTwoFiles(t *testing.T) {
	sharedtest.WithTempFileContaining([]byte(`{"streams": {"stream1": {"sample_ratio": 2}}}`), func(filename1 string) {
		sharedtest.WithTempFileContaining([]byte(`{"streams": {"stream2": {"sample_ratio": 3}}}`), func(filename2 string) {
			factory := ConfigSource().FilePaths(filename1, filename2)
			withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
				p.waitForStart()
				require.True(t, p.source.IsInitialized())

				sc, ok := p.store.Get("stream1")
				require.True(t, ok)
				assert.Equal(t, 2, sc.SampleRatio)

				sc, ok = p.store.Get("stream2")
				require.True(t, ok)
				assert.Equal(t, 3, sc.SampleRatio)
			})
		})
	})
}

func TestNewFileConfigSourceWithTwoConflictingFiles(t *testing.T) {
	fileData := `{"streams": {"stream1": {"sample_ratio": 2}}}`
	sharedtest.WithTempFileContaining([]byte(fileData), func(filename1 string) {
		sharedtest.WithTempFileContaining([]byte(fileData), func(filename2 string) {
			factory := ConfigSource().FilePaths(filename1, filename2)
			withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
				p.waitForStart()
				require.False(t, p.source.IsInitialized())
				assert.False(t, p.store.Initialized())
			})
		})
	})
}

func TestNewFileConfigSourceBadData(t *testing.T) {
	sharedtest.WithTempFileContaining([]byte(`bad data`), func(filename string) {
		factory := ConfigSource().FilePaths(filename)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			require.False(t, p.source.IsInitialized())
			p.mockLog.AssertMessageMatch(t, true, ldlog.Error, "parsing file")
		})
	})
}

func TestNewFileConfigSourceMissingFile(t *testing.T) {
	sharedtest.WithTempFileContaining(nil, func(filename string) {
		require.NoError(t, os.Remove(filename))

		factory := ConfigSource().FilePaths(filename)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			assert.False(t, p.source.IsInitialized())
		})
	})
}

func TestNewFileConfigSourceEmptyFile(t *testing.T) {
	sharedtest.WithTempFileContaining([]byte{}, func(filename string) {
		factory := ConfigSource().FilePaths(filename)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			require.True(t, p.source.IsInitialized())
			assert.True(t, p.store.Initialized())
			_, ok := p.store.Get("anything")
			assert.False(t, ok)
		})
	})
}

func TestReloaderFailureDoesNotPreventStart(t *testing.T) {
	fileData := `{"streams": {"stream1": {"sample_ratio": 2}}}`
	sharedtest.WithTempFileContaining([]byte(fileData), func(filename string) {
		badReloader := func(paths []string, loggers ldlog.Loggers, reload func(), closeCh <-chan struct{}) error {
			return os.ErrInvalid
		}
		factory := ConfigSource().FilePaths(filename).Reloader(badReloader)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			require.True(t, p.source.IsInitialized())
			p.mockLog.AssertMessageMatch(t, true, ldlog.Error, "Unable to start reloader")
		})
	})
}

func TestReloaderIsStoppedOnClose(t *testing.T) {
	fileData := `{"streams": {"stream1": {"sample_ratio": 2}}}`
	sharedtest.WithTempFileContaining([]byte(fileData), func(filename string) {
		closed := make(chan struct{})
		reloader := func(paths []string, loggers ldlog.Loggers, reload func(), closeCh <-chan struct{}) error {
			go func() {
				<-closeCh
				close(closed)
			}()
			return nil
		}
		factory := ConfigSource().FilePaths(filename).Reloader(reloader)
		withFileConfigSourceTestParams(factory, func(p fileConfigSourceTestParams) {
			p.waitForStart()
			require.NoError(t, p.source.Close())
			select {
			case <-closed:
			case <-time.After(time.Second):
				t.Error("reloader was not stopped within the timeout")
			}
		})
	})
}
