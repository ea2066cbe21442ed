package epfiledata

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/ghodss/yaml.v1"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

type fileConfigSource struct {
	updates         interfaces.StreamConfigUpdates
	absFilePaths    []string
	reloaderFactory ReloaderFactory
	loggers         ldlog.Loggers
	isInitialized   bool
	readyCh         chan<- struct{}
	readyOnce       sync.Once
	closeOnce       sync.Once
	closeReloaderCh chan struct{}
}

func newFileConfigSource(
	context interfaces.ClientContext,
	updates interfaces.StreamConfigUpdates,
	filePaths []string,
	reloaderFactory ReloaderFactory,
) (interfaces.StreamConfigSource, error) {
	abs, err := absFilePaths(filePaths)
	if err != nil {
		// COVERAGE: there's no reliable cross-platform way to simulate an invalid path in unit tests
		return nil, err
	}

	fs := &fileConfigSource{
		updates:         updates,
		absFilePaths:    abs,
		reloaderFactory: reloaderFactory,
		loggers:         context.GetLogging().Loggers,
	}
	fs.loggers.SetPrefix("FileConfigSource:")
	return fs, nil
}

func (fs *fileConfigSource) IsInitialized() bool {
	return fs.isInitialized
}

func (fs *fileConfigSource) Start(closeWhenReady chan<- struct{}) {
	fs.readyCh = closeWhenReady
	fs.reload()

	// If there is no reloader, then we signal readiness immediately regardless of whether the
	// data load succeeded or failed.
	if fs.reloaderFactory == nil {
		fs.signalStartComplete(fs.isInitialized)
		return
	}

	// If there is a reloader, and if we haven't yet successfully loaded data, then the
	// readiness signal will happen the first time we do get valid data (in reload).
	fs.closeReloaderCh = make(chan struct{})
	err := fs.reloaderFactory(fs.absFilePaths, fs.loggers, fs.reload, fs.closeReloaderCh)
	if err != nil {
		fs.loggers.Errorf("Unable to start reloader: %s", err)
	}
}

// reload attempts to reread all of the configured source files and replace the stream
// configuration state. If any file cannot be loaded or parsed, the state is not modified.
func (fs *fileConfigSource) reload() {
	filesData := make([]fileContents, 0)
	for _, path := range fs.absFilePaths {
		data, err := readFile(path)
		if err != nil {
			fs.loggers.Errorf("Unable to load stream configuration: %s [%s]", err, path)
			return
		}
		filesData = append(filesData, data)
	}
	configs, err := mergeFileContents(filesData...)
	if err != nil {
		fs.loggers.Error(err)
		return
	}
	fs.updates.ApplyStreamConfigs(configs)
	fs.signalStartComplete(true)
}

func (fs *fileConfigSource) signalStartComplete(succeeded bool) {
	fs.readyOnce.Do(func() {
		fs.isInitialized = succeeded
		if fs.readyCh != nil {
			close(fs.readyCh)
		}
	})
}

func (fs *fileConfigSource) Close() error {
	fs.closeOnce.Do(func() {
		if fs.closeReloaderCh != nil {
			close(fs.closeReloaderCh)
		}
	})
	return nil
}

func absFilePaths(paths []string) ([]string, error) {
	absPaths := make([]string, 0)
	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			// COVERAGE: there's no reliable cross-platform way to simulate an invalid path in unit tests
			return nil, fmt.Errorf("unable to determine absolute path for '%s'", p)
		}
		absPaths = append(absPaths, absPath)
	}
	return absPaths, nil
}

type fileContents struct {
	Streams *map[string]streamConfigRep `json:"streams"`
}

type streamConfigRep struct {
	SampleRatio int    `json:"sample_ratio"`
	Disabled    bool   `json:"disabled"`
	Destination string `json:"destination"`
}

func readFile(path string) (fileContents, error) {
	var data fileContents
	var rawData []byte
	var err error
	if rawData, err = ioutil.ReadFile(path); err != nil { // nolint:gosec // G304: ok to read file into variable
		return data, fmt.Errorf("unable to read file: %s", err)
	}
	if detectJSON(rawData) {
		err = json.Unmarshal(rawData, &data)
	} else {
		err = yaml.Unmarshal(rawData, &data)
	}
	if err != nil {
		err = fmt.Errorf("error parsing file: %s", err)
	}
	return data, err
}

func detectJSON(rawData []byte) bool {
	// A valid JSON file for our purposes must be an object, i.e. it must start with '{'
	return strings.HasPrefix(strings.TrimLeftFunc(string(rawData), unicode.IsSpace), "{")
}

func mergeFileContents(allFileContents ...fileContents) (map[string]interfaces.StreamConfig, error) {
	all := make(map[string]interfaces.StreamConfig)
	for _, d := range allFileContents {
		if d.Streams == nil {
			continue
		}
		for name, rep := range *d.Streams {
			if _, exists := all[name]; exists {
				return nil, fmt.Errorf("stream '%s' is specified by multiple files", name)
			}
			all[name] = interfaces.StreamConfig{
				SampleRatio: rep.SampleRatio,
				Disabled:    rep.Disabled,
				Destination: rep.Destination,
			}
		}
	}
	return all, nil
}
