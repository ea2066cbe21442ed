package epfilestore

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"

	"github.com/eventplatform/go-client-sdk/interfaces"
)

type fileSessionStore struct {
	path string
	lock sync.Mutex
}

// SessionStore creates a session store that keeps the session state in a JSON file at the
// given path.
//
// A missing file is not an error; it simply means no session has been persisted yet, and the
// SDK will start a new one. The file is replaced atomically on every update, so a crash
// mid-write cannot leave partial state behind.
func SessionStore(path string) interfaces.SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) GetSession() (interfaces.SessionState, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := ioutil.ReadFile(s.path) // nolint:gosec // G304: ok to read file into variable
	if err != nil {
		if os.IsNotExist(err) {
			return interfaces.SessionState{}, nil
		}
		return interfaces.SessionState{}, fmt.Errorf("unable to read session file: %s", err)
	}
	state, err := unmarshalSessionState(data)
	if err != nil {
		return interfaces.SessionState{}, fmt.Errorf("malformed session file: %s", err)
	}
	return state, nil
}

func (s *fileSessionStore) SetSession(state interfaces.SessionState) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	data := marshalSessionState(state)
	dir := filepath.Dir(s.path)
	f, err := ioutil.TempFile(dir, ".session")
	if err != nil {
		return fmt.Errorf("unable to create session file: %s", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("unable to write session file: %s", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("unable to write session file: %s", err)
	}
	if err := os.Rename(f.Name(), s.path); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("unable to replace session file: %s", err)
	}
	return nil
}

func marshalSessionState(state interfaces.SessionState) []byte {
	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("id").String(state.ID)
	obj.Name("generation").Int(state.Generation)
	seqObj := obj.Name("sequences").Object()
	for name, sequence := range state.Sequences {
		seqObj.Name(name).Int(sequence)
	}
	seqObj.End()
	obj.Name("last_touched").Float64(float64(state.LastTouched))
	obj.End()
	return w.Bytes()
}

func unmarshalSessionState(data []byte) (interfaces.SessionState, error) {
	var state interfaces.SessionState
	r := jreader.NewReader(data)
	for obj := r.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "id":
			state.ID = r.String()
		case "generation":
			state.Generation = r.Int()
		case "sequences":
			state.Sequences = make(map[string]int)
			for seqObj := r.Object(); seqObj.Next(); {
				state.Sequences[string(seqObj.Name())] = r.Int()
			}
		case "last_touched":
			state.LastTouched = ldtime.UnixMillisecondTime(r.Float64())
		}
	}
	return state, r.Error()
}
