package proc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// Record is the persisted state of a launched driver process. Restart and
// shutdown operate on these records instead of matching processes by name.
type Record struct {
	PID       int    `json:"pid"`
	Command   string `json:"command"`
	LogPath   string `json:"log_path"`
	Port      int    `json:"port,omitempty"`
	StartedAt int64  `json:"started_at"` // Unix timestamp
}

// Registry persists driver records as JSON in the work dir so a later
// invocation can find the processes an earlier one started.
type Registry struct {
	path string
	mu   sync.Mutex
}

// NewRegistry creates a registry stored at dir/drivers.json.
func NewRegistry(dir string) *Registry {
	return &Registry{path: filepath.Join(dir, "drivers.json")}
}

// Load returns all records. A missing file yields an empty map.
func (r *Registry) Load() (map[string]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Get returns the record for name, if present.
func (r *Registry) Get(name string) (Record, bool, error) {
	records, err := r.Load()
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := records[name]
	return rec, ok, nil
}

// Set stores or replaces the record for name.
func (r *Registry) Set(name string, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		records = make(map[string]Record)
	}
	records[name] = rec
	return r.save(records)
}

// Remove deletes the record for name. Removing an absent record is a no-op.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		// Corrupt registry: surface it, the record may still be there.
		return err
	}
	if _, ok := records[name]; !ok {
		return nil
	}
	delete(records, name)
	return r.save(records)
}

// load reads without locking. Caller must hold r.mu.
func (r *Registry) load() (map[string]Record, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]Record{}, nil
		}
		return nil, err
	}

	records := make(map[string]Record)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// save writes atomically via rename. Caller must hold r.mu.
func (r *Registry) save(records map[string]Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

// Alive reports whether the recorded process still exists and still runs
// the recorded command. The command check guards against PID reuse after
// the driver exits and the kernel hands the PID to something else.
func (rec Record) Alive() bool {
	if rec.PID <= 0 {
		return false
	}
	if err := unix.Kill(rec.PID, 0); err != nil {
		return false
	}
	// A zombie still answers signal 0 but is no longer a driver anyone can
	// talk to.
	if stat, err := os.ReadFile("/proc/" + strconv.Itoa(rec.PID) + "/stat"); err == nil {
		if i := bytes.LastIndexByte(stat, ')'); i >= 0 && i+2 < len(stat) && stat[i+2] == 'Z' {
			return false
		}
	}
	comm, err := os.ReadFile("/proc/" + strconv.Itoa(rec.PID) + "/comm")
	if err != nil {
		// No procfs: signal 0 succeeded, assume alive.
		return true
	}
	return strings.TrimSpace(string(comm)) == filepath.Base(rec.Command)
}

// Uptime returns how long the recorded process has been up.
func (rec Record) Uptime(now time.Time) time.Duration {
	if rec.StartedAt == 0 {
		return 0
	}
	return now.Sub(time.Unix(rec.StartedAt, 0))
}
