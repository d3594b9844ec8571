package storage

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/mstern/zenith/internal/errors"
)

type doc struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	kv, err := NewDiskvKV(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewDiskvKV() error = %v", err)
	}
	return NewAdapter(kv)
}

func TestAdapterRoundTrip(t *testing.T) {
	a := newTestAdapter(t)

	in := doc{Name: "habits", Items: []string{"meditate", "journal"}}
	if err := a.Save("habits", in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out doc
	a.Load("habits", &out)
	if out.Name != in.Name || len(out.Items) != 2 || out.Items[0] != "meditate" {
		t.Errorf("Load() = %+v, want %+v", out, in)
	}
}

func TestAdapterLoadMissingKeyYieldsDefault(t *testing.T) {
	a := newTestAdapter(t)

	out := doc{Name: "unchanged"}
	a.Load("absent", &out)
	if out.Name != "unchanged" {
		t.Errorf("Load() of missing key mutated target: %+v", out)
	}

	var list []string
	a.Load("absent", &list)
	if list != nil {
		t.Errorf("Load() of missing key produced %v, want nil", list)
	}
}

func TestAdapterLoadCorruptDocumentYieldsDefault(t *testing.T) {
	kv, err := NewDiskvKV(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewDiskvKV() error = %v", err)
	}
	if err := kv.Write("habits", []byte("{not json")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	a := NewAdapter(kv)
	var out doc
	a.Load("habits", &out)
	if out.Name != "" || out.Items != nil {
		t.Errorf("Load() of corrupt document mutated target: %+v", out)
	}
}

func TestAdapterLoadLegacyFallback(t *testing.T) {
	kv, err := NewDiskvKV(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewDiskvKV() error = %v", err)
	}
	a := NewAdapter(kv)

	if err := a.Save("zenith_habits", doc{Name: "legacy"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out doc
	a.Load("habits", &out, "zenith_habits")
	if out.Name != "legacy" {
		t.Errorf("Load() did not fall back to legacy key: %+v", out)
	}

	// The canonical key wins when both exist.
	if err := a.Save("habits", doc{Name: "canonical"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	out = doc{}
	a.Load("habits", &out, "zenith_habits")
	if out.Name != "canonical" {
		t.Errorf("Load() preferred legacy over canonical: %+v", out)
	}
}

type failingKV struct{}

func (failingKV) Read(string) ([]byte, error) { return nil, errors.New("read failed") }
func (failingKV) Write(string, []byte) error  { return errors.New("disk full") }
func (failingKV) Erase(string) error          { return errors.New("erase failed") }

func TestAdapterSaveReportsPersistenceError(t *testing.T) {
	a := NewAdapter(failingKV{})
	err := a.Save("habits", doc{})
	if err == nil {
		t.Fatal("Save() on failing backend returned nil")
	}
	if !apperrors.IsPersistence(err) {
		t.Errorf("Save() error = %v, want PersistenceError", err)
	}
}

func TestAdapterErase(t *testing.T) {
	a := newTestAdapter(t)
	if err := a.Save("habits", doc{Name: "x"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := a.Erase("habits", "never-written"); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}
	out := doc{Name: "unchanged"}
	a.Load("habits", &out)
	if out.Name != "unchanged" {
		t.Errorf("document survived Erase(): %+v", out)
	}
}
