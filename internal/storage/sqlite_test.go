package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "shapelab.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSceneRoundTrip(t *testing.T) {
	store := openTestStore(t)

	doc := []byte("name: test\nbodies: []\n")
	if err := store.SaveScene("test", doc); err != nil {
		t.Fatalf("SaveScene() error: %v", err)
	}

	entry, err := store.Scene("test")
	if err != nil {
		t.Fatalf("Scene() error: %v", err)
	}
	if entry == nil {
		t.Fatal("Scene() returned nil for saved scene")
	}
	if entry.YAML != string(doc) {
		t.Errorf("YAML = %q, expected %q", entry.YAML, doc)
	}
}

func TestSceneMissing(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.Scene("nope")
	if err != nil {
		t.Fatalf("Scene() error: %v", err)
	}
	if entry != nil {
		t.Errorf("Scene() = %+v, expected nil for missing scene", entry)
	}
}

func TestSaveSceneReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveScene("demo", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveScene("demo", []byte("v2")); err != nil {
		t.Fatalf("SaveScene() replace error: %v", err)
	}

	entry, err := store.Scene("demo")
	if err != nil {
		t.Fatal(err)
	}
	if entry.YAML != "v2" {
		t.Errorf("YAML = %q, expected v2", entry.YAML)
	}

	scenes, err := store.ListScenes()
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 1 {
		t.Errorf("ListScenes() returned %d entries, expected 1", len(scenes))
	}
}

func TestListScenesOrdered(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.SaveScene(name, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := store.ListScenes()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(scenes) != len(want) {
		t.Fatalf("ListScenes() returned %d entries, expected %d", len(scenes), len(want))
	}
	for i, w := range want {
		if scenes[i].Name != w {
			t.Errorf("scene %d = %q, expected %q", i, scenes[i].Name, w)
		}
	}
}

func TestDeleteScene(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveScene("gone", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteScene("gone"); err != nil {
		t.Fatalf("DeleteScene() error: %v", err)
	}
	entry, err := store.Scene("gone")
	if err != nil {
		t.Fatal(err)
	}
	if entry != nil {
		t.Error("scene still present after delete")
	}

	// Deleting a missing scene is not an error.
	if err := store.DeleteScene("never-existed"); err != nil {
		t.Errorf("DeleteScene() of missing scene error: %v", err)
	}
}

func TestRunHistory(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.RecordRun("sandbox", 10, i, 1500*time.Microsecond); err != nil {
			t.Fatalf("RecordRun() error: %v", err)
		}
	}
	if _, err := store.RecordRun("other", 3, 1, time.Millisecond); err != nil {
		t.Fatal(err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("RecentRuns() returned %d entries, expected 4", len(runs))
	}
	// Newest first
	if runs[0].Scene != "other" {
		t.Errorf("newest run scene = %q, expected other", runs[0].Scene)
	}
	if runs[1].Hits != 2 {
		t.Errorf("second run hits = %d, expected 2", runs[1].Hits)
	}
	if runs[1].DurationUS != 1500 {
		t.Errorf("duration = %d us, expected 1500", runs[1].DurationUS)
	}

	scoped, err := store.RunsForScene("sandbox", 2)
	if err != nil {
		t.Fatalf("RunsForScene() error: %v", err)
	}
	if len(scoped) != 2 {
		t.Fatalf("RunsForScene() returned %d entries, expected 2", len(scoped))
	}
	for _, r := range scoped {
		if r.Scene != "sandbox" {
			t.Errorf("run scene = %q, expected sandbox", r.Scene)
		}
	}
}
