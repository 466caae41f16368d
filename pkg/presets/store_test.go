package presets

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/sparks/pkg/config"
)

func testConfig() *config.EffectConfig {
	return &config.EffectConfig{
		Name: "sparkle",
		Emitters: []config.EmitterConfig{
			{
				Capacity: 100,
				Rate:     50,
				Lifespan: "[0.5 1.5]",
				Speed:    "[10 40]",
				Profile:  config.ProfileConfig{Type: "circle", Radius: 8, Radiate: "out"},
			},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// Point platform storage at a throwaway home directory.
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{AppName: "test_sparks_presets"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return NewStore(manager)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()

	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !store.Exists("sparkle") {
		t.Fatal("Exists returned false after Save")
	}

	loaded, err := store.Load("sparkle")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != cfg.Name {
		t.Errorf("name: got %q, want %q", loaded.Name, cfg.Name)
	}
	if len(loaded.Emitters) != 1 {
		t.Fatalf("emitters: got %d, want 1", len(loaded.Emitters))
	}
	em := loaded.Emitters[0]
	if em.Capacity != 100 || em.Rate != 50 {
		t.Errorf("emitter: got capacity %d rate %g", em.Capacity, em.Rate)
	}
	if em.Profile.Type != "circle" || em.Profile.Radius != 8 {
		t.Errorf("profile: got %+v", em.Profile)
	}
	if em.Lifespan != "[0.5 1.5]" {
		t.Errorf("lifespan string: got %q", em.Lifespan)
	}
}

func TestStoreOverwrite(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()
	if err := store.Save(cfg); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	cfg.Emitters[0].Rate = 999
	if err := store.Save(cfg); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := store.Load("sparkle")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Emitters[0].Rate != 999 {
		t.Errorf("rate after overwrite: got %g, want 999", loaded.Emitters[0].Rate)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load("nonexistent"); err == nil {
		t.Error("loading a missing preset succeeded")
	}
	if store.Exists("nonexistent") {
		t.Error("Exists returned true for a missing preset")
	}
}

func TestStoreSaveRejectsInvalid(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&config.EffectConfig{Emitters: testConfig().Emitters}); err == nil {
		t.Error("saved a preset with no name")
	}
	if err := store.Save(&config.EffectConfig{Name: "broken"}); err == nil {
		t.Error("saved a preset with no emitters")
	}
}

func TestStoreDegradedMode(t *testing.T) {
	store := NewStore(nil)

	// Saves are logged no-ops, loads report nothing stored.
	if err := store.Save(testConfig()); err != nil {
		t.Errorf("degraded Save: %v", err)
	}
	if _, err := store.Load("sparkle"); err == nil {
		t.Error("degraded Load succeeded")
	}
	if store.Exists("sparkle") {
		t.Error("degraded Exists returned true")
	}
}
