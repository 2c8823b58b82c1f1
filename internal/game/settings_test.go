package game

import "testing"

func TestSettingsManager_NilStorageUsesDefaults(t *testing.T) {
	sm := NewSettingsManager(nil)

	s := sm.GetSettings()
	if s == nil {
		t.Fatal("expected settings")
	}
	if *s != *DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
	// Saving without storage is a quiet no-op.
	if err := sm.Save(); err != nil {
		t.Fatalf("save without storage: %v", err)
	}
}

func TestSettingsManager_SettersClampVolume(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetMusicVolume(1.7)
	if sm.GetSettings().MusicVolume != 1 {
		t.Fatalf("expected clamp to 1, got %v", sm.GetSettings().MusicVolume)
	}
	sm.SetSoundVolume(-0.3)
	if sm.GetSettings().SoundVolume != 0 {
		t.Fatalf("expected clamp to 0, got %v", sm.GetSettings().SoundVolume)
	}
	sm.SetMusicVolume(0.25)
	if sm.GetSettings().MusicVolume != 0.25 {
		t.Fatalf("in-range volume must pass through, got %v", sm.GetSettings().MusicVolume)
	}
}

func TestSettingsManager_Toggles(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetMusicEnabled(false)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)

	s := sm.GetSettings()
	if s.MusicEnabled || s.SoundEnabled || !s.Fullscreen {
		t.Fatalf("toggles not applied: %+v", s)
	}
}
