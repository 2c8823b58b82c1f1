package game

import (
	"fmt"
	"log"

	gdata "github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage keys inside the gdata object store.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// GameSettings is everything the player can persist between runs.
type GameSettings struct {
	MusicVolume  float64 `yaml:"music_volume"`
	SoundVolume  float64 `yaml:"sound_volume"`
	MusicEnabled bool    `yaml:"music_enabled"`
	SoundEnabled bool    `yaml:"sound_enabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.6,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// SettingsManager loads and saves GameSettings through gdata. A nil gdata
// manager degrades to in-memory defaults: the game always starts, storage
// or not.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// NewSettingsManager builds a manager and loads whatever is persisted. A
// failed load is logged and replaced by defaults, never fatal.
func NewSettingsManager(m *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{gdataManager: m}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] load failed, using defaults: %v", err)
	}
	return sm
}

// Load pulls settings from storage into memory. Missing storage or a
// missing property both land on defaults without an error; only a broken
// read or parse reports one (and still lands on defaults).
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	return nil
}

// Save writes the in-memory settings back to storage. With no storage
// attached it is a quiet no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (sm *SettingsManager) GetSettings() *GameSettings { return sm.settings }

// Setters mutate memory only; call Save to persist.

func (sm *SettingsManager) SetMusicVolume(v float64) {
	sm.settings.MusicVolume = clampVolume(v)
}

func (sm *SettingsManager) SetSoundVolume(v float64) {
	sm.settings.SoundVolume = clampVolume(v)
}

func (sm *SettingsManager) SetMusicEnabled(on bool) {
	sm.settings.MusicEnabled = on
}

func (sm *SettingsManager) SetSoundEnabled(on bool) {
	sm.settings.SoundEnabled = on
}

func (sm *SettingsManager) SetFullscreen(on bool) {
	sm.settings.Fullscreen = on
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
