package systems

import (
	"encoding/json"

	cfg "github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

type savedBestScore struct {
	Score int `json:"score"`
	Level int `json:"level"`
}

// ItemStore is the subset of *gdata.Manager used to persist settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logging.L.Warn("could not initialize persistence", "error", err)
		return err
	}
	store = m
	return nil
}

// SetStore replaces the backing store. A nil store turns persistence off.
func SetStore(s ItemStore) {
	store = s
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(key)
	if err != nil {
		logging.L.Warn("could not load item", "item", key, "error", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		logging.L.Warn("could not parse item", "item", key, "error", err)
		return false, err
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		logging.L.Warn("could not serialize item", "item", key, "error", err)
		return err
	}

	if err := store.SaveItem(key, data); err != nil {
		logging.L.Warn("could not save item", "item", key, "error", err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadJSON(cfg.Settings.SettingsItem, &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(cfg.Settings.SettingsItem, s)
}

// SaveCurrentSettings saves the current sound and window settings
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:  GetSFXVolume(),
		Muted:      IsMuted(),
		Fullscreen: ebiten.IsFullscreen(),
	})
}

// ApplySavedSettingsGlobal applies settings during startup, before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadBestScore returns the highest score recorded so far, or 0.
func LoadBestScore() int {
	var best savedBestScore
	if ok, _ := loadJSON(cfg.Settings.BestScore, &best); !ok {
		return 0
	}
	return best.Score
}

// RecordScore stores score if it beats the saved best and returns the best
// score after the update.
func RecordScore(score, level int) int {
	best := LoadBestScore()
	if score <= best {
		return best
	}

	if err := saveJSON(cfg.Settings.BestScore, savedBestScore{Score: score, Level: level}); err == nil {
		logging.L.Info("new best score", "score", score, "level", level)
	}
	return score
}
