package config

// SettingsConfig holds defaults for the values persisted between runs
type SettingsConfig struct {
	AppName      string
	SettingsItem string
	BestScore    string
	Fullscreen   bool
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:      "kallis-world",
		SettingsItem: "settings",
		BestScore:    "bestscore",
	}
}
