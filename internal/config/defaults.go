package config

const (
	defaultConfigPath        = "/etc/tuned/tuned-adm.toml"
	defaultSystemProfileDir  = "/usr/lib/tuned"
	defaultUserProfileDir    = "/etc/tuned"
	defaultMarkerFile        = "tuned.conf"
	defaultActiveProfilePath = "/etc/tuned/active_profile"
	defaultPIDFile           = "/run/tuned/tuned.pid"
	defaultLockPath          = "/run/tuned/tuned-adm.lock"
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"

	// ConfigPathEnv overrides the default configuration file location.
	ConfigPathEnv = "TUNED_ADM_CONFIG"
)

// Default returns a Config populated with the host defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProfileDirs:   []string{defaultSystemProfileDir, defaultUserProfileDir},
			MarkerFile:    defaultMarkerFile,
			ActiveProfile: defaultActiveProfilePath,
			PIDFile:       defaultPIDFile,
			LockPath:      defaultLockPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
