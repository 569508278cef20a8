package ai

// Keys under which the classifier configuration is persisted in the
// settings store.
const (
	SettingProvider = "provider"
	SettingAPIKey   = "api_key"
	SettingModel    = "model"
	SettingBaseURL  = "base_url"
	SettingProxy    = "proxy"
)

// FromSettings builds a Config from persisted settings, falling back to
// the defaults for absent or empty keys, and normalizes the result.
func FromSettings(values map[string]string) *Config {
	cfg := DefaultConfig()
	if v := values[SettingProvider]; v != "" {
		cfg.Provider = v
	}
	if v := values[SettingAPIKey]; v != "" {
		cfg.APIKey = v
	}
	if v := values[SettingModel]; v != "" {
		cfg.Model = v
	}
	if v := values[SettingBaseURL]; v != "" {
		cfg.BaseURL = v
	}
	if v := values[SettingProxy]; v != "" {
		cfg.ProxyURL = v
	}
	cfg.Normalize()
	return cfg
}

// Settings returns the persistable key-value form of the Config.
func (c *Config) Settings() map[string]string {
	return map[string]string{
		SettingProvider: c.Provider,
		SettingAPIKey:   c.APIKey,
		SettingModel:    c.Model,
		SettingBaseURL:  c.BaseURL,
		SettingProxy:    c.ProxyURL,
	}
}
