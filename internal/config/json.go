package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
	} `json:"app,omitempty"`

	Session struct {
		Expiry              Duration `json:"expiry"`
		KeyCacheTTL         Duration `json:"key_cache_ttl"`
		UndecryptablePolicy string   `json:"undecryptable_policy"`
		DefaultScheme       string   `json:"default_scheme"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address   string `json:"address"`
			Password  string `json:"password"`
			DB        int    `json:"db"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		VoiceAddress   string   `json:"voice_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Attempts       int      `json:"attempts"`
		RetryWait      Duration `json:"retry_wait"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
			LogLevel:     jsonCfg.App.LogLevel,
		},
		Session: Session{
			Expiry:              time.Duration(jsonCfg.Session.Expiry),
			KeyCacheTTL:         time.Duration(jsonCfg.Session.KeyCacheTTL),
			UndecryptablePolicy: jsonCfg.Session.UndecryptablePolicy,
			DefaultScheme:       jsonCfg.Session.DefaultScheme,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:   jsonCfg.Storage.Redis.Address,
				Password:  jsonCfg.Storage.Redis.Password,
				DB:        jsonCfg.Storage.Redis.DB,
				KeyPrefix: jsonCfg.Storage.Redis.KeyPrefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			VoiceAddress:   jsonCfg.Adapter.VoiceAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Attempts:       jsonCfg.Adapter.Attempts,
			RetryWait:      time.Duration(jsonCfg.Adapter.RetryWait),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
