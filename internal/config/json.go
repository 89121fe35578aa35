package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		NotesPassphrase string `json:"notes_passphrase"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend       string `json:"backend"`
		RetryAttempts int    `json:"retry_attempts"`

		DB struct {
			DSN            string   `json:"dsn"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`

		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			NotesPassphrase: jsonCfg.App.NotesPassphrase,
		},
		Storage: Storage{
			Backend:       jsonCfg.Storage.Backend,
			RetryAttempts: jsonCfg.Storage.RetryAttempts,
			DB: DBConfig{
				DSN:            jsonCfg.Storage.DB.DSN,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
			Files: FilesConfig{
				Dir: jsonCfg.Storage.Files.Dir,
			},
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
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
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
