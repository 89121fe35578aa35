package config

import "fmt"

// ClientApp holds the application settings of the client binaries.
type ClientApp struct {
	// NotesPassphrase is empty when it has to be prompted for.
	NotesPassphrase string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	Backend       string
	RetryAttempts int
	DB            DBConfig
	Files         FilesConfig
}

// ClientLog holds the log file settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the validated configuration handed to cmd/client and
// cmd/notesctl.
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig loads the client configuration from defaults, the JSON
// file, the .env file, the environment and the command-line args, in
// increasing priority, and validates it.
func GetClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	return buildClientConfig(builder)
}

// GetClientConfigWithOverrides is GetClientConfig for callers that parse
// their own command line (cobra). Non-zero fields of overrides take the place
// of the flags source.
func GetClientConfigWithOverrides(overrides *StructuredConfig) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withDefaults().
		withEnv().
		withOverrides(overrides).
		withJSON()

	return buildClientConfig(builder)
}

func buildClientConfig(builder *configBuilder) (*ClientConfig, error) {
	cfg, err := builder.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	timeout := cfg.Storage.DB.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	return &ClientConfig{
		App: ClientApp{
			NotesPassphrase: cfg.App.NotesPassphrase,
		},
		Storage: ClientStorage{
			Backend:       cfg.Storage.Backend,
			RetryAttempts: cfg.Storage.RetryAttempts,
			DB: DBConfig{
				DSN:            cfg.Storage.DB.DSN,
				ConnectTimeout: timeout,
			},
			Files: cfg.Storage.Files,
		},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}
}
