package generatedocumentfields

import (
	"fmt"
	"time"

	"document-workers/internal/common/config"
)

type Config struct {
	Enabled            bool          `mapstructure:"enabled"`
	MaxJobsActive      int           `mapstructure:"max_jobs_active"`
	Timeout            time.Duration `mapstructure:"timeout"`
	Environment        string        `mapstructure:"environment"`
	UtilityUsageIndex  string        `mapstructure:"utility_usage_index"`
	PublishDiagnostics bool          `mapstructure:"publish_diagnostics"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	return nil
}

func createConfigFromAppConfig(appConfig *config.Config, customConfig *Config) *Config {
	if customConfig != nil {
		return customConfig
	}

	cfg := DefaultConfig()

	if appConfig != nil {
		if workerCfg, exists := appConfig.Workers[TaskType]; exists {
			cfg.Enabled = workerCfg.Enabled
			if workerCfg.MaxJobsActive > 0 {
				cfg.MaxJobsActive = workerCfg.MaxJobsActive
			}
			if workerCfg.Timeout > 0 {
				cfg.Timeout = config.GetDuration(workerCfg.Timeout)
			}
		}

		cfg.Environment = appConfig.Documents.Environment
		cfg.UtilityUsageIndex = appConfig.Documents.UtilityUsageIndex
		cfg.PublishDiagnostics = appConfig.Integrations.AWS.SNS.Enabled
	}

	return cfg
}
