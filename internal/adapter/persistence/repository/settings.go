package repository

// Settings scopes every table under a deployment environment (sandbox vs
// production). It is constructed once at bootstrap and injected into each
// repository so no package-level flag decides which namespace a query hits.
type Settings struct {
	Environment string
}

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

func NewSettingsFromEnv() Settings {
	env := getenvDefault("ENVIRONMENT", EnvironmentSandbox)
	if env != EnvironmentSandbox && env != EnvironmentProduction {
		env = EnvironmentSandbox
	}
	return Settings{Environment: env}
}

// TableName prefixes the base collection name with the environment namespace,
// e.g. "sandbox_lotes".
func (s Settings) TableName(base string) string {
	return s.Environment + "_" + base
}
