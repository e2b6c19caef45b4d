package config

import (
	"os"
	"time"

	"github.com/jimforte/Misago/consts"
)

func Load() {
	setEnvVar("SERVER_HOST", "0.0.0.0")
	setEnvVar("SERVER_PORT", "5000")

	setEnvVar("FORUM_API_URL", "http://127.0.0.1:8000")
	setEnvVar("FORUM_THREAD_ID", "1")

	setEnvVar("VERSION_INDEX_URL", "https://releases.misago-project.org/latest")
	setEnvVar("VERSION_CHECK_TIMEOUT", "10s")
}

// CheckTimeout bounds every version-check request; see VERSION_CHECK_TIMEOUT.
func CheckTimeout() time.Duration {
	d, err := time.ParseDuration(os.Getenv("VERSION_CHECK_TIMEOUT"))
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func getEnvVar(name, defaultValue string) string {
	if v := os.Getenv(name); v != consts.EmptyString {
		return v
	}
	return defaultValue
}

func setEnvVar(name, defaultValue string) {
	if os.Getenv(name) != consts.EmptyString {
		return
	}
	_ = os.Setenv(name, defaultValue)
}
