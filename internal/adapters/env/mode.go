package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DevVar = "LANDING_DEV"

// IsDev reports whether dev mode was requested through the environment.
func IsDev() bool {
	switch os.Getenv(DevVar) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}

// LoadDotEnv loads each file that exists into the process environment and
// returns the ones that were loaded. Variables already set are not
// overridden.
func LoadDotEnv(files ...string) ([]string, error) {
	var loaded []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		if err := godotenv.Load(f); err != nil {
			return loaded, err
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
