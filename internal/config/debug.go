package config

import "os"

func IsDebug() bool {
	return os.Getenv("PHOTOCOACH_DEBUG") == "1"
}
