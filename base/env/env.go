package env

import (
	"os"
)

// PodName example: k8ssta-marketcore-api-6868d88fbd-bz8zv
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	name, _ := os.Hostname()
	return name
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: auction-ender
func AppName() string {
	return os.Getenv("APP_NAME")
}
