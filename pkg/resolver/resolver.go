// Package resolver computes the container identity an invocation targets.
package resolver

import (
	"fmt"
	"strings"

	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/envfile"
)

// ServiceNotFoundError means a -s invocation named a service with no
// container-name override anywhere in the lookup chain.
type ServiceNotFoundError struct {
	Service string
	Key     string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("no container name for service %q: set %s in %s or the environment",
		e.Service, e.Key, config.RCFileName)
}

// ServiceKey is the rc/environment key holding a service's container name.
func ServiceKey(service string) string {
	return strings.ToUpper(service) + "_CONTAINER_NAME"
}

// Resolve returns the identity for this invocation. Called once per run; the
// result is threaded as a plain value so repeated command constructions never
// re-read the filesystem.
//
// Order: a named service wins, then the production variant of the persisted
// dev name, then the persisted dev name itself.
func Resolve(cfg config.Config, rc config.RC, envPath string) (string, error) {
	if cfg.Service != "" {
		key := ServiceKey(cfg.Service)
		if name, ok := rc.Lookup(key); ok {
			return name, nil
		}
		return "", &ServiceNotFoundError{Service: cfg.Service, Key: key}
	}

	name, err := envfile.ContainerName(envPath)
	if err != nil {
		return "", err
	}
	if cfg.Production() {
		return name + "-prod", nil
	}
	return name, nil
}
