package resolver

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/envfile"
)

func writeEnv(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, envfile.Save(path, map[string]string{envfile.ContainerNameKey: name}))
	return path
}

func TestResolveDevelopment(t *testing.T) {
	path := writeEnv(t, "web-app-abc123")

	got, err := Resolve(config.Default(), config.RC{}, path)
	require.NoError(t, err)
	assert.Equal(t, "web-app-abc123", got)
}

func TestResolveProduction(t *testing.T) {
	path := writeEnv(t, "web-app-abc123")

	cfg := config.Default()
	cfg.Environment = config.EnvProduction

	got, err := Resolve(cfg, config.RC{}, path)
	require.NoError(t, err)
	assert.Equal(t, "web-app-abc123-prod", got)
}

func TestResolveMissingEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	_, err := Resolve(config.Default(), config.RC{}, path)
	var notFound *envfile.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveServiceFromRC(t *testing.T) {
	cfg := config.Default()
	cfg.Service = "postgres"

	rc := config.RC{"POSTGRES_CONTAINER_NAME": "pg-main"}

	got, err := Resolve(cfg, rc, filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "pg-main", got)
}

func TestResolveServiceFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_CONTAINER_NAME", "redis-box")

	cfg := config.Default()
	cfg.Service = "redis"

	got, err := Resolve(cfg, config.RC{}, filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "redis-box", got)
}

func TestResolveServiceMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Service = "ghost"

	_, err := Resolve(cfg, config.RC{}, filepath.Join(t.TempDir(), ".env"))
	var svcErr *ServiceNotFoundError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "GHOST_CONTAINER_NAME", svcErr.Key)
}

func TestServiceKey(t *testing.T) {
	assert.Equal(t, "WEB_CONTAINER_NAME", ServiceKey("web"))
	assert.Equal(t, "WEB_CONTAINER_NAME", ServiceKey("WEB"))
}
