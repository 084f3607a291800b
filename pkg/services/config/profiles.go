package config

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads datasource profiles from an INI file, one section per profile.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.DatasourceProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.DatasourceProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.DatasourceProfile{}, fmt.Errorf("profile %s not found", name)
	}

	profile := domain.DatasourceProfile{
		Name:     name,
		Driver:   domain.DriverType(section.Key("driver").String()),
		URI:      section.Key("uri").String(),
		User:     section.Key("user").String(),
		Password: section.Key("password").String(),
		Database: section.Key("database").String(),
		DSN:      section.Key("dsn").String(),
		Path:     section.Key("path").String(),
	}

	switch profile.Driver {
	case domain.DriverNeo4j, domain.DriverDatabricks, domain.DriverSnowflake, domain.DriverDuckDB:
		return profile, nil
	case "":
		return domain.DatasourceProfile{}, fmt.Errorf("profile %s has no driver", name)
	default:
		return domain.DatasourceProfile{}, fmt.Errorf("profile %s: unsupported driver %q", name, profile.Driver)
	}
}
