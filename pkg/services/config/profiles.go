package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const DefaultProfilesFile = ".salesatlascfg"

// ProfileRegistry resolves named data sources from an ini file such as
//
//	[warehouse]
//	type = postgres
//	dsn  = postgres://reports@localhost:5432/sales
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]domain.SourceProfile, error)
	GetProfile(ctx context.Context, name string) (*domain.SourceProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// DefaultProfilesPath is $HOME/.salesatlascfg
func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfilesFile
	}
	return filepath.Join(home, DefaultProfilesFile)
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.SourceProfile, error) {
	var profiles []domain.SourceProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := profileFromSection(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*domain.SourceProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	return profileFromSection(section)
}

func profileFromSection(section *ini.Section) (*domain.SourceProfile, error) {
	profile := &domain.SourceProfile{
		Name:   section.Name(),
		Type:   domain.SourceType(section.Key("type").String()),
		Path:   section.Key("path").String(),
		DSN:    section.Key("dsn").String(),
		Bucket: section.Key("bucket").String(),
		Key:    section.Key("key").String(),
		Region: section.Key("region").String(),
	}

	switch profile.Type {
	case domain.SourceTypeFile:
		if profile.Path == "" {
			return nil, fmt.Errorf("profile %s: path is required for file sources", profile.Name)
		}
	case domain.SourceTypePostgres:
		if profile.DSN == "" {
			return nil, fmt.Errorf("profile %s: dsn is required for postgres sources", profile.Name)
		}
	case domain.SourceTypeS3:
		if profile.Bucket == "" || profile.Key == "" {
			return nil, fmt.Errorf("profile %s: bucket and key are required for s3 sources", profile.Name)
		}
	default:
		return nil, fmt.Errorf("profile %s: unsupported source type %q", profile.Name, profile.Type)
	}

	return profile, nil
}
