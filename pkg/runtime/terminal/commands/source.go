package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/store/bundle"
	"github.com/de-tools/sales-atlas/pkg/store/sql"
)

// SourceRequest describes where the analyze command should read its bundle from
type SourceRequest struct {
	Input        string
	Profile      string
	ProfilesPath string
}

// SourceFactory opens a bundle source; the returned close func releases it
type SourceFactory func(ctx context.Context, req SourceRequest) (bundle.Source, func() error, error)

func noopClose() error { return nil }

// DefaultSourceFactory reads --input as a JSON file ("-" for stdin),
// otherwise resolves --profile from the profiles file
func DefaultSourceFactory(ctx context.Context, req SourceRequest) (bundle.Source, func() error, error) {
	switch {
	case req.Input == "-":
		return bundle.NewReaderSource(os.Stdin), noopClose, nil
	case req.Input != "":
		return bundle.NewFileSource(req.Input), noopClose, nil
	case req.Profile == "":
		return nil, nil, fmt.Errorf("either --input or --profile is required")
	}

	path := req.ProfilesPath
	if path == "" {
		path = config.DefaultProfilesPath()
	}
	registry, err := config.NewProfileRegistry(path)
	if err != nil {
		return nil, nil, err
	}
	profile, err := registry.GetProfile(ctx, req.Profile)
	if err != nil {
		return nil, nil, err
	}

	return OpenProfile(ctx, *profile)
}

// OpenProfile opens the bundle source a profile points to
func OpenProfile(ctx context.Context, profile domain.SourceProfile) (bundle.Source, func() error, error) {
	switch profile.Type {
	case domain.SourceTypeFile:
		return bundle.NewFileSource(profile.Path), noopClose, nil
	case domain.SourceTypePostgres:
		db, err := sql.NewDB(ctx, sql.Settings{DSN: profile.DSN})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect profile %s: %w", profile.Name, err)
		}
		src, err := sql.NewSource(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return src, db.Close, nil
	case domain.SourceTypeS3:
		client, err := bundle.NewS3Client(ctx, profile.Region)
		if err != nil {
			return nil, nil, err
		}
		return bundle.NewS3Source(client, profile.Bucket, profile.Key), noopClose, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source type %q", profile.Type)
	}
}
