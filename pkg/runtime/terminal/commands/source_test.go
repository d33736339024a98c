package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/bundle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceBundle = `{
  "sellers": [{"id": "s1", "first_name": "Ivan", "last_name": "Petrov"}],
  "products": [{"sku": "A", "purchase_price": 1}],
  "purchase_records": [{"seller_id": "s1", "items": [{"sku": "A", "quantity": 1, "sale_price": 2, "discount": 0}]}]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultSourceFactory(t *testing.T) {
	dir := t.TempDir()
	bundlePath := writeFile(t, dir, "bundle.json", sourceBundle)
	profilesPath := writeFile(t, dir, "profiles.ini", "[local]\ntype = file\npath = "+bundlePath+"\n\n[broken]\ntype = ftp\n")

	tests := []struct {
		name    string
		req     SourceRequest
		wantErr string
	}{
		{
			name: "InputFile",
			req:  SourceRequest{Input: bundlePath},
		},
		{
			name: "FileProfile",
			req:  SourceRequest{Profile: "local", ProfilesPath: profilesPath},
		},
		{
			name:    "NothingRequested",
			req:     SourceRequest{},
			wantErr: "either --input or --profile is required",
		},
		{
			name:    "UnknownProfile",
			req:     SourceRequest{Profile: "missing", ProfilesPath: profilesPath},
			wantErr: "profile missing not found",
		},
		{
			name:    "UnsupportedProfileType",
			req:     SourceRequest{Profile: "broken", ProfilesPath: profilesPath},
			wantErr: "unsupported source type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, closeFn, err := DefaultSourceFactory(context.Background(), tc.req)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeFn()) }()

			b, err := src.Load(context.Background())
			require.NoError(t, err)
			require.Len(t, b.Sellers, 1)
			assert.Equal(t, "s1", b.Sellers[0].ID)
		})
	}
}

func TestOpenProfile_S3(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	src, closeFn, err := OpenProfile(context.Background(), domain.SourceProfile{
		Name:   "archive",
		Type:   domain.SourceTypeS3,
		Bucket: "sales",
		Key:    "2024/bundle.json",
		Region: "eu-west-1",
	})
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.IsType(t, &bundle.S3Source{}, src)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
