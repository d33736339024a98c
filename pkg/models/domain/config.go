package domain

import "fmt"

type SourceType string

const (
	SourceTypeFile     SourceType = "file"
	SourceTypePostgres SourceType = "postgres"
	SourceTypeS3       SourceType = "s3"
)

// SourceProfile is a named location the input bundle can be loaded from
type SourceProfile struct {
	Name   string
	Type   SourceType
	Path   string
	DSN    string
	Bucket string
	Key    string
	Region string
}

func (p SourceProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Type, p.Name)
}
