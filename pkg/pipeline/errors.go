package pipeline

import "errors"

var (
	ErrCleanup       = errors.New("workspace cleanup failed")
	ErrArtifactBuild = errors.New("artifact build failed")
	ErrVariantBuild  = errors.New("variant image build failed")
)
