package generator

import "errors"

var (
	ErrNilInstance   = errors.New("instance is nil")
	ErrRenderContent = errors.New("render site content")
)
