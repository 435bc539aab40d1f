package config

import "errors"

var (
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	ErrInvalidAppConfig    = errors.New("invalid app configuration")
	ErrInvalidLogConfig    = errors.New("invalid log configuration")
	ErrInvalidThemeConfig  = errors.New("invalid theme configuration")
)
