package server

import "errors"

var (
	errNoListenAddress = errors.New("no http listen address configured")
)
