package tui

import "errors"

var errNoServices = errors.New("no client services provided")
