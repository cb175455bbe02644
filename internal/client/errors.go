package client

import "errors"

var errIncompleteWiring = errors.New("client services and ui are required")
