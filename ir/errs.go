package ir

import "errors"

var (
	ErrUnimplemented = errors.New("unimplemented")
	ErrPath          = errors.New("path error")
	ErrNotFound      = errors.New("not found")
	ErrJSON          = errors.New("bad json tree")
)
