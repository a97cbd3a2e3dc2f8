package library

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_finder.go github.com/kasuboski/mediaguess/pkg/library Finder
