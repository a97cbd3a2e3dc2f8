package io

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_file_io.go github.com/kasuboski/mediaguess/pkg/io FileIO
