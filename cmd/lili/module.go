package main

import (
	"github.com/dzshn/lili-v0/editors"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Editors editors.Module
}
