package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuild(t *testing.T) {
	b := newBuild()
	_, ok := b.StepOk("tidy")
	assert.True(t, ok)

	var appSteps int
	for _, name := range b.Steps() {
		if strings.Contains(name, "tablecrypt") {
			appSteps++
		}
	}
	assert.Greater(t, appSteps, 0, "The tablecrypt app should be imported into the build")
}
