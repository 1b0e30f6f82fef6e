// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/brot/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow bound to the test's lifecycle.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mw := &MockWorkflow{}
	mw.Mock.Test(t)

	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

// Render mocks domain.Workflow.Render.
func (mw *MockWorkflow) Render(args domain.RenderArgs) error {
	ret := mw.Called(args)

	return ret.Error(0)
}

// Probe mocks domain.Workflow.Probe.
func (mw *MockWorkflow) Probe(args domain.ProbeArgs) error {
	ret := mw.Called(args)

	return ret.Error(0)
}
