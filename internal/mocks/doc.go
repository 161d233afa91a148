// Package mocks provides test doubles for the service and store interfaces.
//
// MockTaskService follows the function-field pattern: set the Fn field for
// the behavior a test needs, otherwise the default fields are returned.
// MemoryTaskStore is a working in-memory store.TaskStore for tests that
// exercise the real service.
package mocks
