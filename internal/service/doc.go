// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// TaskService is the task repository seen by the HTTP layer: it validates and
// defaults client input, delegates persistence to a store.TaskStore and
// translates store failures into the service error taxonomy:
//
//   - ErrInvalidInput: the request violates a task invariant (HTTP 400)
//   - ErrTaskNotFound: no task has the given id (HTTP 404)
//   - ErrStoreUnavailable: the backing store failed (HTTP 500)
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
