// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The only persisted entity is Task. Input types (CreateTaskInput, TaskPatch)
// own trimming, defaulting and field validation so that nothing invalid ever
// reaches the persistence layer.
package domain
