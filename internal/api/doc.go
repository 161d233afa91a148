// Package api handles incoming HTTP requests, request validation and response
// formatting. It acts as an adapter between external clients and the task
// service and health reporter, translating HTTP concerns to business
// operations and errors to status codes.
package api
