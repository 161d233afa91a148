// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the TASKS_ prefix with nested keys joined by an
// underscore (TASKS_SERVER_PORT, TASKS_DATABASE_URL). The unprefixed names used
// by the container manifests (PORT, DATABASE_URL, NODE_ENV, K8S_CLUSTER,
// APP_VERSION, DEPLOYMENT_ID, LOG_LEVEL) are honored as fallbacks.
package config
