// Package health reports the operational state of the process: liveness,
// readiness derived from the database connection state, runtime and host
// metrics, a host descriptor and the safe deployment environment echo.
//
// Host facts come from a HostProbe. GopsutilProbe is the production
// implementation; tests supply their own.
package health
