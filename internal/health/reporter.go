package health

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/phrazzld/kube-tasks-api/internal/config"
	"github.com/phrazzld/kube-tasks-api/internal/platform/logger"
	"github.com/phrazzld/kube-tasks-api/internal/store"
)

// Status values reported by the probes
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
)

// LivenessStatus is the body of the liveness probe.
type LivenessStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReadinessStatus is the body of the readiness probe.
type ReadinessStatus struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// Ready reports whether the process can serve task requests.
func (r ReadinessStatus) Ready() bool {
	return r.Status == StatusOK
}

// MemoryUsage describes the memory of this process. RSS and VMS come from
// the operating system, the rest from the Go runtime.
type MemoryUsage struct {
	RSS        uint64 `json:"rss"`
	VMS        uint64 `json:"vms"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	HeapSys    uint64 `json:"heapSys"`
	HeapInuse  uint64 `json:"heapInuse"`
	StackInuse uint64 `json:"stackInuse"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
}

// MemoryMetrics groups host and process memory figures in bytes.
type MemoryMetrics struct {
	Total uint64      `json:"total"`
	Free  uint64      `json:"free"`
	Usage MemoryUsage `json:"usage"`
}

// CPUMetrics holds the 1, 5 and 15 minute load averages and the logical core count.
type CPUMetrics struct {
	Load  [3]float64 `json:"load"`
	Cores int        `json:"cores"`
}

// Metrics is a point-in-time snapshot of runtime metrics.
type Metrics struct {
	Uptime     float64       `json:"uptime"`
	Timestamp  int64         `json:"timestamp"`
	Memory     MemoryMetrics `json:"memory"`
	CPU        CPUMetrics    `json:"cpu"`
	Goroutines int           `json:"goroutines"`
}

// InfoMemory is host memory rounded to whole megabytes, e.g. "2048 MB".
type InfoMemory struct {
	Total string `json:"total"`
	Free  string `json:"free"`
}

// ServerInfo describes the host serving the request.
type ServerInfo struct {
	Hostname       string             `json:"hostname"`
	Platform       string             `json:"platform"`
	Arch           string             `json:"arch"`
	CPUs           int                `json:"cpus"`
	Memory         InfoMemory         `json:"memory"`
	Network        []NetworkInterface `json:"network"`
	Uptime         float64            `json:"uptime"`
	RuntimeVersion string             `json:"runtimeVersion"`
	Env            string             `json:"env"`
	Timestamp      string             `json:"timestamp"`
}

// EnvInfo is the allow-listed deployment configuration echoed to clients.
type EnvInfo struct {
	NodeEnv      string `json:"NODE_ENV"`
	K8sCluster   string `json:"K8S_CLUSTER"`
	AppVersion   string `json:"APP_VERSION"`
	DeploymentID string `json:"DEPLOYMENT_ID"`
}

// Reporter derives health, metrics and host information. It is safe for
// concurrent use; every call recomputes its result.
type Reporter struct {
	state      store.ConnectionStateReader
	probe      HostProbe
	deployment config.DeploymentConfig
	startedAt  time.Time
	now        func() time.Time
	logger     *slog.Logger
}

// NewReporter creates a Reporter. Process uptime is measured from this call.
// A nil probe uses gopsutil; a nil state reports the database disconnected.
func NewReporter(
	state store.ConnectionStateReader,
	probe HostProbe,
	deployment config.DeploymentConfig,
	logger *slog.Logger,
) *Reporter {
	if state == nil {
		state = store.StaticConnectionState(store.StateDisconnected)
	}
	if probe == nil {
		probe = NewGopsutilProbe()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Reporter{
		state:      state,
		probe:      probe,
		deployment: deployment,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger.With(slog.String("component", "health_reporter")),
	}
}

// Liveness reports that the process is running. It never consults the store.
func (r *Reporter) Liveness() LivenessStatus {
	return LivenessStatus{Status: StatusOK, Message: "Server is running"}
}

// Readiness reports the database connection state. Only "connected" is
// reported as ready.
func (r *Reporter) Readiness() ReadinessStatus {
	state := r.state.ConnectionState()

	if state == store.StateConnected {
		return ReadinessStatus{
			Status:   StatusOK,
			Message:  "Server is ready to accept requests",
			Database: state.String(),
		}
	}

	return ReadinessStatus{
		Status:   StatusWarning,
		Message:  "Server is running but database connection is not optimal",
		Database: state.String(),
	}
}

// Metrics returns a runtime metrics snapshot. Probe failures leave the
// affected fields zero.
func (r *Reporter) Metrics(ctx context.Context) Metrics {
	log := logger.FromContextOrDefault(ctx, r.logger)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	now := r.now()
	m := Metrics{
		Uptime:    r.uptime(now),
		Timestamp: now.UnixMilli(),
		Memory: MemoryMetrics{
			Usage: MemoryUsage{
				HeapAlloc:  ms.HeapAlloc,
				HeapSys:    ms.HeapSys,
				HeapInuse:  ms.HeapInuse,
				StackInuse: ms.StackInuse,
				Sys:        ms.Sys,
				NumGC:      ms.NumGC,
			},
		},
		Goroutines: runtime.NumGoroutine(),
	}

	if hostMem, err := r.probe.Memory(ctx); err != nil {
		log.Debug("host memory probe failed", slog.String("error", err.Error()))
	} else {
		m.Memory.Total = hostMem.Total
		m.Memory.Free = hostMem.Free
	}

	if procMem, err := r.probe.ProcessMemory(ctx); err != nil {
		log.Debug("process memory probe failed", slog.String("error", err.Error()))
	} else {
		m.Memory.Usage.RSS = procMem.RSS
		m.Memory.Usage.VMS = procMem.VMS
	}

	if avg, err := r.probe.LoadAverage(ctx); err != nil {
		log.Debug("load average probe failed", slog.String("error", err.Error()))
	} else {
		m.CPU.Load = avg
	}

	m.CPU.Cores = r.cpuCount(ctx, log)

	return m
}

// ServerInfo returns a descriptor of the host. Probe failures leave the
// affected fields empty.
func (r *Reporter) ServerInfo(ctx context.Context) ServerInfo {
	log := logger.FromContextOrDefault(ctx, r.logger)

	now := r.now()
	info := ServerInfo{
		Platform:       runtime.GOOS,
		Arch:           runtime.GOARCH,
		CPUs:           r.cpuCount(ctx, log),
		Memory:         InfoMemory{Total: formatMB(0), Free: formatMB(0)},
		Network:        []NetworkInterface{},
		Uptime:         r.uptime(now),
		RuntimeVersion: runtime.Version(),
		Env:            r.deployment.Environment,
		Timestamp:      now.UTC().Format(time.RFC3339),
	}

	if hostname, err := r.probe.Hostname(ctx); err != nil {
		log.Debug("hostname probe failed", slog.String("error", err.Error()))
	} else {
		info.Hostname = hostname
	}

	if hostMem, err := r.probe.Memory(ctx); err != nil {
		log.Debug("host memory probe failed", slog.String("error", err.Error()))
	} else {
		info.Memory = InfoMemory{Total: formatMB(hostMem.Total), Free: formatMB(hostMem.Free)}
	}

	if ifaces, err := r.probe.NetworkInterfaces(ctx); err != nil {
		log.Debug("network probe failed", slog.String("error", err.Error()))
	} else if ifaces != nil {
		info.Network = ifaces
	}

	return info
}

// Env returns the deployment settings that are safe to expose.
func (r *Reporter) Env() EnvInfo {
	return EnvInfo{
		NodeEnv:      r.deployment.Environment,
		K8sCluster:   r.deployment.Cluster,
		AppVersion:   r.deployment.Version,
		DeploymentID: r.deployment.ID,
	}
}

func (r *Reporter) uptime(now time.Time) float64 {
	return now.Sub(r.startedAt).Seconds()
}

func (r *Reporter) cpuCount(ctx context.Context, log *slog.Logger) int {
	n, err := r.probe.CPUCount(ctx)
	if err != nil || n <= 0 {
		if err != nil {
			log.Debug("cpu count probe failed", slog.String("error", err.Error()))
		}
		return runtime.NumCPU()
	}
	return n
}

// formatMB renders bytes as whole megabytes, rounded to nearest.
func formatMB(bytes uint64) string {
	const mb = 1024 * 1024
	return fmt.Sprintf("%d MB", (bytes+mb/2)/mb)
}
