package health

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

// HostMemory is the system-wide memory in bytes.
type HostMemory struct {
	Total uint64
	Free  uint64
}

// ProcessMemory is the resident and virtual size of this process in bytes.
type ProcessMemory struct {
	RSS uint64
	VMS uint64
}

// NetworkInterface is a named interface and its IPv4 addresses.
type NetworkInterface struct {
	Name      string   `json:"name"`
	Addresses []string `json:"addresses"`
}

// HostProbe reads facts about the host and the current process.
type HostProbe interface {
	Hostname(ctx context.Context) (string, error)
	Memory(ctx context.Context) (HostMemory, error)
	LoadAverage(ctx context.Context) ([3]float64, error)
	CPUCount(ctx context.Context) (int, error)
	ProcessMemory(ctx context.Context) (ProcessMemory, error)
	NetworkInterfaces(ctx context.Context) ([]NetworkInterface, error)
}

// GopsutilProbe implements HostProbe with gopsutil.
type GopsutilProbe struct {
	pid int32
}

// Ensure GopsutilProbe implements HostProbe
var _ HostProbe = (*GopsutilProbe)(nil)

// NewGopsutilProbe returns a probe for the current process.
func NewGopsutilProbe() *GopsutilProbe {
	return &GopsutilProbe{pid: int32(os.Getpid())}
}

// Hostname implements HostProbe.
func (p *GopsutilProbe) Hostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info.Hostname == "" {
		// Fall back to the kernel hostname
		return os.Hostname()
	}
	return info.Hostname, nil
}

// Memory implements HostProbe. Free is the memory available to new
// processes without swapping.
func (p *GopsutilProbe) Memory(ctx context.Context) (HostMemory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return HostMemory{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	return HostMemory{Total: vm.Total, Free: vm.Available}, nil
}

// LoadAverage implements HostProbe.
func (p *GopsutilProbe) LoadAverage(ctx context.Context) ([3]float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return [3]float64{}, fmt.Errorf("failed to read load average: %w", err)
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

// CPUCount implements HostProbe. It counts logical CPUs.
func (p *GopsutilProbe) CPUCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to count CPUs: %w", err)
	}
	return n, nil
}

// ProcessMemory implements HostProbe.
func (p *GopsutilProbe) ProcessMemory(ctx context.Context) (ProcessMemory, error) {
	proc, err := process.NewProcessWithContext(ctx, p.pid)
	if err != nil {
		return ProcessMemory{}, fmt.Errorf("failed to open process %d: %w", p.pid, err)
	}

	info, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return ProcessMemory{}, fmt.Errorf("failed to read process memory: %w", err)
	}
	return ProcessMemory{RSS: info.RSS, VMS: info.VMS}, nil
}

// NetworkInterfaces implements HostProbe. Only IPv4 addresses are kept;
// interfaces without one are still listed.
func (p *GopsutilProbe) NetworkInterfaces(ctx context.Context) ([]NetworkInterface, error) {
	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	result := make([]NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			if ip := ipv4(a.Addr); ip != "" {
				addrs = append(addrs, ip)
			}
		}
		result = append(result, NetworkInterface{Name: iface.Name, Addresses: addrs})
	}
	return result, nil
}

// ipv4 returns the IPv4 address in addr (CIDR or bare), or "".
func ipv4(addr string) string {
	ip, _, err := net.ParseCIDR(addr)
	if err != nil {
		ip = net.ParseIP(addr)
	}
	if ip == nil {
		return ""
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	return ""
}
