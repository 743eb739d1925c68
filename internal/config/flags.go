package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// Usage is printed for -h and for argument errors.
const Usage = `usage: memfill [flags] <size> <mode> <duration>

  size      amount of memory, "<n>%" of total or a byte size like 512M, 2GiB
  mode      absolute: hold size bytes
            usage:    allocate until memory usage reaches size
  duration  how long to run, e.g. 30s, 5m, 1h30m, 2d

flags:
`

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments (without the program name).
// Flags and the three positional arguments may be interleaved.
//
// Flags:
//
//	-ignore-cgroup compute total and available memory from system information
//	-c/-config json or yaml file path with configs
//	-log-level zerolog level name
//	-log-format json or console
//	-status-address status endpoint address in format [host]:[port]
//	-update-interval allocator update period (e.g. "50ms")
//	-report-interval memory report period (e.g. "5s")
//	-chunk-ready-timeout how long a chunk may take to fill its memory
//	-chunk-free-timeout how long a released chunk may take to exit
//	-cgroup-root cgroup filesystem mount point
//	-proc-root proc filesystem mount point
func parseFlags(args []string) (*StructuredConfig, error) {
	fs, cfg := newFlagSet(io.Discard)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("error parsing flags: %w", err)
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) > 3 {
		return nil, fmt.Errorf("%w: %s", ErrTooManyArguments, strings.Join(positional[3:], " "))
	}

	fields := []*string{&cfg.Fill.Size, &cfg.Fill.Mode, &cfg.Fill.Duration}
	for i, arg := range positional {
		*fields[i] = arg
	}

	return cfg, nil
}

// PrintUsage writes the usage text and flag defaults to w.
func PrintUsage(w io.Writer) {
	fs, _ := newFlagSet(w)
	fmt.Fprint(w, Usage)
	fs.PrintDefaults()
}

func newFlagSet(output io.Writer) (*flag.FlagSet, *StructuredConfig) {
	var statusAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("memfill", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {}

	fs.BoolVar(&cfg.Memory.IgnoreCgroup, "ignore-cgroup", false, "Compute total and available memory from system information")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", "", "Log format (json, console)")
	fs.Func("status-address", "Status endpoint address host:port", func(s string) error {
		if err := statusAddress.Set(s); err != nil {
			return err
		}
		cfg.Server.StatusAddress = statusAddress.String()
		return nil
	})
	fs.DurationVar(&cfg.Workers.UpdateInterval, "update-interval", 0, "Allocator update period (e.g., 50ms)")
	fs.DurationVar(&cfg.Workers.ReportInterval, "report-interval", 0, "Memory report period (e.g., 5s)")
	fs.DurationVar(&cfg.Chunks.ReadyTimeout, "chunk-ready-timeout", 0, "Time a chunk may take to fill its memory")
	fs.DurationVar(&cfg.Chunks.FreeTimeout, "chunk-free-timeout", 0, "Time a released chunk may take to exit")
	fs.StringVar(&cfg.Memory.CgroupRoot, "cgroup-root", "", "Cgroup filesystem mount point")
	fs.StringVar(&cfg.Memory.ProcRoot, "proc-root", "", "Proc filesystem mount point")

	return fs, cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. It validates the port range,
// checks IP correctness unless host is "localhost" or empty, and returns an
// error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
