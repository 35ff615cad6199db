//go:build linux

// Package rlimit wraps the getrlimit and setrlimit system calls. A sequencer
// process typically raises its file-descriptor ceiling before opening its
// cluster connections; these helpers keep that adjustment explicit.
package rlimit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Resource selects which process resource limit to read or adjust.
type Resource int

const (
	// NoFile limits the number of open file descriptors.
	NoFile Resource = iota
	// NProc limits the number of processes of the real user ID.
	NProc
	// AddressSpace limits the process's virtual memory, in bytes.
	AddressSpace
	// Core limits the size of core dumps, in bytes.
	Core
	// CPU limits consumed CPU time, in seconds.
	CPU
	// Data limits the data segment, in bytes.
	Data
	// FileSize limits the size of created files, in bytes.
	FileSize
	// MemLock limits memory locked into RAM, in bytes.
	MemLock
	// RSS limits the resident set, in bytes.
	RSS
)

func (r Resource) String() string {
	switch r {
	case NoFile:
		return "RLIMIT_NOFILE"
	case NProc:
		return "RLIMIT_NPROC"
	case AddressSpace:
		return "RLIMIT_AS"
	case Core:
		return "RLIMIT_CORE"
	case CPU:
		return "RLIMIT_CPU"
	case Data:
		return "RLIMIT_DATA"
	case FileSize:
		return "RLIMIT_FSIZE"
	case MemLock:
		return "RLIMIT_MEMLOCK"
	case RSS:
		return "RLIMIT_RSS"
	default:
		return fmt.Sprintf("Resource(%d)", int(r))
	}
}

func (r Resource) unixResource() (int, error) {
	switch r {
	case NoFile:
		return unix.RLIMIT_NOFILE, nil
	case NProc:
		return unix.RLIMIT_NPROC, nil
	case AddressSpace:
		return unix.RLIMIT_AS, nil
	case Core:
		return unix.RLIMIT_CORE, nil
	case CPU:
		return unix.RLIMIT_CPU, nil
	case Data:
		return unix.RLIMIT_DATA, nil
	case FileSize:
		return unix.RLIMIT_FSIZE, nil
	case MemLock:
		return unix.RLIMIT_MEMLOCK, nil
	case RSS:
		return unix.RLIMIT_RSS, nil
	default:
		return 0, fmt.Errorf("unknown resource %d", int(r))
	}
}

// Limit holds the soft and hard limit of one resource. The soft limit is
// enforced by the kernel; the hard limit is the ceiling an unprivileged
// process may raise its soft limit to.
type Limit struct {
	Soft uint64
	Hard uint64
}

// Get reads the current limits for a resource.
func Get(resource Resource) (Limit, error) {
	res, err := resource.unixResource()
	if err != nil {
		return Limit{}, err
	}

	var rlim unix.Rlimit
	if err := unix.Getrlimit(res, &rlim); err != nil {
		return Limit{}, fmt.Errorf("getrlimit %s: %w", resource, err)
	}
	return Limit{Soft: rlim.Cur, Hard: rlim.Max}, nil
}

// Set raises or lowers the soft limit of a resource, leaving the hard limit
// untouched. Raising beyond the hard limit fails unless the process is
// privileged.
func Set(resource Resource, soft uint64) error {
	res, err := resource.unixResource()
	if err != nil {
		return err
	}

	var rlim unix.Rlimit
	if err := unix.Getrlimit(res, &rlim); err != nil {
		return fmt.Errorf("getrlimit %s: %w", resource, err)
	}

	rlim.Cur = soft
	if err := unix.Setrlimit(res, &rlim); err != nil {
		return fmt.Errorf("setrlimit %s: %w", resource, err)
	}
	return nil
}
