// Package par identifies the master process of a cooperating
// multi-process run, so shared diagnostic output is emitted exactly
// once. This is a selection policy, not a lock: the rank assignment
// comes from the launcher and nothing here coordinates across
// processes.
package par

import (
	"os"
	"strconv"
)

const (
	rankEnv = "EDDY_COMM_RANK"
	sizeEnv = "EDDY_COMM_SIZE"
)

// Comm identifies a group of cooperating processes and the rank of the
// current process within it. Rank 0 is the master by convention.
type Comm struct {
	id   int
	rank int
	size int
}

// World returns the communicator spanning the whole run, with rank and
// size resolved from the launcher environment. A process started
// outside a multi-process launcher is a single-rank world and therefore
// its own master.
func World() Comm {
	return Comm{
		rank: envInt(rankEnv, 0),
		size: envInt(sizeEnv, 1),
	}
}

// New builds a communicator with an explicit id, rank and size, for
// tests and embedded launchers.
func New(id, rank, size int) Comm {
	return Comm{id: id, rank: rank, size: size}
}

// ID returns the communicator identifier.
func (c Comm) ID() int { return c.id }

// Rank returns this process's rank within the communicator.
func (c Comm) Rank() int { return c.rank }

// Size returns the number of processes in the communicator.
func (c Comm) Size() int { return c.size }

// IsMaster reports whether this process produces shared output on
// behalf of the communicator.
func (c Comm) IsMaster() bool { return c.rank == 0 }

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
