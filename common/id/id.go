// Package id generates snowflake identifiers for all persisted records.
package id

import (
	"hash/fnv"
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *snowflake.Node
)

// New returns a new time-ordered unique identifier.
func New() int64 {
	once.Do(initNode)
	return node.Generate().Int64()
}

func initNode() {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "workflow"
	}

	h := fnv.New32a()
	h.Write([]byte(hostname))

	n, err := snowflake.NewNode(int64(h.Sum32() % 1024))
	if err != nil {
		panic(err)
	}
	node = n
}
