package id

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *snowflake.Node
)

// New returns a time-ordered snowflake ID. The node number comes from
// TASKFLOW_NODE_ID (default 1) so multiple instances never collide.
func New() int64 {
	once.Do(func() {
		nodeID := int64(1)
		if v := os.Getenv("TASKFLOW_NODE_ID"); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				panic(fmt.Sprintf("invalid TASKFLOW_NODE_ID %q: %v", v, err))
			}
			nodeID = parsed
		}

		n, err := snowflake.NewNode(nodeID)
		if err != nil {
			panic(fmt.Sprintf("initializing snowflake node: %v", err))
		}
		node = n
	})

	return node.Generate().Int64()
}
