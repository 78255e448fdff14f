// Package idgen issues registry identifiers.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Prefixes used by the registries.
const (
	PrefixProduct        = "p"
	PrefixServiceRequest = "sr"
	PrefixTestimonial    = "t"
)

// Generator issues ids unique within the running process.
type Generator interface {
	Next(prefix string) string
}

// Snowflake generates time-ordered ids from a snowflake node.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator for the given node number (0-1023).
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// Next returns prefix followed by a fresh snowflake id.
func (s *Snowflake) Next(prefix string) string {
	return prefix + s.node.Generate().String()
}
