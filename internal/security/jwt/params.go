package jwtutil

import "time"

// Params holds the signing material for session tokens. Built once
// from config in main and passed down; no env reads here.
type Params struct {
	Secret    []byte
	TTL       time.Duration
	ClockSkew time.Duration
}
