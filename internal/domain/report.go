package domain

import "time"

type Report struct {
	Total       int
	Checked     int
	Alive       []string
	Elapsed     time.Duration
	Interrupted bool
}
