// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus indicates how a conversion run ended.
type RunStatus string

const (
	RunDone    RunStatus = "done"
	RunSkipped RunStatus = "skipped"
	RunFailed  RunStatus = "failed"
)

// RunKind identifies which converter produced a run record.
type RunKind string

const (
	RunSlides RunKind = "slides"
	RunText   RunKind = "text"
)

// Run is one entry in the conversion run log.
type Run struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id" yaml:"id"`

	// Kind is the converter that ran.
	Kind RunKind `json:"kind" yaml:"kind"`

	// Input is the source document path.
	Input string `json:"input" yaml:"input"`

	// Output is the produced artifact path, empty for failed runs.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Detail is a short human summary (e.g. "12 slides, 40 blocks").
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Status records the outcome.
	Status RunStatus `json:"status" yaml:"status"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
