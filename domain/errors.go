// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/cpmech/gosl/io"
)

// Kind classifies a Domain error.
type Kind int

// Error kinds.
const (
	Configuration Kind = iota
	Contract
	NumericalStability
)

// Error is the Domain error type; Kind lets callers branch on the
// category without string-matching messages, while Error() keeps the
// human-readable text chk.Err-style errors already provide.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func configErr(format string, args ...interface{}) error {
	return &Error{Kind: Configuration, Message: io.Sf(format, args...)}
}

func contractErr(format string, args ...interface{}) error {
	return &Error{Kind: Contract, Message: io.Sf(format, args...)}
}

func stabilityErr(format string, args ...interface{}) error {
	return &Error{Kind: NumericalStability, Message: io.Sf(format, args...)}
}

// warn logs a recoverable issue: critical-level, non-aborting.
func warn(cfg Config, format string, args ...interface{}) {
	if cfg.ShowMsg {
		io.PfYel(format+"\n", args...)
	}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
