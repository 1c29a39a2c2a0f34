// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

import (
	"fmt"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// logger is the diagnostic tracing facade used throughout this package, in
// the same role dag.go's vlog.VI(1).Infof calls play: purely diagnostic,
// never load-bearing for correctness (spec.md §9).
type logger struct {
	name string
}

func newLogger(name string) logger {
	return logger{name: name}
}

func (l logger) Infof(format string, args ...interface{}) {
	gethlog.Debug("chronotree", "tree", l.name, "msg", fmt.Sprintf(format, args...))
}

func (l logger) Errorf(format string, args ...interface{}) {
	gethlog.Error("chronotree", "tree", l.name, "msg", fmt.Sprintf(format, args...))
}
