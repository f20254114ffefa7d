// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// NewLogger returns a logrus.Logger configured the way a terminal-aware
// CLI built on this package would configure its default logger: plain
// text, and timestamps suppressed when stderr is not a TTY (so output
// piped to a file or log collector doesn't carry a redundant clock).
func NewLogger() *log.Logger {
	l := log.New()
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		l.Formatter = &log.TextFormatter{DisableTimestamp: true}
	}
	return l
}
