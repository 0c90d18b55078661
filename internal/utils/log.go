/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
    `fmt`
    `log`
    `os`
)

// Logger receives leveled diagnostics. Higher levels are more verbose.
type Logger interface {
    Enabled(level int) bool
    Debugf(level int, format string, args ...interface{})
}

type stdLogger struct {
    lv int
    lg *log.Logger
}

// NewLogger returns a Logger writing messages up to level to stderr.
func NewLogger(level int) Logger {
    return &stdLogger {
        lv: level,
        lg: log.New(os.Stderr, "assoc: ", log.LstdFlags),
    }
}

func (self *stdLogger) Enabled(level int) bool {
    return level <= self.lv
}

func (self *stdLogger) Debugf(level int, format string, args ...interface{}) {
    if level <= self.lv {
        _ = self.lg.Output(2, fmt.Sprintf("[%d] ", level) + fmt.Sprintf(format, args...))
    }
}

type nopLogger struct{}

func (nopLogger) Enabled(int) bool                     { return false }
func (nopLogger) Debugf(int, string, ...interface{})   {}

// Nop discards everything.
var Nop Logger = nopLogger{}
