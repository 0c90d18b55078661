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

    `github.com/pkg/errors`
)

// InternalError reports a violated invariant inside the prover itself, as
// opposed to a recurrence that simply is not associative.
type InternalError struct {
    Pass  string
    Msg   string
    cause error
}

func (self *InternalError) Error() string {
    return fmt.Sprintf("assoc: internal error in %s: %s", self.Pass, self.Msg)
}

func (self *InternalError) Cause() error {
    return self.cause
}

func (self *InternalError) Unwrap() error {
    return self.cause
}

// Format prints the captured stack with %+v.
func (self *InternalError) Format(s fmt.State, verb rune) {
    if verb == 'v' && s.Flag('+') {
        _, _ = fmt.Fprintf(s, "%s\n%+v", self.Error(), self.cause)
    } else {
        _, _ = fmt.Fprint(s, self.Error())
    }
}

func EInternal(pass string, format string, args ...interface{}) *InternalError {
    msg := fmt.Sprintf(format, args...)
    return &InternalError {
        Pass  : pass,
        Msg   : msg,
        cause : errors.New(msg),
    }
}

// Throw panics with an InternalError, to be recovered by the entry point.
func Throw(pass string, format string, args ...interface{}) {
    panic(EInternal(pass, format, args...))
}

// AsInternal extracts an InternalError from a recovered panic value.
func AsInternal(v interface{}) (*InternalError, bool) {
    if err, ok := v.(error); !ok {
        return nil, false
    } else {
        var ie *InternalError
        ok = errors.As(err, &ie)
        return ie, ok
    }
}
