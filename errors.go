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

package assoc

import (
    `github.com/cloudwego/assoc/internal/utils`
)

// InternalError reports a bug in the prover itself. It is never returned
// for a definition that merely is not associative.
type InternalError = utils.InternalError

// IsInternal reports whether err is, or wraps, an InternalError.
func IsInternal(err error) bool {
    _, ok := utils.AsInternal(err)
    return ok
}
