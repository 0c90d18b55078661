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

package debug

import (
	"github.com/cloudwego/assoc/internal/table"
)

// A Stats records statistics about the prover.
type Stats struct {
	Table CacheStats
}

// A CacheStats records statistics about the pattern table cache.
type CacheStats struct {
	Hit  int
	Miss int
	Size int
	Rows int
}

// GetStats returns statistics of the process-wide pattern tables.
func GetStats() Stats {
	st := table.Default.Stats()
	return Stats{
		Table: CacheStats{
			Hit:  int(st.Hit),
			Miss: int(st.Miss),
			Size: int(st.Size),
			Rows: int(st.Rows),
		},
	}
}
