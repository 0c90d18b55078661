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

package opts

import (
	"github.com/cloudwego/assoc/internal/utils"
	"github.com/cloudwego/assoc/ir"
)

type Options struct {
	DebugLevel       int
	EagerTable       bool
	CommutativeMatch bool
	Logger           utils.Logger
	Namer            ir.Namer
}

// Log returns the configured logger, or one honoring DebugLevel.
func (self *Options) Log() utils.Logger {
	if self.Logger != nil {
		return self.Logger
	} else if self.DebugLevel > 0 {
		return utils.NewLogger(self.DebugLevel)
	} else {
		return utils.Nop
	}
}

// Names returns the configured name generator, or the process-wide one.
func (self *Options) Names() ir.Namer {
	if self.Namer != nil {
		return self.Namer
	} else {
		return ir.DefaultNamer
	}
}

func GetDefaultOptions() Options {
	return Options{
		DebugLevel:       DebugLevel,
		EagerTable:       EagerTable,
		CommutativeMatch: CommutativeMatch,
	}
}
