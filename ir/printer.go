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

package ir

import (
    `fmt`
    `strconv`
    `strings`
)

func (self *IntImm) String() string {
    if self.T == Int32 {
        return strconv.FormatInt(self.V, 10)
    } else {
        return fmt.Sprintf("(%s)%d", self.T, self.V)
    }
}

func (self *UIntImm) String() string {
    if self.T == Bool {
        return strconv.FormatBool(self.V != 0)
    } else {
        return fmt.Sprintf("(%s)%d", self.T, self.V)
    }
}

func (self *FloatImm) String() string {
    if self.T == Float32 {
        return strconv.FormatFloat(self.V, 'g', -1, 32) + "f"
    } else {
        return strconv.FormatFloat(self.V, 'g', -1, 64)
    }
}

func (self *Variable) String() string {
    return self.Name
}

func (self *Cast) String() string {
    return fmt.Sprintf("%s(%s)", self.T, self.V)
}

func (self *Binary) String() string {
    if self.Op.isFunc() {
        return fmt.Sprintf("%s(%s, %s)", self.Op, self.A, self.B)
    } else {
        return fmt.Sprintf("(%s %s %s)", self.A, self.Op, self.B)
    }
}

func (self *Not) String() string {
    return fmt.Sprintf("!%s", self.V)
}

func (self *Select) String() string {
    return fmt.Sprintf("select(%s, %s, %s)", self.Cond, self.True, self.False)
}

func (self *Call) String() string {
    args := make([]string, len(self.Args))
    for i, v := range self.Args {
        args[i] = v.String()
    }
    if self.Index == 0 {
        return fmt.Sprintf("%s(%s)", self.Name, strings.Join(args, ", "))
    } else {
        return fmt.Sprintf("%s(%s)[%d]", self.Name, strings.Join(args, ", "), self.Index)
    }
}

func (self *Let) String() string {
    return fmt.Sprintf("(let %s = %s in %s)", self.Name, self.Value, self.Body)
}
