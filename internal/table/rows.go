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

package table

// Row is an uninstantiated entry of the table: one template and one
// identity per tuple component.
type Row struct {
    Ops         []Node
    Identities  []Identity
    Commutative bool
}

func row(op Node, id Identity) Row {
    return Row {
        Ops         : []Node { op },
        Identities  : []Identity { id },
        Commutative : true,
    }
}

func row2(op0 Node, op1 Node, id0 Identity, id1 Identity) Row {
    return Row {
        Ops         : []Node { op0, op1 },
        Identities  : []Identity { id0, id1 },
        Commutative : true,
    }
}

type _GenKey struct {
    root  Root
    arity int
}

// _GenRows are disguised forms of the primitive operators and coupled
// pairs, valid for 32-bit signed integers.
var _GenRows = map[_GenKey][]Row {
    { RootAdd, 1 }: {
        row(add(X0, Y0), Zero),
        row(add(maxOf(minOf(Y0, K0), Y0), X0), Zero),
        row(add(maxOf(sub(K0, Y0), Y0), X0), Zero),
        row(add(minOf(maxOf(Y0, K0), Y0), X0), Zero),
        row(add(minOf(sub(K0, Y0), Y0), X0), Zero),
        row(add(maxOf(minOf(minOf(Y0, K0), Y0), Y0), X0), Zero),
        row(add(maxOf(minOf(mul(X0, Y0), Y0), Y0), X0), Zero),
        row(add(maxOf(minOf(sub(X0, Y0), Y0), Y0), X0), Zero),
        row(add(maxOf(minOf(sub(Y0, X0), Y0), Y0), X0), Zero),
        row(add(minOf(maxOf(maxOf(Y0, K0), Y0), Y0), X0), Zero),
        row(add(minOf(maxOf(mul(X0, Y0), Y0), Y0), X0), Zero),
        row(add(minOf(maxOf(sub(X0, Y0), Y0), Y0), X0), Zero),
        row(add(minOf(maxOf(sub(Y0, X0), Y0), Y0), X0), Zero),
        row(add(minOf(sub(Y0, X0), K0), maxOf(Y0, X0)), NegOne),
        row(add(minOf(Y0, X0), maxOf(sub(Y0, X0), K0)), Zero),
    },
    { RootMul, 1 }: {
        row(mul(X0, Y0), One),
        row(mul(maxOf(minOf(mul(X0, Y0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(sub(X0, Y0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(sub(Y0, X0), Y0), Y0), X0), One),
        row(mul(minOf(maxOf(mul(X0, Y0), Y0), Y0), X0), One),
        row(mul(minOf(maxOf(sub(X0, Y0), Y0), Y0), X0), One),
        row(mul(minOf(maxOf(sub(Y0, X0), Y0), Y0), X0), One),
        row(mul(sub(maxOf(minOf(X0, K0), Y0), Y0), X0), NegOne),
        row(mul(sub(minOf(maxOf(X0, K0), Y0), Y0), X0), NegOne),
        row(mul(maxOf(minOf(add(maxOf(X0, K0), Y0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(add(minOf(X0, K0), Y0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(add(minOf(Y0, X0), K0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(add(mul(X0, K0), Y0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(add(mul(X0, Y0), Y0), Y0), Y0), X0), One),
        row(mul(maxOf(minOf(add(Y0, mul(X0, K0)), Y0), Y0), X0), One),
    },
    { RootMax, 1 }: {
        row(maxOf(X0, Y0), ValMin),
        row(maxOf(Y0, X0), ValMin),
        row(maxOf(minOf(X0, K0), Y0), ValMin),
        row(maxOf(minOf(Y0, X0), Y0), ValMin),
        row(maxOf(add(minOf(Y0, X0), Y0), Y0), Zero),
        row(maxOf(minOf(add(Y0, X0), Y0), Y0), Zero),
        row(maxOf(minOf(maxOf(Y0, K0), X0), Y0), ValMin),
        row(maxOf(minOf(maxOf(Y0, K0), Y0), X0), ValMin),
        row(maxOf(minOf(maxOf(Y0, X0), K0), Y0), ValMin),
        row(maxOf(minOf(maxOf(Y0, X0), Y0), Y0), ValMin),
        row(maxOf(minOf(minOf(Y0, K0), X0), Y0), Zero),
        row(maxOf(minOf(mul(X0, Y0), Y0), Y0), Zero),
        row(maxOf(minOf(mul(Y0, X0), Y0), Y0), Zero),
    },
    { RootMin, 1 }: {
        row(minOf(X0, Y0), ValMax),
        row(minOf(maxOf(X0, K0), Y0), ValMax),
        row(minOf(maxOf(Y0, X0), Y0), Zero),
        row(minOf(add(maxOf(Y0, X0), Y0), Y0), Zero),
        row(minOf(maxOf(add(Y0, X0), Y0), Y0), Zero),
        row(minOf(maxOf(maxOf(Y0, K0), X0), Y0), Zero),
        row(minOf(maxOf(minOf(Y0, K0), X0), Y0), ValMax),
        row(minOf(maxOf(minOf(Y0, K0), Y0), X0), ValMax),
        row(minOf(maxOf(minOf(Y0, X0), K0), Y0), ValMax),
        row(minOf(maxOf(minOf(Y0, X0), Y0), Y0), Zero),
        row(minOf(maxOf(mul(X0, Y0), Y0), Y0), Zero),
        row(minOf(maxOf(mul(Y0, X0), Y0), Y0), Zero),
        row(minOf(maxOf(sub(K0, Y0), X0), Y0), Zero),
    },
    { RootSub, 1 }: {
        row(sub(add(maxOf(Y0, X0), Y0), maxOf(X0, K0)), ValMin),
        row(sub(add(minOf(Y0, X0), Y0), minOf(X0, K0)), ValMax),
        row(sub(maxOf(add(Y0, X0), K0), maxOf(Y0, X0)), NegOne),
        row(sub(maxOf(Y0, X0), maxOf(sub(X0, Y0), K0)), Zero),
        row(sub(minOf(add(Y0, X0), K0), minOf(Y0, X0)), One),
        row(sub(minOf(Y0, X0), minOf(sub(X0, Y0), K0)), Zero),
        row(sub(add(maxOf(minOf(minOf(sub(Y0, X0), X0), K0), X0), Y0), X0), Zero),
        row(sub(add(maxOf(minOf(X0, Y0), K0), maxOf(X0, Y0)), maxOf(X0, K0)), ValMin),
        row(sub(add(minOf(maxOf(maxOf(sub(Y0, X0), X0), K0), X0), Y0), X0), Zero),
        row(sub(add(minOf(maxOf(X0, Y0), K0), minOf(X0, Y0)), minOf(X0, K0)), ValMax),
    },
    { RootAdd, 2 }: {
        row2(add(X0, Y0), add(X0, Y1), Zero, Zero),
        row2(add(X0, Y0), add(X1, Y0), Zero, Zero),
        row2(add(X0, Y1), add(X1, Y1), Zero, Zero),
        row2(add(X1, Y0), add(X1, Y1), Zero, Zero),
        row2(add(X0, Y0), add(mul(X0, K0), Y1), Zero, Zero),
        row2(add(X0, Y0), add(mul(X0, Y0), add(Y1, X1)), Zero, Zero),
        row2(add(X0, Y0), maxOf(minOf(X0, X1), maxOf(X1, Y1)), Zero, ValMin),
        row2(add(X0, Y0), maxOf(minOf(X0, Y1), maxOf(Y1, X1)), Zero, ValMin),
        row2(add(X0, Y0), minOf(maxOf(X0, X1), minOf(X1, Y1)), Zero, ValMax),
        row2(add(X0, Y0), minOf(maxOf(X0, Y1), minOf(Y1, X1)), Zero, ValMax),
        row2(add(X0, Y0), sub(X1, Y0), Zero, Zero),
        row2(add(X0, Y0), sub(Y1, X0), Zero, Zero),
        row2(add(X0, Y0), sub(Y1, mul(X0, K0)), Zero, Zero),
        row2(add(X0, Y0), sub(add(Y1, X1), mul(X0, Y0)), Zero, Zero),
    },
    { RootMul, 2 }: {
        row2(mul(X0, Y0), add(mul(X0, Y1), X1), One, Zero),
        row2(mul(X0, Y0), add(mul(X1, Y0), Y1), One, Zero),
        row2(mul(X0, Y0), add(mul(X0, Y0), sub(Y1, Y0)), One, Zero),
        row2(mul(X0, Y0), add(mul(X0, Y1), mul(X1, Y0)), One, Zero),
        row2(mul(X0, Y0), add(mul(X1, Y0), add(Y0, Y1)), One, NegOne),
        row2(mul(X0, Y0), add(mul(X1, Y0), sub(Y1, Y0)), One, One),
        row2(mul(X0, Y0), mul(X0, Y1), One, Zero),
        row2(mul(X0, Y0), mul(X1, Y0), One, Zero),
        row2(mul(X1, Y0), mul(X1, Y1), Zero, One),
        row2(mul(X0, Y0), maxOf(minOf(X0, X1), maxOf(X1, Y1)), One, ValMin),
        row2(mul(X0, Y0), maxOf(minOf(X0, Y1), maxOf(Y1, X1)), One, ValMin),
        row2(mul(X0, Y0), minOf(maxOf(X0, X1), minOf(X1, Y1)), One, ValMax),
        row2(mul(X0, Y0), minOf(maxOf(X0, Y1), minOf(Y1, X1)), One, ValMax),
        row2(mul(X0, Y0), sub(add(Y0, Y1), mul(X0, Y0)), One, Zero),
    },
    { RootMax, 2 }: {
        row2(maxOf(X0, Y0), sel(lt(Y0, X0), X1, Y1), ValMin, Zero),
        row2(maxOf(X0, Y0), add(maxOf(X0, Y0), sub(Y1, Y0)), ValMin, Zero),
        row2(maxOf(X0, Y0), add(minOf(X0, Y0), add(Y1, X1)), ValMin, ValMin),
        row2(maxOf(X0, Y0), add(minOf(X0, Y0), sub(X1, Y0)), ValMin, Zero),
        row2(maxOf(maxOf(minOf(mul(X0, Y0), X0), Y0), X0), add(maxOf(sub(X1, X0), Y0), maxOf(X0, Y0)), ValMin, Zero),
        row2(maxOf(maxOf(minOf(mul(X0, Y0), X0), Y0), X0), add(minOf(maxOf(X0, K0), Y0), sub(X1, Y0)), ValMin, Zero),
        row2(maxOf(minOf(minOf(mul(X0, Y0), X0), K0), X0), add(mul(maxOf(X0, X1), Y1), add(X1, Y1)), Zero, Zero),
        row2(maxOf(minOf(maxOf(X0, K0), minOf(K0, X1)), Y0), mul(sub(add(maxOf(X1, Y1), X1), minOf(X0, X1)), add(X0, X1)), ValMin, ValMin),
        row2(maxOf(X0, Y0), maxOf(X0, Y1), ValMin, Zero),
        row2(maxOf(X0, Y0), maxOf(X1, Y0), ValMin, Zero),
        row2(maxOf(X0, Y0), maxOf(Y0, X1), ValMin, Zero),
        row2(maxOf(X0, Y1), maxOf(X1, Y1), Zero, ValMin),
    },
    { RootMin, 2 }: {
        row2(minOf(X0, Y0), sel(lt(X0, Y0), X1, Y1), ValMax, Zero),
        row2(minOf(X0, Y0), add(maxOf(X0, Y0), add(Y1, X1)), ValMax, ValMin),
        row2(minOf(X0, Y0), add(maxOf(X0, Y0), sub(X1, Y0)), ValMax, Zero),
        row2(minOf(X0, Y0), add(minOf(X0, Y0), sub(Y1, Y0)), ValMax, Zero),
        row2(minOf(minOf(maxOf(mul(X0, Y0), X0), Y0), X0), add(maxOf(minOf(X0, K0), Y0), sub(X1, Y0)), ValMax, Zero),
        row2(minOf(minOf(maxOf(mul(X0, Y0), X0), Y0), X0), add(minOf(sub(X1, X0), Y0), minOf(X0, Y0)), ValMax, Zero),
        row2(minOf(X0, Y0), mul(maxOf(X0, Y0), mul(Y1, X1)), ValMax, ValMax),
        row2(minOf(X0, Y0), maxOf(minOf(X0, Y1), X1), ValMax, ValMin),
    },
    { RootSub, 2 }: {
        row2(sub(X0, Y1), add(X1, Y1), Zero, Zero),
        row2(sub(Y0, X1), add(X1, Y1), Zero, Zero),
        row2(sub(mul(X0, Y0), mul(X1, Y1)), add(mul(X1, Y0), mul(X0, Y1)), One, Zero),
        row2(sub(add(X1, Y0), maxOf(sub(X1, X0), K0)), sub(add(X1, Y1), maxOf(sub(X1, X0), K0)), Zero, ValMax),
        row2(sub(add(X1, Y0), minOf(sub(X1, X0), K0)), sub(add(X1, Y1), minOf(sub(X1, X0), K0)), Zero, ValMin),
        row2(sub(add(X1, Y0), maxOf(sub(X1, X0), K0)), sub(Y1, mul(maxOf(mul(X0, X1), X0), sub(X0, X1))), Zero, ValMax),
        row2(sub(add(X1, Y0), minOf(sub(X1, X0), K0)), sub(Y1, mul(maxOf(mul(X0, X1), X0), sub(X0, X1))), Zero, ValMin),
        row2(sub(add(X1, Y0), minOf(sub(X1, X0), K0)), sub(Y1, mul(minOf(mul(X0, X1), X0), sub(X0, X1))), Zero, ValMin),
        row2(sub(add(X1, Y0), minOf(sub(X1, X0), K0)), sub(maxOf(X1, Y1), mul(minOf(mul(X0, X1), X0), add(X0, X1))), Zero, ValMin),
    },
}

// saturatingAdd is uintN(min(uint2N(x) + uint2N(y), maxN)).
func saturatingAdd() Row {
    return row(cast(Same, minOf(add(cast(Wide, X0), cast(Wide, Y0)), lit(Wide, ValMax))), Zero)
}

// _TypedRows only apply to one value type.
var _TypedRows = map[Key][]Row {
    { UInt8  , RootCast, 1 }: { saturatingAdd() },
    { UInt16 , RootCast, 1 }: { saturatingAdd() },
    { UInt32 , RootCast, 1 }: { saturatingAdd() },
}

// rowsOf returns the rows for k, general rows first.
func rowsOf(k Key) []Row {
    var ret []Row
    if k.Type == Int32 {
        ret = append(ret, _GenRows[_GenKey { k.Root, k.Arity }]...)
    }
    return append(ret, _TypedRows[k]...)
}
