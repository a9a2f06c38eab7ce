// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import "github.com/Fantom-foundation/Gufunc/go/common"

// ErrUnsatisfiable is an error returned by generators if constraints
// are not satisfiable, for instance if a filter rejected every candidate
// within its retry budget.
const ErrUnsatisfiable = common.ConstErr("unsatisfiable constraints")

// ErrInvalid is an error returned by generator constructors if their
// configuration is malformed. It is reported before any value is drawn.
const ErrInvalid = common.ConstErr("invalid generator configuration")
