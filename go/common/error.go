// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package common holds small helpers shared by the generator packages.
package common

// ConstErr is an error type that can be used to define error constants. Values
// are compared by their text, so a ConstErr wrapped with %w stays detectable
// through errors.Is.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}
