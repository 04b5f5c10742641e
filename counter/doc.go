// SPDX-License-Identifier: MIT

// Package counter builds frequency tables (multisets) over comparable items.
//
// The sum of the returned counts always equals the number of input items;
// iteration order of the input does not affect the result.
package counter
