// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose unexported helpers to matrix_test only. The file ends in _test.go,
//     so it never reaches production builds.

// BareissStepTestOnly is a pass-through to bareissStep.
func BareissStepTestOnly(a, d, b, c, p int64) (int64, error) { return bareissStep(a, d, b, c, p) }
