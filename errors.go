// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "errors"

// ErrDeclined is returned by (*Pool).Free when the given region is not a
// live large allocation tracked by the pool. It is not a failure: the pool
// simply declines to do anything, matching the allocator's documented
// behavior of treating free as a best-effort hint.
var ErrDeclined = errors.New("pool: free declined: not a tracked allocation")
