// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package pool

import "golang.org/x/sys/unix"

func init() {
	if n := unix.Getpagesize(); n > 0 {
		PageSize = uintptr(n)
	}
}
