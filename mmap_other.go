// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package pool

// CreateMmapBuf falls back to a plain pool-backed Temporary buffer on
// platforms with no portable anonymous mmap primitive.
func CreateMmapBuf(p *Pool, size int) (*Buffer, error) {
	return CreateTempBuf(p, size), nil
}
