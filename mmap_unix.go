// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package pool

import "golang.org/x/sys/unix"

// CreateMmapBuf returns an anonymous, private mmap'd buffer of size bytes,
// with a cleanup registered on p to munmap it when the pool is destroyed.
func CreateMmapBuf(p *Pool, size int) (*Buffer, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	c := p.CleanupAdd(0)
	c.Data = mem
	c.Handler = func(data any) {
		if region, ok := data.([]byte); ok && region != nil {
			if err := unix.Munmap(region); err != nil {
				p.log.Log(LevelAlert, err, "pool: munmap failed")
			}
		}
	}
	return &Buffer{Mem: mem, End: size, Mmap: true}, nil
}
