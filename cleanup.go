// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"os"
	"reflect"
)

// Cleanup is one entry in a pool's cleanup list: an action to run when the
// pool is destroyed. Handler and Data are exported so callers building
// their own cleanups (beyond the file handlers below) can populate them
// directly after CleanupAdd.
type Cleanup struct {
	Handler func(data any)
	Data    any
	next    *Cleanup
}

// CleanupAdd registers a new cleanup, most recently added first, and
// returns it so the caller can set Handler and Data. If dataSize > 0, Data
// is pre-populated with a []byte of that size allocated from the pool;
// callers that need a structured payload (a *os.File, a Logger, ...) should
// pass dataSize 0 and assign Data themselves, since pointer-bearing values
// can't be carved out of the pool's arena.
func (p *Pool) CleanupAdd(dataSize int) *Cleanup {
	c := &Cleanup{}
	if dataSize > 0 {
		c.Data = p.Alloc(dataSize)
	}
	c.next = p.cleanupHead
	p.cleanupHead = c
	return c
}

// CleanupFileData is the payload for the AddFileCleanup / AddDeleteFileCleanup
// handlers below.
type CleanupFileData struct {
	File *os.File
	Name string
	Log  Logger
}

// AddFileCleanup registers a cleanup that closes f when the pool is
// destroyed, logging at LevelAlert if the close fails.
func (p *Pool) AddFileCleanup(f *os.File, name string) *Cleanup {
	c := p.CleanupAdd(0)
	c.Data = &CleanupFileData{File: f, Name: name, Log: p.log}
	c.Handler = CleanupFile
	return c
}

// AddDeleteFileCleanup registers a cleanup that unlinks name and then
// closes f when the pool is destroyed, logging at LevelCritical if the
// unlink fails and LevelAlert if the close fails.
func (p *Pool) AddDeleteFileCleanup(f *os.File, name string) *Cleanup {
	c := p.CleanupAdd(0)
	c.Data = &CleanupFileData{File: f, Name: name, Log: p.log}
	c.Handler = DeleteFile
	return c
}

// CleanupFile closes the file described by data. It is the handler
// installed by AddFileCleanup and is also the handler RunCleanupFile looks
// for when disarming a cleanup early.
func CleanupFile(data any) {
	cf, ok := data.(*CleanupFileData)
	if !ok || cf == nil || cf.File == nil {
		return
	}
	if err := cf.File.Close(); err != nil {
		cf.Log.Log(LevelAlert, err, "pool: close file %q failed", cf.Name)
	}
}

// DeleteFile unlinks then closes the file described by data. It is the
// handler installed by AddDeleteFileCleanup.
func DeleteFile(data any) {
	cf, ok := data.(*CleanupFileData)
	if !ok || cf == nil {
		return
	}
	if err := os.Remove(cf.Name); err != nil && !os.IsNotExist(err) {
		cf.Log.Log(LevelCritical, err, "pool: delete file %q failed", cf.Name)
	}
	if cf.File != nil {
		if err := cf.File.Close(); err != nil {
			cf.Log.Log(LevelAlert, err, "pool: close file %q failed", cf.Name)
		}
	}
}

// RunCleanupFile finds the first still-armed cleanup installed by
// AddFileCleanup for f, runs it immediately, and disarms it so Destroy
// won't run it again. Cleanups installed by AddDeleteFileCleanup are not
// matched: only the plain close handler is.
func (p *Pool) RunCleanupFile(f *os.File) {
	for c := p.cleanupHead; c != nil; c = c.next {
		if c.Handler == nil {
			continue
		}
		cf, ok := c.Data.(*CleanupFileData)
		if !ok || cf.File != f {
			continue
		}
		if !isCleanupFileHandler(c.Handler) {
			continue
		}
		c.Handler(c.Data)
		c.Handler = nil
		return
	}
}

// isCleanupFileHandler reports whether h is CleanupFile itself, as opposed
// to DeleteFile or a caller-supplied handler. Go funcs aren't comparable,
// so identity is checked through their code pointers.
func isCleanupFileHandler(h func(any)) bool {
	return reflect.ValueOf(h).Pointer() == reflect.ValueOf(CleanupFile).Pointer()
}
