// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package pool

// PageSize keeps its 4096 default: there's no portable way to query the
// real OS page size outside the unix build.
